package format

import (
	"fmt"

	"github.com/magiconair/properties"

	"github.com/yndnr/confmerge-go/pkg/tree"
)

// PropertiesParser parses Java properties files into a flat mapping of
// strings, in document order. ${key} references are expanded.
type PropertiesParser struct{}

// NewPropertiesParser creates a Java properties parser.
func NewPropertiesParser() *PropertiesParser {
	return &PropertiesParser{}
}

// Parse implements Parser.
func (p *PropertiesParser) Parse(content string) (*tree.Map, error) {
	props, err := properties.LoadString(content)
	if err != nil {
		return nil, fmt.Errorf("properties: %w", err)
	}

	m := tree.NewMap()
	for _, key := range props.Keys() {
		v, _ := props.Get(key)
		m.Set(key, tree.String(v))
	}
	return m, nil
}
