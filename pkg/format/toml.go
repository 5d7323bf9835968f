package format

import (
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/yndnr/confmerge-go/pkg/tree"
)

// TOMLParser parses TOML documents. The decoder yields plain maps, so keys
// come out sorted rather than in document order. Dates and times are kept
// as strings.
type TOMLParser struct{}

// NewTOMLParser creates a TOML parser.
func NewTOMLParser() *TOMLParser {
	return &TOMLParser{}
}

// Parse implements Parser.
func (p *TOMLParser) Parse(content string) (*tree.Map, error) {
	var raw map[string]any
	if err := toml.Unmarshal([]byte(content), &raw); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			line, col := decodeErr.Position()
			return nil, fmt.Errorf("toml: line %d, column %d: %w", line, col, err)
		}
		return nil, fmt.Errorf("toml: %w", err)
	}

	m, err := tree.FromMap(raw)
	if err != nil {
		return nil, fmt.Errorf("toml: %w", err)
	}
	return m, nil
}
