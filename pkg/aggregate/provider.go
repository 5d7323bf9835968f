package aggregate

import "github.com/yndnr/confmerge-go/pkg/tree"

// treeProvider is a koanf provider that loads a configuration tree.
//
// koanf calls Read when no parser is passed to Load; ReadBytes serves
// callers that pair the provider with a JSON parser instead.
type treeProvider struct {
	m *tree.Map
}

// ReadBytes returns the tree as ordered JSON.
func (p treeProvider) ReadBytes() ([]byte, error) {
	return p.m.MarshalJSON()
}

// Read returns the tree as nested plain maps.
func (p treeProvider) Read() (map[string]any, error) {
	return p.m.ToMap(), nil
}
