package format

import (
	"github.com/yndnr/confmerge-go/pkg/tree"
)

// Parser turns configuration text into a tree.
type Parser interface {
	// Parse parses content. The result is always a mapping; an empty
	// document yields an empty mapping.
	Parse(content string) (*tree.Map, error)
}

// ParserFunc adapts a function to the Parser interface.
type ParserFunc func(content string) (*tree.Map, error)

// Parse calls f(content).
func (f ParserFunc) Parse(content string) (*tree.Map, error) {
	return f(content)
}

// Provider hands out parsers by plugin name.
type Provider interface {
	// Get returns the parser registered as plugin. It fails with an error
	// matching ErrPluginNotFound for unknown names.
	Get(plugin string) (Parser, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(plugin string) (Parser, error)

// Get calls f(plugin).
func (f ProviderFunc) Get(plugin string) (Parser, error) {
	return f(plugin)
}
