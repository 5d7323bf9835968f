package format

import (
	"sort"
	"sync"
)

// Factory creates a parser instance.
type Factory func() Parser

// PluginProvider creates parsers from registered factories. Every Get call
// builds a fresh instance; caching is the Resolver's job.
type PluginProvider struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewPluginProvider returns a provider knowing every bundled parser:
// ini, json, xml, yaml, javaproperties, toml and hcl.
func NewPluginProvider() *PluginProvider {
	return &PluginProvider{
		factories: map[string]Factory{
			PluginINI:            func() Parser { return NewINIParser() },
			PluginJSON:           func() Parser { return NewJSONParser() },
			PluginXML:            func() Parser { return NewXMLParser() },
			PluginYAML:           func() Parser { return NewYAMLParser() },
			PluginJavaProperties: func() Parser { return NewPropertiesParser() },
			PluginTOML:           func() Parser { return NewTOMLParser() },
			PluginHCL:            func() Parser { return NewHCLParser() },
		},
	}
}

// Get implements Provider.
func (p *PluginProvider) Get(plugin string) (Parser, error) {
	p.mu.RLock()
	factory, ok := p.factories[plugin]
	p.mu.RUnlock()

	if !ok {
		return nil, ErrPluginNotFound.WithDetails(quote(plugin))
	}
	return factory(), nil
}

// Register adds or replaces the factory for plugin.
func (p *PluginProvider) Register(plugin string, factory Factory) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.factories[plugin] = factory
}

// Plugins returns the registered plugin names, sorted.
func (p *PluginProvider) Plugins() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	names := make([]string, 0, len(p.factories))
	for name := range p.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
