package format

import (
	"sort"
	"sync"
)

// Plugin names understood by PluginProvider.
const (
	PluginINI            = "ini"
	PluginJSON           = "json"
	PluginXML            = "xml"
	PluginYAML           = "yaml"
	PluginJavaProperties = "javaproperties"
	PluginTOML           = "toml"
	PluginHCL            = "hcl"
)

// builtinFormats maps the shipped format identifiers to plugin names.
var builtinFormats = map[string]string{
	"ini":        PluginINI,
	"json":       PluginJSON,
	"xml":        PluginXML,
	"yml":        PluginYAML,
	"yaml":       PluginYAML,
	"properties": PluginJavaProperties,
}

// BuiltinFormats returns a copy of the identifier to plugin table a new
// Resolver starts with.
func BuiltinFormats() map[string]string {
	out := make(map[string]string, len(builtinFormats))
	for id, plugin := range builtinFormats {
		out[id] = plugin
	}
	return out
}

// Observer is notified whenever a Resolver asks its provider for a parser.
type Observer interface {
	Resolved(format, plugin string)
}

type nopObserver struct{}

func (nopObserver) Resolved(string, string) {}

// FormatInfo describes one registry entry.
type FormatInfo struct {
	Format   string `json:"format"`
	Plugin   string `json:"plugin"`
	Resolved bool   `json:"resolved"`
}

// entry is either an unresolved plugin name or a resolved parser.
type entry struct {
	plugin string
	parser Parser
}

// Resolver maps format identifiers to parsers.
//
// Parsers are obtained from the provider the first time an identifier is
// resolved and cached for the lifetime of the Resolver; the provider is
// asked at most once per identifier.
type Resolver struct {
	mu       sync.Mutex
	provider Provider
	entries  map[string]*entry
	observer Observer
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithObserver sets the observer notified on provider lookups.
func WithObserver(o Observer) ResolverOption {
	return func(r *Resolver) {
		if o != nil {
			r.observer = o
		}
	}
}

// WithFormats replaces the built-in registry with formats (identifier to
// plugin name).
func WithFormats(formats map[string]string) ResolverOption {
	return func(r *Resolver) {
		r.entries = make(map[string]*entry, len(formats))
		for id, plugin := range formats {
			r.entries[id] = &entry{plugin: plugin}
		}
	}
}

// NewResolver creates a Resolver seeded with the built-in formats.
// A nil provider means NewPluginProvider().
func NewResolver(provider Provider, opts ...ResolverOption) *Resolver {
	if provider == nil {
		provider = NewPluginProvider()
	}

	r := &Resolver{
		provider: provider,
		entries:  make(map[string]*entry, len(builtinFormats)),
		observer: nopObserver{},
	}
	for id, plugin := range builtinFormats {
		r.entries[id] = &entry{plugin: plugin}
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve returns the parser for format.
func (r *Resolver) Resolve(format string) (Parser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[format]
	if format == "" || !ok {
		return nil, ErrUnknownFormat.WithDetails(quote(format))
	}
	if e.parser != nil {
		return e.parser, nil
	}

	p, err := r.provider.Get(e.plugin)
	if err != nil {
		return nil, ErrPluginNotFound.Wrap(quote(format)+" -> "+quote(e.plugin), err)
	}
	e.parser = p
	r.observer.Resolved(format, e.plugin)

	return p, nil
}

// Register maps format to plugin, dropping any parser cached for format.
func (r *Resolver) Register(format, plugin string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[format] = &entry{plugin: plugin}
}

// RegisterParser maps format directly to an already resolved parser.
func (r *Resolver) RegisterParser(format string, p Parser) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[format] = &entry{plugin: format, parser: p}
}

// Has reports whether format is registered.
func (r *Resolver) Has(format string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.entries[format]
	return ok
}

// Formats lists the registry sorted by identifier.
func (r *Resolver) Formats() []FormatInfo {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]FormatInfo, 0, len(r.entries))
	for id, e := range r.entries {
		out = append(out, FormatInfo{
			Format:   id,
			Plugin:   e.plugin,
			Resolved: e.parser != nil,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Format < out[j].Format })
	return out
}

func quote(s string) string {
	return `"` + s + `"`
}
