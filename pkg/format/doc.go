// Package format resolves configuration format identifiers to parsers.
//
// A Resolver owns a registry mapping identifiers ("json", "yml", ...) to
// plugin names. The first Resolve of an identifier asks the Provider for a
// parser and caches it; later calls reuse that instance.
//
// Built-in identifiers:
//
//	ini         -> ini
//	json        -> json
//	xml         -> xml
//	yml, yaml   -> yaml
//	properties  -> javaproperties
//
// PluginProvider additionally knows the toml and hcl plugins, which can be
// enabled with Resolver.Register.
//
// Errors carry codes and match the package sentinels under errors.Is:
//
//	ErrUnknownFormat   CM-FMT-4040
//	ErrPluginNotFound  CM-FMT-4041
//	ErrParse           CM-FMT-4220
//	ErrRead            CM-SRC-5000
package format
