// Package confloader loads the settings of the confmerge CLI itself.
//
// It layers koanf sources, later ones overriding earlier ones:
//
//  1. Defaults (WithDefaults)
//  2. Configuration file (YAML, WithConfigFile)
//  3. Environment variables (CONFMERGE_ prefix)
//  4. Overrides, typically command-line flags (WithOverrides)
//
// Environment variables map to dotted keys by lower-casing and replacing
// underscores: CONFMERGE_LOG_LEVEL sets log.level. Keys registered with
// WithListKeys are split on the OS path-list separator, so
// CONFMERGE_INCLUDE_PATHS=/etc/app:/opt/app yields a two-element list.
package confloader
