// Package config defines the settings of the confmerge CLI.
//
//   - settings.go: CLIConfig struct and defaults
//   - loader.go: layering of defaults, ~/.confmerge/cli.yaml, CONFMERGE_*
//     environment variables and flags
package config
