package config

import (
	"fmt"

	"github.com/yndnr/confmerge-go/internal/cli/output"
)

// CLIConfig is the configuration for the confmerge CLI.
type CLIConfig struct {
	Output  OutputConfig  `koanf:"output"`
	Log     LogConfig     `koanf:"log"`
	Include IncludeConfig `koanf:"include"`

	// Formats registers extra format identifiers, e.g. {"toml": "toml"}.
	Formats map[string]string `koanf:"formats"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Format string `koanf:"format"` // table, json, yaml
	Redact bool   `koanf:"redact"`
}

// LogConfig controls diagnostics on stderr.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// IncludeConfig lists directories searched by --use-include-path.
type IncludeConfig struct {
	Paths []string `koanf:"paths"`
}

// Default returns the default CLI configuration.
func Default() *CLIConfig {
	return &CLIConfig{
		Output: OutputConfig{Format: string(output.FormatTable)},
		Log:    LogConfig{Level: "warn", Format: "text"},
	}
}

// defaultMap mirrors Default for the loader.
func defaultMap() map[string]any {
	d := Default()
	return map[string]any{
		"output.format": d.Output.Format,
		"output.redact": d.Output.Redact,
		"log.level":     d.Log.Level,
		"log.format":    d.Log.Format,
	}
}

// Validate checks enumerated settings.
func (c *CLIConfig) Validate() error {
	if _, err := output.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	switch c.Log.Format {
	case "text", "json", "console":
	default:
		return fmt.Errorf("log.format: unknown format %q", c.Log.Format)
	}
	return nil
}
