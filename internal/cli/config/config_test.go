package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Output.Format != "table" {
		t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, "table")
	}
	if cfg.Log.Level != "warn" || cfg.Log.Format != "text" {
		t.Errorf("Log = %+v, want warn/text", cfg.Log)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() error = %v", err)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	want := filepath.Join(home, ".confmerge", "cli.yaml")
	if got := DefaultConfigPath(); got != want {
		t.Errorf("DefaultConfigPath() = %q, want %q", got, want)
	}
}

func TestLoad_NoFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_DefaultFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".confmerge", "cli.yaml"), `
output:
  format: yaml
include:
  paths: [/etc/app]
formats:
  toml: toml
`)

	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Output.Format != "yaml" {
		t.Errorf("Output.Format = %q, want yaml", cfg.Output.Format)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, default should survive", cfg.Log.Level)
	}
	if diff := cmp.Diff([]string{"/etc/app"}, cfg.Include.Paths); diff != "" {
		t.Errorf("Include.Paths mismatch (-want +got):\n%s", diff)
	}
	if cfg.Formats["toml"] != "toml" {
		t.Errorf("Formats = %v, want toml registered", cfg.Formats)
	}
}

func TestLoad_Layering(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "cli.yaml")
	writeFile(t, path, "output:\n  format: yaml\nlog:\n  level: info\n")
	t.Setenv("CONFMERGE_LOG_LEVEL", "debug")
	t.Setenv("CONFMERGE_OUTPUT_FORMAT", "table")

	cfg, err := Load(path, map[string]any{"output.format": "json"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %q, flag should win", cfg.Output.Format)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, env should beat the file", cfg.Log.Level)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil); err == nil {
		t.Error("Load() with an explicit missing file should fail")
	}

	_, err := Load("", map[string]any{"output.format": "xml"})
	if err == nil || !strings.Contains(err.Error(), "output.format") {
		t.Errorf("Load() error = %v, want output.format validation error", err)
	}

	_, err = Load("", map[string]any{"log.format": "logfmt"})
	if err == nil || !strings.Contains(err.Error(), "log.format") {
		t.Errorf("Load() error = %v, want log.format validation error", err)
	}
}
