package confloader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type testConfig struct {
	Output struct {
		Format string `koanf:"format"`
		Redact bool   `koanf:"redact"`
	} `koanf:"output"`
	Log struct {
		Level string `koanf:"level"`
	} `koanf:"log"`
	Include struct {
		Paths []string `koanf:"paths"`
	} `koanf:"include"`
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestNewLoader(t *testing.T) {
	l := NewLoader()
	if l == nil {
		t.Fatal("NewLoader() returned nil")
	}
	if l.envPrefix != DefaultEnvPrefix {
		t.Errorf("envPrefix = %q, want %q", l.envPrefix, DefaultEnvPrefix)
	}
}

func TestNewLoader_WithOptions(t *testing.T) {
	l := NewLoader(
		WithEnvPrefix("TEST_"),
		WithConfigFile("/path/to/config.yaml"),
		WithListKeys("include.paths"),
	)

	if l.envPrefix != "TEST_" {
		t.Errorf("envPrefix = %q, want %q", l.envPrefix, "TEST_")
	}
	if l.filePath != "/path/to/config.yaml" {
		t.Errorf("filePath = %q, want %q", l.filePath, "/path/to/config.yaml")
	}
	if !l.listKeys["include.paths"] {
		t.Error("include.paths should be a list key")
	}
}

func TestLoader_LoadFile(t *testing.T) {
	path := writeConfig(t, `
output:
  format: yaml
  redact: true
`)

	l := NewLoader()
	if err := l.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if got := l.GetString("output.format"); got != "yaml" {
		t.Errorf("output.format = %q, want %q", got, "yaml")
	}
	if !l.GetBool("output.redact") {
		t.Error("output.redact should be true")
	}
}

func TestLoader_LoadFile_NotFound(t *testing.T) {
	l := NewLoader()
	if err := l.LoadFile("/nonexistent/config.yaml"); err == nil {
		t.Error("LoadFile() should return error for nonexistent file")
	}
}

func TestLoader_LoadFile_Empty(t *testing.T) {
	l := NewLoader()
	if err := l.LoadFile(""); err != nil {
		t.Errorf("LoadFile(\"\") should not error, got: %v", err)
	}
}

func TestLoader_LoadEnv(t *testing.T) {
	t.Setenv("CONFMERGE_OUTPUT_FORMAT", "json")
	t.Setenv("CONFMERGE_LOG_LEVEL", "debug")

	l := NewLoader()
	if err := l.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}

	if got := l.GetString("output.format"); got != "json" {
		t.Errorf("output.format = %q, want %q", got, "json")
	}
	if got := l.GetString("log.level"); got != "debug" {
		t.Errorf("log.level = %q, want %q", got, "debug")
	}
}

func TestLoader_LoadEnv_ListKeys(t *testing.T) {
	sep := string(os.PathListSeparator)
	t.Setenv("CONFMERGE_INCLUDE_PATHS", strings.Join([]string{"/etc/app", " ", "/opt/app"}, sep))

	l := NewLoader(WithListKeys("include.paths"))
	if err := l.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}

	if diff := cmp.Diff([]string{"/etc/app", "/opt/app"}, l.GetStrings("include.paths")); diff != "" {
		t.Errorf("include.paths mismatch (-want +got):\n%s", diff)
	}
}

func TestLoader_LoadEnv_CustomPrefix(t *testing.T) {
	t.Setenv("MYAPP_OUTPUT_FORMAT", "table")

	l := NewLoader(WithEnvPrefix("MYAPP_"))
	if err := l.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}

	if got := l.GetString("output.format"); got != "table" {
		t.Errorf("output.format = %q, want %q", got, "table")
	}
}

func TestLoader_LoadMap(t *testing.T) {
	l := NewLoader()

	if err := l.LoadMap(map[string]any{
		"output.format": "yaml",
		"log":           map[string]any{"level": "warn"},
	}); err != nil {
		t.Fatalf("LoadMap() error = %v", err)
	}

	var cfg testConfig
	if err := l.Unmarshal(&cfg); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if cfg.Output.Format != "yaml" {
		t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, "yaml")
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "warn")
	}
}

func TestLoader_Load_Priority(t *testing.T) {
	path := writeConfig(t, `
output:
  format: from-file
log:
  level: from-file
include:
  paths: [/from/file]
`)
	t.Setenv("CONFMERGE_LOG_LEVEL", "from-env")
	t.Setenv("CONFMERGE_OUTPUT_FORMAT", "from-env")

	l := NewLoader(
		WithConfigFile(path),
		WithDefaults(map[string]any{
			"output.format": "default",
			"output.redact": true,
		}),
		WithOverrides(map[string]any{
			"output.format": "from-flag",
		}),
	)

	var cfg testConfig
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Output.Format != "from-flag" {
		t.Errorf("Output.Format = %q, flags should override env", cfg.Output.Format)
	}
	if cfg.Log.Level != "from-env" {
		t.Errorf("Log.Level = %q, env should override file", cfg.Log.Level)
	}
	if !cfg.Output.Redact {
		t.Error("Output.Redact should keep its default")
	}
	if diff := cmp.Diff([]string{"/from/file"}, cfg.Include.Paths); diff != "" {
		t.Errorf("Include.Paths mismatch (-want +got):\n%s", diff)
	}
	if !l.IsLoaded() {
		t.Error("IsLoaded() should be true after Load()")
	}
}

func TestLoader_Load_MissingFile(t *testing.T) {
	l := NewLoader(WithConfigFile(filepath.Join(t.TempDir(), "absent.yaml")))

	var cfg testConfig
	if err := l.Load(&cfg); err == nil {
		t.Fatal("Load() should fail when the config file is missing")
	}
	if l.IsLoaded() {
		t.Error("IsLoaded() should be false after a failed Load()")
	}
}

func TestLoader_AllAndKeys(t *testing.T) {
	l := NewLoader()
	if err := l.LoadMap(map[string]any{
		"key1":   "value1",
		"nest.a": "value2",
	}); err != nil {
		t.Fatalf("LoadMap() error = %v", err)
	}

	all := l.All()
	if all["nest.a"] != "value2" {
		t.Errorf("All()[nest.a] = %v, want value2", all["nest.a"])
	}
	if keys := l.Keys(); len(keys) < 2 {
		t.Errorf("Keys() returned %d keys, want at least 2", len(keys))
	}
	if l.Get("missing") != nil {
		t.Error("Get(missing) should be nil")
	}
}
