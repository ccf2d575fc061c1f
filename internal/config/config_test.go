package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

func validConfig() *Config {
	return &Config{
		Log:     LogConfig{Level: "info", Format: "text"},
		Convert: ConvertConfig{Workers: 1, GzipLevel: 9},
	}
}

const validYAML = `
log:
  level: "debug"
  format: "json"

convert:
  workers: 8
  gzip_level: 6
  normalize_nfc: true
`

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("log.level = %q, want %q", cfg.Log.Level, "info")
	}
	if cfg.Log.Format != "text" {
		t.Errorf("log.format = %q, want %q", cfg.Log.Format, "text")
	}
	if cfg.Convert.Workers != 1 {
		t.Errorf("convert.workers = %d, want 1", cfg.Convert.Workers)
	}
	if cfg.Convert.GzipLevel != 9 {
		t.Errorf("convert.gzip_level = %d, want 9", cfg.Convert.GzipLevel)
	}
	if cfg.Convert.NormalizeNFC {
		t.Error("convert.normalize_nfc should default to false")
	}
}

func TestLoad_ENVOnly(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("CONVERT_WORKERS", "4")
	t.Setenv("CONVERT_GZIP_LEVEL", "0")
	t.Setenv("CONVERT_NORMALIZE_NFC", "true")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Convert.Workers != 4 {
		t.Errorf("convert.workers = %d, want 4", cfg.Convert.Workers)
	}
	if cfg.Convert.GzipLevel != 0 {
		t.Errorf("convert.gzip_level = %d, want 0", cfg.Convert.GzipLevel)
	}
	if !cfg.Convert.NormalizeNFC {
		t.Error("convert.normalize_nfc should be true")
	}
	if cfg.Log.Format != "json" {
		t.Errorf("log.format = %q, want %q", cfg.Log.Format, "json")
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.Log.Format != "json" {
		t.Errorf("log.format = %q, want %q", cfg.Log.Format, "json")
	}
	if cfg.Convert.Workers != 8 {
		t.Errorf("convert.workers = %d, want 8", cfg.Convert.Workers)
	}
	if cfg.Convert.GzipLevel != 6 {
		t.Errorf("convert.gzip_level = %d, want 6", cfg.Convert.GzipLevel)
	}
	if !cfg.Convert.NormalizeNFC {
		t.Error("convert.normalize_nfc should be true")
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("CONVERT_WORKERS", "2")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Convert.Workers != 2 {
		t.Errorf("convert.workers = %d, want 2 (ENV override)", cfg.Convert.Workers)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want %q (ENV override)", cfg.Log.Level, "warn")
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), `{{{invalid yaml`)
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoad_UpperCaseLogLevel(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("LOG_LEVEL", "WARN")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Level != "WARN" {
		t.Errorf("log.level = %q, want %q", cfg.Log.Level, "WARN")
	}
}

func TestLoad_InvalidValueRejected(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("CONVERT_WORKERS", "0")

	_, err := Load()
	if err == nil {
		t.Fatal("expected validation error for zero workers")
	}
	if !strings.Contains(err.Error(), "workers") {
		t.Errorf("error %q should mention workers", err)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "workers upper bound", mutate: func(c *Config) { c.Convert.Workers = 256 }},
		{name: "workers too many", mutate: func(c *Config) { c.Convert.Workers = 257 }, wantErr: true},
		{name: "workers negative", mutate: func(c *Config) { c.Convert.Workers = -1 }, wantErr: true},
		{name: "gzip huffman only", mutate: func(c *Config) { c.Convert.GzipLevel = -2 }},
		{name: "gzip default", mutate: func(c *Config) { c.Convert.GzipLevel = -1 }},
		{name: "gzip no compression", mutate: func(c *Config) { c.Convert.GzipLevel = 0 }},
		{name: "gzip too low", mutate: func(c *Config) { c.Convert.GzipLevel = -3 }, wantErr: true},
		{name: "gzip too high", mutate: func(c *Config) { c.Convert.GzipLevel = 10 }, wantErr: true},
		{name: "log level unknown", mutate: func(c *Config) { c.Log.Level = "verbose" }, wantErr: true},
		{name: "log level debug", mutate: func(c *Config) { c.Log.Level = "debug" }},
		{name: "log format unknown", mutate: func(c *Config) { c.Log.Format = "xml" }, wantErr: true},
		{name: "log format json", mutate: func(c *Config) { c.Log.Format = "json" }},
		{name: "log level upper case", mutate: func(c *Config) { c.Log.Level = "INFO" }},
		{name: "log level mixed case", mutate: func(c *Config) { c.Log.Level = "Debug" }},
		{name: "log format upper case", mutate: func(c *Config) { c.Log.Format = "JSON" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
