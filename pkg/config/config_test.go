package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Report.Precision != DefaultPrecision {
		t.Errorf("Precision = %d, want %d", cfg.Report.Precision, DefaultPrecision)
	}
	if cfg.Report.DefaultKind != DefaultKind {
		t.Errorf("DefaultKind = %q, want %q", cfg.Report.DefaultKind, DefaultKind)
	}
	if cfg.Format.TimestampField != DefaultTimestampField {
		t.Errorf("TimestampField = %q, want %q", cfg.Format.TimestampField, DefaultTimestampField)
	}
	if cfg.Format.TimestampLayout != DefaultTimestampLayout {
		t.Errorf("TimestampLayout = %q, want %q", cfg.Format.TimestampLayout, DefaultTimestampLayout)
	}

	if err := Validate(cfg); err != nil {
		t.Errorf("Validate(DefaultConfig()) error = %v", err)
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
report:
  precision: 3
format:
  timestamp_field: ts
`)

	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Report.Precision != 3 {
		t.Errorf("Precision = %d, want 3", cfg.Report.Precision)
	}
	if cfg.Format.TimestampField != "ts" {
		t.Errorf("TimestampField = %q, want ts", cfg.Format.TimestampField)
	}
	// Unset fields keep their defaults
	if cfg.Report.DefaultKind != DefaultKind {
		t.Errorf("DefaultKind = %q, want %q", cfg.Report.DefaultKind, DefaultKind)
	}
	if cfg.Format.ResponseTimeField != DefaultResponseTimeField {
		t.Errorf("ResponseTimeField = %q, want %q", cfg.Format.ResponseTimeField, DefaultResponseTimeField)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() error = nil, want read failure")
	}
	if !strings.Contains(err.Error(), "reading config file") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "report: [not a mapping")

	if _, err := Load(context.Background(), path); err == nil {
		t.Fatal("Load() error = nil, want parse failure")
	}
}

func TestLoad_InvalidPrecision(t *testing.T) {
	tests := []string{
		"report:\n  precision: -1\n",
		"report:\n  precision: 11\n",
	}
	for _, content := range tests {
		path := writeConfig(t, content)
		_, err := Load(context.Background(), path)
		if err == nil {
			t.Errorf("Load() error = nil for %q, want precision error", content)
			continue
		}
		if !strings.Contains(err.Error(), "precision") {
			t.Errorf("error %q does not mention precision", err)
		}
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv(EnvTimestampLayout, "2006-01-02 15:04:05")
	t.Setenv(EnvDefaultKind, "average")

	path := writeConfig(t, "report:\n  precision: 2\n")

	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Format.TimestampLayout != "2006-01-02 15:04:05" {
		t.Errorf("TimestampLayout = %q, want env override", cfg.Format.TimestampLayout)
	}
}

func TestValidate_EmptyFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"empty default kind", func(c *Config) { c.Report.DefaultKind = "" }, "default_kind"},
		{"empty timestamp field", func(c *Config) { c.Format.TimestampField = "" }, "timestamp_field"},
		{"empty timestamp layout", func(c *Config) { c.Format.TimestampLayout = "" }, "timestamp_layout"},
		{"empty response time field", func(c *Config) { c.Format.ResponseTimeField = "" }, "response_time_field"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if err == nil {
				t.Fatal("Validate() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %s", err, tt.want)
			}
		})
	}
}

func TestValidate_EmptyURLFieldAllowed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Format.URLField = ""

	if err := Validate(cfg); err != nil {
		t.Errorf("Validate() error = %v, want nil (URL field is optional)", err)
	}
}
