package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.ApplyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors.
// The default report kind is a plain string here; whether the report
// engine knows it is checked when a reducer is created.
func Validate(cfg *Config) error {
	if cfg.Report.Precision < 0 || cfg.Report.Precision > MaxPrecision {
		return fmt.Errorf("report.precision: must be between 0 and %d, got %d",
			MaxPrecision, cfg.Report.Precision)
	}

	if cfg.Report.DefaultKind == "" {
		return errors.New("report.default_kind: must not be empty")
	}

	if cfg.Format.TimestampField == "" {
		return errors.New("format.timestamp_field: must not be empty")
	}

	if cfg.Format.TimestampLayout == "" {
		return errors.New("format.timestamp_layout: must not be empty")
	}

	if cfg.Format.ResponseTimeField == "" {
		return errors.New("format.response_time_field: must not be empty")
	}

	return nil
}
