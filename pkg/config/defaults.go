package config

import "os"

// Default values for configuration.
const (
	DefaultPrecision         = 2
	MaxPrecision             = 10
	DefaultKind              = "average"
	DefaultTimestampField    = "@timestamp"
	DefaultTimestampLayout   = "2006-01-02T15:04:05Z07:00"
	DefaultResponseTimeField = "response_time"
	DefaultURLField          = "url"
)

// Environment variable names.
const (
	EnvTimestampLayout = "LOGSTATS_TIMESTAMP_LAYOUT"
	EnvDefaultKind     = "LOGSTATS_DEFAULT_KIND"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Report: ReportConfig{
			Precision:   DefaultPrecision,
			DefaultKind: DefaultKind,
		},
		Format: FormatConfig{
			TimestampField:    DefaultTimestampField,
			TimestampLayout:   DefaultTimestampLayout,
			ResponseTimeField: DefaultResponseTimeField,
			URLField:          DefaultURLField,
		},
	}
}

// ApplyEnvironmentOverrides applies environment variable overrides to the config.
// Load calls this automatically; callers building from DefaultConfig apply it
// themselves so the environment wins even without a config file.
func (c *Config) ApplyEnvironmentOverrides() {
	if layout := os.Getenv(EnvTimestampLayout); layout != "" {
		c.Format.TimestampLayout = layout
	}
	if kind := os.Getenv(EnvDefaultKind); kind != "" {
		c.Report.DefaultKind = kind
	}
}
