// Package config provides configuration loading and validation for LogStats.
package config

// Config is the root configuration structure loaded from YAML.
// Every setting has a built-in default, so the tool runs without a
// config file at all.
type Config struct {
	Report ReportConfig `yaml:"report"`
	Format FormatConfig `yaml:"format"`
}

// ReportConfig controls report rendering and kind selection.
type ReportConfig struct {
	// Precision is the number of decimal places used to render metrics.
	Precision int `yaml:"precision"`

	// DefaultKind is the report kind used when none is supplied.
	DefaultKind string `yaml:"default_kind"`
}

// FormatConfig defines the log line field layout.
type FormatConfig struct {
	// TimestampField is the JSON field holding the event timestamp.
	TimestampField string `yaml:"timestamp_field"`

	// TimestampLayout is the Go time layout string for parsing timestamps.
	// See https://pkg.go.dev/time#pkg-constants for format.
	TimestampLayout string `yaml:"timestamp_layout"`

	// ResponseTimeField is the JSON field holding the response time.
	ResponseTimeField string `yaml:"response_time_field"`

	// URLField is the JSON field holding the request URL. Optional;
	// when empty, reports carry no per-endpoint breakdown.
	URLField string `yaml:"url_field"`
}
