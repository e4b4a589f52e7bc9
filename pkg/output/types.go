// Package output provides formatting and output generation for computed reports.
package output

import (
	"time"

	"logstats/pkg/report"
)

// Report is the complete output of one run.
type Report struct {
	// Result is the computed metric.
	Result *report.Result `json:"result"`

	// Metadata provides context about the run.
	Metadata Metadata `json:"metadata"`
}

// Metadata provides context about the run.
type Metadata struct {
	// Sources lists the log files that were read.
	Sources []string `json:"sources"`

	// Date is the calendar-date filter that was applied, if any.
	Date string `json:"date,omitempty"`

	// SkippedLines is the number of malformed lines skipped during loading.
	SkippedLines int `json:"skipped_lines"`

	// GeneratedAt is when the report was produced.
	GeneratedAt time.Time `json:"generated_at"`

	// Duration is how long loading and reduction took.
	Duration time.Duration `json:"duration_ns"`
}

// NewReport assembles a Report from a computed result and run context.
func NewReport(result *report.Result, meta Metadata) *Report {
	return &Report{Result: result, Metadata: meta}
}

// HasData reports whether any records contributed to the result.
func (r *Report) HasData() bool {
	return r.Result != nil && !r.Result.NoData
}
