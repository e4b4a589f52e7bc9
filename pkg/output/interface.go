package output

import (
	"context"
	"io"
)

// Formatter renders a computed report in a specific format.
type Formatter interface {
	// Format renders the report to the given writer.
	Format(ctx context.Context, report *Report, w io.Writer) error

	// Name returns the format name (text, json).
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Verbose enables detailed output including sources and skip counts.
	Verbose bool

	// Quiet enables minimal headline-only output.
	Quiet bool

	// Precision is the number of decimal places for rendered metrics.
	Precision int
}
