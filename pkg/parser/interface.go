package parser

import "context"

// RecordSource provides an iterator over parsed log records.
// Implementations must be safe for sequential access (not concurrent).
type RecordSource interface {
	// Next returns the next parsed record.
	// Returns io.EOF when no more records are available.
	// Malformed lines are skipped and tallied, not returned as errors.
	Next(ctx context.Context) (*Record, error)

	// Skipped returns the number of malformed lines skipped so far.
	Skipped() int

	// Close releases any resources held by the source.
	Close() error
}
