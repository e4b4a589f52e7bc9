// Package parser provides log file reading and record parsing functionality.
package parser

import "time"

// Record is a single parsed log entry. Records are never modified after
// the loader hands them out.
type Record struct {
	// Timestamp is the parsed event time.
	Timestamp time.Time

	// ResponseTime is the request duration in seconds. Never negative.
	ResponseTime float64

	// URL is the request URL, if the line carried one.
	URL string

	// Extra holds any remaining fields from the line, unparsed.
	Extra map[string]any

	// Source is the file path this record came from.
	Source string

	// LineNum is the 1-based line number in the source file.
	LineNum int
}

// Layout describes the JSON field names and timestamp layout that make up
// the log line contract. The loader and the line parser share one Layout.
type Layout struct {
	// TimestampField is the JSON field holding the event timestamp.
	TimestampField string

	// TimestampLayout is the Go time layout for parsing the timestamp.
	TimestampLayout string

	// ResponseTimeField is the JSON field holding the response time.
	ResponseTimeField string

	// URLField is the JSON field holding the request URL. May be empty,
	// in which case records carry no URL.
	URLField string
}
