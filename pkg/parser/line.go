package parser

import (
	"encoding/json"
	"fmt"
	"time"
)

// Reason classifies why a log line was rejected.
type Reason string

const (
	ReasonInvalidJSON          Reason = "invalid_json"
	ReasonMissingTimestamp     Reason = "missing_timestamp"
	ReasonBadTimestamp         Reason = "unparseable_timestamp"
	ReasonMissingResponseTime  Reason = "missing_response_time"
	ReasonBadResponseTime      Reason = "non_numeric_response_time"
	ReasonNegativeResponseTime Reason = "negative_response_time"
)

// ParseError reports why a log line was rejected. Rejections are
// recoverable: the loader skips the line and keeps going.
type ParseError struct {
	// Reason categorizes the rejection.
	Reason Reason

	// Detail describes the specific problem.
	Detail string

	// Err is the underlying error, if any.
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Detail, e.Err)
	}
	return e.Detail
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LineParser converts raw JSON log lines into Records.
type LineParser struct {
	layout Layout
}

// NewLineParser creates a parser for the given line layout.
func NewLineParser(layout Layout) *LineParser {
	return &LineParser{layout: layout}
}

// Parse converts one raw log line into a Record.
// Malformed lines (invalid JSON, missing or unparseable timestamp,
// missing, non-numeric or negative response time) return a *ParseError.
func (p *LineParser) Parse(line string) (*Record, error) {
	var fields map[string]any
	if err := json.Unmarshal([]byte(line), &fields); err != nil {
		return nil, &ParseError{Reason: ReasonInvalidJSON, Detail: "invalid JSON", Err: err}
	}

	tsRaw, ok := fields[p.layout.TimestampField]
	if !ok {
		return nil, &ParseError{
			Reason: ReasonMissingTimestamp,
			Detail: fmt.Sprintf("missing field %q", p.layout.TimestampField),
		}
	}
	tsStr, ok := tsRaw.(string)
	if !ok {
		return nil, &ParseError{
			Reason: ReasonBadTimestamp,
			Detail: fmt.Sprintf("field %q is not a string", p.layout.TimestampField),
		}
	}
	ts, err := time.Parse(p.layout.TimestampLayout, tsStr)
	if err != nil {
		return nil, &ParseError{
			Reason: ReasonBadTimestamp,
			Detail: fmt.Sprintf("parsing timestamp %q", tsStr),
			Err:    err,
		}
	}

	rtRaw, ok := fields[p.layout.ResponseTimeField]
	if !ok {
		return nil, &ParseError{
			Reason: ReasonMissingResponseTime,
			Detail: fmt.Sprintf("missing field %q", p.layout.ResponseTimeField),
		}
	}
	rt, ok := rtRaw.(float64)
	if !ok {
		return nil, &ParseError{
			Reason: ReasonBadResponseTime,
			Detail: fmt.Sprintf("field %q is not a number", p.layout.ResponseTimeField),
		}
	}
	if rt < 0 {
		return nil, &ParseError{
			Reason: ReasonNegativeResponseTime,
			Detail: fmt.Sprintf("field %q is negative: %v", p.layout.ResponseTimeField, rt),
		}
	}

	var url string
	if p.layout.URLField != "" {
		url, _ = fields[p.layout.URLField].(string)
	}

	extra := fields
	delete(extra, p.layout.TimestampField)
	delete(extra, p.layout.ResponseTimeField)
	delete(extra, p.layout.URLField)

	return &Record{
		Timestamp:    ts,
		ResponseTime: rt,
		URL:          url,
		Extra:        extra,
	}, nil
}
