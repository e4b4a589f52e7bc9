package parser

import (
	"errors"
	"testing"
	"time"
)

func testLayout() Layout {
	return Layout{
		TimestampField:    "@timestamp",
		TimestampLayout:   time.RFC3339,
		ResponseTimeField: "response_time",
		URLField:          "url",
	}
}

func TestLineParser_Parse_Valid(t *testing.T) {
	lp := NewLineParser(testLayout())

	line := `{"@timestamp": "2025-06-22T20:03:08+00:00", "url": "/api/users?page=2", "response_time": 0.12, "status": 200}`
	rec, err := lp.Parse(line)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	// Field round-trip: re-rendering reproduces the input values
	if got := rec.Timestamp.Format(time.RFC3339); got != "2025-06-22T20:03:08+00:00" {
		t.Errorf("Timestamp = %s, want 2025-06-22T20:03:08+00:00", got)
	}
	if rec.ResponseTime != 0.12 {
		t.Errorf("ResponseTime = %v, want 0.12", rec.ResponseTime)
	}
	if rec.URL != "/api/users?page=2" {
		t.Errorf("URL = %q, want /api/users?page=2", rec.URL)
	}

	// Known fields are removed from the opaque remainder
	if _, ok := rec.Extra["@timestamp"]; ok {
		t.Error("Extra still contains @timestamp")
	}
	if _, ok := rec.Extra["response_time"]; ok {
		t.Error("Extra still contains response_time")
	}
	if rec.Extra["status"] != float64(200) {
		t.Errorf("Extra[status] = %v, want 200", rec.Extra["status"])
	}
}

func TestLineParser_Parse_ZeroResponseTime(t *testing.T) {
	lp := NewLineParser(testLayout())

	rec, err := lp.Parse(`{"@timestamp": "2025-06-22T20:03:08Z", "response_time": 0}`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if rec.ResponseTime != 0 {
		t.Errorf("ResponseTime = %v, want 0", rec.ResponseTime)
	}
	if rec.URL != "" {
		t.Errorf("URL = %q, want empty", rec.URL)
	}
}

func TestLineParser_Parse_Rejections(t *testing.T) {
	lp := NewLineParser(testLayout())

	tests := []struct {
		name   string
		line   string
		reason Reason
	}{
		{"invalid JSON", `not json at all`, ReasonInvalidJSON},
		{"truncated JSON", `{"@timestamp": "2025-06-22T2`, ReasonInvalidJSON},
		{"missing timestamp", `{"response_time": 0.1}`, ReasonMissingTimestamp},
		{"timestamp not a string", `{"@timestamp": 12345, "response_time": 0.1}`, ReasonBadTimestamp},
		{"unparseable timestamp", `{"@timestamp": "yesterday", "response_time": 0.1}`, ReasonBadTimestamp},
		{"missing response time", `{"@timestamp": "2025-06-22T20:03:08Z"}`, ReasonMissingResponseTime},
		{"non-numeric response time", `{"@timestamp": "2025-06-22T20:03:08Z", "response_time": "fast"}`, ReasonBadResponseTime},
		{"negative response time", `{"@timestamp": "2025-06-22T20:03:08Z", "response_time": -0.5}`, ReasonNegativeResponseTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := lp.Parse(tt.line)
			if err == nil {
				t.Fatalf("Parse() = %+v, want error", rec)
			}

			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("error is %T, want *ParseError", err)
			}
			if parseErr.Reason != tt.reason {
				t.Errorf("Reason = %q, want %q", parseErr.Reason, tt.reason)
			}
		})
	}
}

func TestLineParser_Parse_NoURLField(t *testing.T) {
	layout := testLayout()
	layout.URLField = ""
	lp := NewLineParser(layout)

	rec, err := lp.Parse(`{"@timestamp": "2025-06-22T20:03:08Z", "response_time": 0.1, "url": "/api/users"}`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if rec.URL != "" {
		t.Errorf("URL = %q, want empty when no URL field is configured", rec.URL)
	}
}

func TestLineParser_Parse_CustomFieldNames(t *testing.T) {
	lp := NewLineParser(Layout{
		TimestampField:    "ts",
		TimestampLayout:   "2006-01-02 15:04:05",
		ResponseTimeField: "duration",
		URLField:          "path",
	})

	rec, err := lp.Parse(`{"ts": "2025-06-22 20:03:08", "duration": 1.5, "path": "/healthz"}`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := time.Date(2025, 6, 22, 20, 3, 8, 0, time.UTC)
	if !rec.Timestamp.Equal(want) {
		t.Errorf("Timestamp = %v, want %v", rec.Timestamp, want)
	}
	if rec.ResponseTime != 1.5 {
		t.Errorf("ResponseTime = %v, want 1.5", rec.ResponseTime)
	}
	if rec.URL != "/healthz" {
		t.Errorf("URL = %q, want /healthz", rec.URL)
	}
}
