// Package filter narrows record sets by calendar date.
package filter

import (
	"fmt"
	"time"

	"logstats/pkg/parser"
)

// DateLayout is the accepted format for target dates.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD target date.
func ParseDate(s string) (time.Time, error) {
	day, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return day, nil
}

// ByDate returns the records whose timestamp falls on the given calendar
// day. Time of day is ignored, and each record's date is taken in the
// offset its timestamp was logged with. A zero day returns the input
// unchanged. Input order is preserved.
func ByDate(records []*parser.Record, day time.Time) []*parser.Record {
	if day.IsZero() {
		return records
	}

	target := day.Format(DateLayout)
	filtered := make([]*parser.Record, 0, len(records))
	for _, rec := range records {
		if rec.Timestamp.Format(DateLayout) == target {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}
