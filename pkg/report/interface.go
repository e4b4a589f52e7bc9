package report

import "logstats/pkg/parser"

// Reducer computes a single report kind over a record set.
// Each report kind implements this interface; new kinds plug in here
// without touching the loader or the date filter.
type Reducer interface {
	// Kind returns the report kind this reducer computes.
	Kind() Kind

	// Reduce computes the metric over the given records.
	// An empty input yields a Result with NoData set.
	Reduce(records []*parser.Record) *Result
}
