// Package report reduces record sets to summary metrics.
package report

// Kind identifies a report metric.
type Kind string

const (
	// KindAverage is the arithmetic mean of response times.
	KindAverage Kind = "average"
)

// SupportedKinds returns all report kinds the engine can compute.
func SupportedKinds() []Kind {
	return []Kind{KindAverage}
}

// Result is the outcome of reducing a record set.
type Result struct {
	// Kind is the metric that was computed.
	Kind Kind `json:"kind"`

	// Value is the computed metric. Meaningless when NoData is true.
	Value float64 `json:"value"`

	// Count is the number of records the metric covers.
	Count int `json:"count"`

	// NoData is true when the input record set was empty.
	NoData bool `json:"no_data"`

	// Endpoints is the per-endpoint breakdown, most requested first.
	// Only records carrying a URL contribute.
	Endpoints []EndpointStat `json:"endpoints,omitempty"`
}

// EndpointStat summarizes one endpoint (URL with the query string removed).
type EndpointStat struct {
	Endpoint string  `json:"endpoint"`
	Count    int     `json:"count"`
	Average  float64 `json:"avg_response_time"`
}
