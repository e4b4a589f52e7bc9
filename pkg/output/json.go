package output

import (
	"context"
	"encoding/json"
	"io"
	"math"

	"logstats/pkg/report"
)

// JSONFormatter formats reports as JSON.
type JSONFormatter struct {
	opts FormatOptions
}

// NewJSONFormatter creates a new JSON formatter with the given options.
func NewJSONFormatter(opts FormatOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// Format renders the report as JSON. Metric values are rounded to the
// configured precision so output is reproducible.
func (f *JSONFormatter) Format(ctx context.Context, rep *Report, w io.Writer) error {
	rounded := *rep.Result
	rounded.Value = f.round(rounded.Value)
	if len(rounded.Endpoints) > 0 {
		endpoints := make([]report.EndpointStat, len(rounded.Endpoints))
		copy(endpoints, rounded.Endpoints)
		for i := range endpoints {
			endpoints[i].Average = f.round(endpoints[i].Average)
		}
		rounded.Endpoints = endpoints
	}

	out := *rep
	out.Result = &rounded

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if f.opts.Quiet {
		// Quiet mode: just the result
		return encoder.Encode(out.Result)
	}

	return encoder.Encode(&out)
}

func (f *JSONFormatter) round(v float64) float64 {
	scale := math.Pow(10, float64(f.opts.Precision))
	return math.Round(v*scale) / scale
}
