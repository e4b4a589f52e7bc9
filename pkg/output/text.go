package output

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"logstats/pkg/report"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, rep *Report, w io.Writer) error {
	if !rep.HasData() {
		fmt.Fprintln(w, "No data.")
		return nil
	}

	result := rep.Result
	fmt.Fprintf(w, "%s response time: %s (%d records)\n",
		result.Kind, f.formatValue(result.Value), result.Count)

	if f.opts.Quiet {
		return nil
	}

	if len(result.Endpoints) > 0 {
		fmt.Fprintln(w)
		if err := f.formatEndpoints(result.Endpoints, w); err != nil {
			return err
		}
	}

	if f.opts.Verbose {
		fmt.Fprintln(w)
		for _, src := range rep.Metadata.Sources {
			fmt.Fprintf(w, "Source: %s\n", src)
		}
		if rep.Metadata.Date != "" {
			fmt.Fprintf(w, "Date filter: %s\n", rep.Metadata.Date)
		}
		fmt.Fprintf(w, "Skipped lines: %d\n", rep.Metadata.SkippedLines)
		fmt.Fprintf(w, "Duration: %s\n", rep.Metadata.Duration.Round(1e6))
	}

	return nil
}

func (f *TextFormatter) formatEndpoints(stats []report.EndpointStat, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "handler\ttotal\tavg_response_time")
	for _, s := range stats {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", s.Endpoint, s.Count, f.formatValue(s.Average))
	}
	return tw.Flush()
}

func (f *TextFormatter) formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', f.opts.Precision, 64)
}
