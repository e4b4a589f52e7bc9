package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"logstats/pkg/detector"
)

// DetectOptions holds command-line options for the detect command.
type DetectOptions struct {
	Output     string
	SampleSize int
	Field      string
	ShowAll    bool
}

// NewDetectCommand creates the detect command.
func NewDetectCommand() *cobra.Command {
	opts := &DetectOptions{}

	cmd := &cobra.Command{
		Use:   "detect <log-file>",
		Short: "Detect the timestamp layout in a log file",
		Long: `Analyze a log file to detect the timestamp layout its records use.

Samples JSON lines from the file and tests the timestamp field against
common layouts. Reports the best match with a confidence score and a
ready-to-use YAML configuration snippet.

Example:
  logstats detect app.log
  logstats detect --sample 500 big.log
  logstats detect --field ts app.log`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().IntVarP(&opts.SampleSize, "sample", "n", detector.DefaultSampleSize, "Number of lines to sample")
	cmd.Flags().StringVar(&opts.Field, "field", detector.DefaultTimestampField, "JSON field holding the timestamp")
	cmd.Flags().BoolVar(&opts.ShowAll, "all", false, "Show all matching layouts, not just the best")

	return cmd
}

func runDetect(cmd *cobra.Command, args []string, opts *DetectOptions) error {
	logFile := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Check file exists
	if _, err := os.Stat(logFile); os.IsNotExist(err) {
		return fmt.Errorf("log file not found: %s", logFile)
	}

	d := detector.New(
		detector.WithSampleSize(opts.SampleSize),
		detector.WithTimestampField(opts.Field),
	)

	result, err := d.DetectFromFile(ctx, logFile)
	if err != nil {
		return fmt.Errorf("detection failed: %w", err)
	}

	switch opts.Output {
	case "json":
		return outputDetectJSON(cmd, result, logFile)
	default:
		return outputDetectText(cmd, result, logFile, opts)
	}
}

func outputDetectText(cmd *cobra.Command, result *detector.DetectionResult, logFile string, opts *DetectOptions) error {
	w := cmd.OutOrStdout()

	fmt.Fprintln(w, "=== Timestamp Layout Detection ===")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "File: %s\n", logFile)
	fmt.Fprintf(w, "Lines sampled: %d\n", result.SampledLines)
	fmt.Fprintf(w, "Lines with timestamp field: %d\n", result.WithField)
	fmt.Fprintln(w)

	if !result.HasMatch() {
		fmt.Fprintln(w, "No timestamp layout detected.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Tip: check the first few lines manually, then set")
		fmt.Fprintln(w, "format.timestamp_layout in your config file.")
		return nil
	}

	best := result.BestMatch()
	fmt.Fprintf(w, "Detected layout: %s\n", best.Format.Name)
	fmt.Fprintf(w, "Confidence: %.1f%% (%d/%d lines matched)\n",
		best.Confidence*100, best.MatchCount, result.SampledLines)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Sample value: %s\n", best.SampleValue)
	fmt.Fprintf(w, "Parsed as:    %s\n", best.ParsedTime.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintln(w)

	if opts.ShowAll && len(result.Matches) > 1 {
		fmt.Fprintln(w, "Other matching layouts:")
		for _, m := range result.Matches[1:] {
			fmt.Fprintf(w, "  %s (%d/%d lines)\n", m.Format.Name, m.MatchCount, result.SampledLines)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "--- Configuration snippet (copy to your config file) ---")
	fmt.Fprintln(w, "format:")
	fmt.Fprintf(w, "  timestamp_field: %q\n", opts.Field)
	fmt.Fprintf(w, "  timestamp_layout: %q\n", best.Format.Layout)

	return nil
}

func outputDetectJSON(cmd *cobra.Command, result *detector.DetectionResult, logFile string) error {
	out := struct {
		File   string                    `json:"file"`
		Result *detector.DetectionResult `json:"result"`
	}{
		File:   logFile,
		Result: result,
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(&out)
}
