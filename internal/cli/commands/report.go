package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"logstats/pkg/config"
	"logstats/pkg/filter"
	"logstats/pkg/output"
	"logstats/pkg/parser"
	"logstats/pkg/report"
)

// ReportOptions holds command-line options for the report command.
type ReportOptions struct {
	Files   []string
	Kind    string
	Date    string
	Output  string
	Config  string
	Verbose bool
	Quiet   bool
}

// NewReportCommand creates the report command.
func NewReportCommand() *cobra.Command {
	opts := &ReportOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Compute a summary report from log files",
		Long: `Compute a summary report over one or more JSON-lines log files.

Each non-blank line must be a JSON object carrying a timestamp
("@timestamp", RFC 3339) and a response time ("response_time",
non-negative number, seconds). Field names and the timestamp layout
can be changed in the config file. Malformed lines are skipped and
counted; an unreadable file aborts the run.

Report kinds:
  average - arithmetic mean of response times, with a per-endpoint
            breakdown for records that carry a URL

Exit codes:
  0 - Report produced (including the explicit no-data case)
  2 - Input or runtime error`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, opts)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.Files, "file", "f", nil, "Log file path or glob (can be repeated)")
	cmd.Flags().StringVarP(&opts.Kind, "report", "r", "", "Report kind (default from config: average)")
	cmd.Flags().StringVar(&opts.Date, "date", "", "Only include records from this date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Path to YAML config file")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show sources, skip counts and per-line skip reasons")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Headline only, no breakdown")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runReport(cmd *cobra.Command, opts *ReportOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configureLogging(opts.Verbose, opts.Quiet)

	cfg, err := loadConfig(ctx, opts.Config)
	if err != nil {
		return err
	}

	// Validate every input before touching any log file: a fatal input
	// error must not produce a partial report.
	kind := report.Kind(opts.Kind)
	if opts.Kind == "" {
		kind = report.Kind(cfg.Report.DefaultKind)
	}
	reducer, err := report.NewReducer(kind)
	if err != nil {
		return err
	}

	var day time.Time
	if opts.Date != "" {
		day, err = filter.ParseDate(opts.Date)
		if err != nil {
			return err
		}
	}

	formatter, err := createFormatter(opts.Output, output.FormatOptions{
		Verbose:   opts.Verbose,
		Quiet:     opts.Quiet,
		Precision: cfg.Report.Precision,
	})
	if err != nil {
		return err
	}

	files, err := parser.ExpandGlobs(opts.Files)
	if err != nil {
		return err
	}

	started := time.Now()

	lp := parser.NewLineParser(lineLayout(cfg))
	records, skipped, err := parser.Load(ctx, files, lp)
	if err != nil {
		return fmt.Errorf("loading logs: %w", err)
	}
	if skipped > 0 {
		logrus.WithField("skipped", skipped).Warn("skipped malformed log lines")
	}

	filtered := filter.ByDate(records, day)

	result := reducer.Reduce(filtered)

	rep := output.NewReport(result, output.Metadata{
		Sources:      files,
		Date:         opts.Date,
		SkippedLines: skipped,
		GeneratedAt:  started,
		Duration:     time.Since(started),
	})

	if err := formatter.Format(ctx, rep, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	return nil
}

// loadConfig returns the configuration from the given path, or the
// built-in defaults when no path is supplied.
func loadConfig(ctx context.Context, path string) (*config.Config, error) {
	if path == "" {
		cfg := config.DefaultConfig()
		cfg.ApplyEnvironmentOverrides()
		return cfg, nil
	}
	cfg, err := config.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// lineLayout maps the config's format section onto the parser's layout.
func lineLayout(cfg *config.Config) parser.Layout {
	return parser.Layout{
		TimestampField:    cfg.Format.TimestampField,
		TimestampLayout:   cfg.Format.TimestampLayout,
		ResponseTimeField: cfg.Format.ResponseTimeField,
		URLField:          cfg.Format.URLField,
	}
}

func createFormatter(name string, formatOpts output.FormatOptions) (output.Formatter, error) {
	switch name {
	case "text":
		return output.NewTextFormatter(formatOpts), nil
	case "json":
		return output.NewJSONFormatter(formatOpts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or json)", name)
	}
}

// configureLogging sets the operational log level from verbosity flags.
// Operational logs go to stderr; stdout carries only the report.
func configureLogging(verbose, quiet bool) {
	logrus.SetOutput(os.Stderr)
	switch {
	case verbose:
		logrus.SetLevel(logrus.DebugLevel)
	case quiet:
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
