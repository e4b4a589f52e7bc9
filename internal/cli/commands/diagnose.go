package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"logstats/pkg/parser"
)

// DiagnoseOptions holds options for the diagnose command
type DiagnoseOptions struct {
	Config  string
	Limit   int
	Verbose bool
}

// DiagnosticResult represents the result of diagnosing a single file
type DiagnosticResult struct {
	File     string
	Status   string // "ok", "warning", "error"
	Message  string
	Details  []string
	Suggests []string
}

// NewDiagnoseCommand creates the diagnose command.
func NewDiagnoseCommand() *cobra.Command {
	opts := &DiagnoseOptions{}

	cmd := &cobra.Command{
		Use:   "diagnose <log-file>...",
		Short: "Explain why log lines would be skipped",
		Long: `Explain why log lines in the given files would be skipped.

Parses every line the way 'report' does and tallies the rejection
reasons: invalid JSON, missing or unparseable timestamp, missing,
non-numeric or negative response time. Example lines are shown for
each reason so the format problem is easy to spot.

Example:
  logstats diagnose app.log
  logstats diagnose -v app.log other.log
  logstats diagnose -c logstats.yaml app.log`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiagnose(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Path to YAML config file")
	cmd.Flags().IntVar(&opts.Limit, "limit", 3, "Example lines shown per skip reason")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show detailed diagnostic output")

	return cmd
}

func runDiagnose(cmd *cobra.Command, args []string, opts *DiagnoseOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(ctx, opts.Config)
	if err != nil {
		return err
	}
	lp := parser.NewLineParser(lineLayout(cfg))

	results := make([]DiagnosticResult, 0, len(args))
	for _, file := range args {
		results = append(results, diagnoseFile(lp, file, opts.Limit))
	}

	printDiagnostics(cmd.OutOrStdout(), results, opts)
	return nil
}

// diagnoseFile parses one file and categorizes every rejected line.
func diagnoseFile(lp *parser.LineParser, path string, limit int) DiagnosticResult {
	result := DiagnosticResult{File: path}

	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		result.Status = "error"
		result.Message = fmt.Sprintf("Cannot open file: %v", err)
		result.Suggests = []string{"Check the file path and permissions"}
		return result
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var total, blank, valid int
	reasonCounts := make(map[parser.Reason]int)
	reasonExamples := make(map[parser.Reason][]string)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			blank++
			continue
		}
		total++

		if _, err := lp.Parse(line); err != nil {
			var parseErr *parser.ParseError
			if errors.As(err, &parseErr) {
				reasonCounts[parseErr.Reason]++
				if len(reasonExamples[parseErr.Reason]) < limit {
					reasonExamples[parseErr.Reason] = append(reasonExamples[parseErr.Reason],
						fmt.Sprintf("line %d: %v", lineNum, parseErr))
				}
			}
			continue
		}
		valid++
	}

	if err := scanner.Err(); err != nil {
		result.Status = "error"
		result.Message = fmt.Sprintf("Error reading file: %v", err)
		return result
	}

	skipped := total - valid

	switch {
	case total == 0:
		result.Status = "warning"
		result.Message = "File contains no non-blank lines"
	case valid == 0:
		result.Status = "error"
		result.Message = fmt.Sprintf("No valid records: all %d lines would be skipped", total)
	case skipped > 0:
		result.Status = "warning"
		result.Message = fmt.Sprintf("%d of %d lines would be skipped (%d valid, %d blank)",
			skipped, total, valid, blank)
	default:
		result.Status = "ok"
		result.Message = fmt.Sprintf("All %d lines parse cleanly (%d blank)", total, blank)
	}

	for reason, count := range reasonCounts {
		result.Details = append(result.Details, fmt.Sprintf("%s: %d line(s)", reason, count))
		result.Details = append(result.Details, reasonExamples[reason]...)
	}

	if reasonCounts[parser.ReasonBadTimestamp] > 0 {
		result.Suggests = append(result.Suggests,
			fmt.Sprintf("Run 'logstats detect %s' to find the right timestamp_layout", path))
	}
	if reasonCounts[parser.ReasonMissingTimestamp] > 0 || reasonCounts[parser.ReasonMissingResponseTime] > 0 {
		result.Suggests = append(result.Suggests,
			"Check format.timestamp_field and format.response_time_field in your config")
	}

	return result
}

func printDiagnostics(w io.Writer, results []DiagnosticResult, opts *DiagnoseOptions) {
	fmt.Fprintln(w, "=== Log File Diagnostics ===")
	fmt.Fprintln(w)

	for _, result := range results {
		fmt.Fprintf(w, "[%s] %s\n", strings.ToUpper(result.Status), result.File)
		fmt.Fprintf(w, "  %s\n", result.Message)

		if opts.Verbose || result.Status != "ok" {
			for _, detail := range result.Details {
				fmt.Fprintf(w, "  - %s\n", detail)
			}
		}

		for _, suggest := range result.Suggests {
			fmt.Fprintf(w, "  Suggestion: %s\n", suggest)
		}

		fmt.Fprintln(w)
	}
}
