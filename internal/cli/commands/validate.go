package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"logstats/pkg/config"
	"logstats/pkg/report"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a LogStats configuration file without running a report.

Checks:
  - YAML syntax
  - Precision range
  - Field layout completeness
  - Default report kind`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	// The config file can name a default kind the report engine doesn't know.
	if _, err := report.NewReducer(report.Kind(cfg.Report.DefaultKind)); err != nil {
		return fmt.Errorf("validation failed: report.default_kind: %w", err)
	}

	fmt.Fprintf(w, "\nConfiguration valid!\n")
	fmt.Fprintf(w, "  Default report kind: %s\n", cfg.Report.DefaultKind)
	fmt.Fprintf(w, "  Precision:           %d decimal place(s)\n", cfg.Report.Precision)
	fmt.Fprintf(w, "  Timestamp field:     %s (layout %s)\n", cfg.Format.TimestampField, cfg.Format.TimestampLayout)
	fmt.Fprintf(w, "  Response time field: %s\n", cfg.Format.ResponseTimeField)
	if cfg.Format.URLField != "" {
		fmt.Fprintf(w, "  URL field:           %s\n", cfg.Format.URLField)
	}

	return nil
}
