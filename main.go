package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"power-gadget/internal/analysis"
	"power-gadget/internal/config"
	"power-gadget/internal/logger"
	"power-gadget/internal/parser"
	"power-gadget/internal/report"
	"power-gadget/internal/ui"
)

type options struct {
	powerLogFile string
	copyFriendly bool
	view         bool
}

func main() {
	cfg := config.Load()
	log := logger.New(cfg)

	if err := newRootCmd(cfg, log).Execute(); err != nil {
		log.Error("power-gadget failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config, log *slog.Logger) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "power-gadget --power-log-file <path> [--copy-friendly] [--view]",
		Short: "Summarize a power gadget log",
		Long: "Parses a power gadget log (table of samples followed by a summary) and\n" +
			"reports CPU utilization, frequency-weighted utilization and average power.",
		Example:       "  power-gadget --power-log-file 'test.pl'",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.powerLogFile == "" {
				return errors.New("--power-log-file has to specify a filename")
			}
			return run(cmd.OutOrStdout(), cfg, log, opts)
		},
	}

	cmd.Flags().StringVar(&opts.powerLogFile, "power-log-file", "", "power gadget log to analyse (required)")
	cmd.Flags().BoolVar(&opts.copyFriendly, "copy-friendly", false, "print one tab-separated value per line")
	cmd.Flags().BoolVar(&opts.view, "view", false, "browse the log in an interactive terminal viewer")
	cmd.MarkFlagRequired("power-log-file")
	cmd.MarkFlagsMutuallyExclusive("copy-friendly", "view")

	return cmd
}

func run(out io.Writer, cfg *config.Config, log *slog.Logger, opts options) error {
	powerLog, err := parser.New(log).ParseFile(opts.powerLogFile)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", opts.powerLogFile, err)
	}

	stats, err := analysis.NewEngine(log).Compute(powerLog)
	if err != nil {
		return fmt.Errorf("failed to compute statistics for %s: %w", opts.powerLogFile, err)
	}

	switch {
	case opts.view:
		return ui.Run(powerLog, stats, log)
	case opts.copyFriendly:
		return report.Compact(out, stats)
	default:
		return report.Verbose(out, powerLog, stats, report.Options{PreviewValues: cfg.PreviewValues})
	}
}
