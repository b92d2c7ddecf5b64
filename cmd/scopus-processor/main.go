// Package main provides the command-line entry point for the Scopus
// processor: it loads the input files, runs the reconciliation pipeline and
// writes the highlighted report.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/khazar-analytics/scopus-processor/internal/config"
	"github.com/khazar-analytics/scopus-processor/internal/observability"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A local .env can override configuration during development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := observability.NewLogger(cfg.Logging)

	root := newRootCmd()
	root.AddCommand(newProcessCmd(cfg, logger))

	return root.Execute()
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scopus-processor",
		Short: "Reconcile a Scopus export against the institutional publication registry",
		Long: `scopus-processor compares a Scopus export with the curated publication
registry, drops records that already exist, isolates institution-affiliated
authors and assigns each new record to a department, flagging records that
need manual review.`,
		SilenceUsage: true,
	}
}
