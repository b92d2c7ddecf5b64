package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/khazar-analytics/scopus-processor/internal/config"
	"github.com/khazar-analytics/scopus-processor/internal/domain"
	"github.com/khazar-analytics/scopus-processor/internal/pipeline"
	"github.com/khazar-analytics/scopus-processor/internal/report"
	"github.com/khazar-analytics/scopus-processor/internal/tabular"
)

type processFlags struct {
	scopusPath      string
	referencePath   string
	departmentsPath string
	outputPath      string
	referenceSheet  string

	threshold           int
	years               []int
	titleExcludes       []string
	affiliationKeywords []string
	affiliationExcludes []string
}

func newProcessCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	flags := processFlags{}

	cmd := &cobra.Command{
		Use:   "process",
		Short: "Run the reconciliation pipeline and write the report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProcess(cmd, cfg, logger, flags)
		},
	}

	cmd.Flags().StringVar(&flags.scopusPath, "scopus", "", "Scopus export file (csv/xlsx)")
	cmd.Flags().StringVar(&flags.referencePath, "reference", "", "curated registry file (csv/xlsx)")
	cmd.Flags().StringVar(&flags.departmentsPath, "departments", "", "author-to-department mapping file (csv/xlsx)")
	cmd.Flags().StringVar(&flags.outputPath, "output", defaultOutputPath(), "destination report file (xlsx)")
	cmd.Flags().StringVar(&flags.referenceSheet, "sheet", cfg.Report.ReferenceSheet, "sheet name in the registry workbook")

	cmd.Flags().IntVar(&flags.threshold, "threshold", cfg.Matching.Threshold, "duplicate similarity threshold (0-100)")
	cmd.Flags().IntSliceVar(&flags.years, "year", nil, "publication years to keep (repeatable; default all years)")
	cmd.Flags().StringSliceVar(&flags.titleExcludes, "exclude-title", cfg.Matching.TitleExcludeKeywords, "title substrings that exclude a record")
	cmd.Flags().StringSliceVar(&flags.affiliationKeywords, "affiliation-keyword", cfg.Matching.AffiliationKeywords, "institution keywords for affiliation matching")
	cmd.Flags().StringSliceVar(&flags.affiliationExcludes, "exclude-affiliation", cfg.Matching.AffiliationExcludeKeywords, "affiliation substrings that veto a block")

	for _, name := range []string{"scopus", "reference", "departments"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func runProcess(cmd *cobra.Command, cfg *config.Config, logger zerolog.Logger, flags processFlags) error {
	source, err := tabular.LoadSource(flags.scopusPath)
	if err != nil {
		return err
	}
	reference, err := tabular.LoadReference(flags.referencePath, flags.referenceSheet)
	if err != nil {
		return err
	}
	mapping, err := tabular.LoadDepartments(flags.departmentsPath)
	if err != nil {
		return err
	}

	logger.Info().
		Int("source", len(source)).
		Int("reference", len(reference)).
		Int("mapping", len(mapping)).
		Msg("input files loaded")

	result, err := pipeline.New(logger).Process(source, reference, mapping, pipeline.Options{
		Threshold:                  flags.threshold,
		Years:                      flags.years,
		TitleExcludeKeywords:       flags.titleExcludes,
		AffiliationKeywords:        flags.affiliationKeywords,
		AffiliationExcludeKeywords: flags.affiliationExcludes,
	})
	if err != nil {
		return err
	}

	printStatistics(cmd, result.Stats)

	if len(result.Records) == 0 {
		cmd.Println("No new affiliated articles found; report not written.")
		return nil
	}

	summary, err := report.NewWriter(cfg.Report.HighlightColor, logger).Write(result.Records, flags.outputPath)
	if err != nil {
		var exportErr *domain.ExportError
		if errors.As(err, &exportErr) {
			return fmt.Errorf("report export failed: %w", exportErr)
		}
		return err
	}

	cmd.Printf("Report written to %s (%d rows, %d flagged for review)\n",
		summary.Path, summary.Rows, summary.Highlighted)
	return nil
}

func printStatistics(cmd *cobra.Command, stats domain.Statistics) {
	rows := []struct {
		label string
		value int
	}{
		{"Scopus records", stats.OriginalSourceCount},
		{"Registry records", stats.OriginalReferenceCount},
		{"After year filter (Scopus)", stats.AfterYearFilterSource},
		{"After year filter (registry)", stats.AfterYearFilterReference},
		{"Excluded by title", stats.ExcludedByTitle},
		{"After title filter", stats.AfterTitleFilter},
		{"Duplicates found", stats.DuplicatesFound},
		{"New articles", stats.NewArticles},
		{"With affiliated authors", stats.AffiliatedArticles},
		{"Without affiliated authors", stats.NoAffiliatedAuthors},
		{"Flagged for review", stats.HighlightedDepartments},
		{"  department not found", stats.HighlightedNotFound},
		{"  multiple departments", stats.HighlightedMultiple},
	}

	for _, row := range rows {
		cmd.Printf("%-30s %d\n", row.label, row.value)
	}
}

func defaultOutputPath() string {
	return fmt.Sprintf("scopus_new_articles_%s.xlsx", time.Now().Format("2006-01-02"))
}
