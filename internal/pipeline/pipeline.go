// Package pipeline orchestrates the reconciliation of a Scopus export
// against the curated corpus: filtering, duplicate detection, affiliation
// extraction, department resolution and result assembly.
package pipeline

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/khazar-analytics/scopus-processor/internal/affiliation"
	"github.com/khazar-analytics/scopus-processor/internal/dedup"
	"github.com/khazar-analytics/scopus-processor/internal/department"
	"github.com/khazar-analytics/scopus-processor/internal/domain"
)

// SourceName is the constant origin tag stamped on every result record.
const SourceName = "Scopus"

// Result is the output of one pipeline run.
type Result struct {
	// Records are the annotated result records, in source order.
	Records []domain.ResultRecord
	// Duplicates reports every source record excluded by the detector.
	Duplicates []dedup.Match
	// Stats holds the counters accumulated across all stages.
	Stats domain.Statistics
}

// Pipeline runs the reconciliation synchronously over in-memory snapshots.
// It holds no state across invocations.
type Pipeline struct {
	logger   zerolog.Logger
	validate *validator.Validate
}

// New creates a Pipeline that logs stage progress to the given logger.
func New(logger zerolog.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		validate: validator.New(),
	}
}

// Process reconciles source records against the reference corpus and the
// department mapping table.
//
// Stages, in order: year filter, title-exclusion filter, duplicate
// detection, per-record affiliation extraction (records with no affiliated
// authors are dropped and counted), department resolution and result
// assembly. The only error path is invalid options; every data anomaly
// degrades to exclusion plus a counter.
func (p *Pipeline) Process(
	source []domain.SourceRecord,
	reference []domain.ReferenceRecord,
	mapping []domain.DepartmentMapping,
	opts Options,
) (*Result, error) {
	if err := opts.validate(p.validate); err != nil {
		return nil, err
	}

	logger := p.logger.With().Str("run_id", uuid.NewString()).Logger()

	result := &Result{
		Records: []domain.ResultRecord{},
		Stats: domain.Statistics{
			OriginalSourceCount:    len(source),
			OriginalReferenceCount: len(reference),
		},
	}
	stats := &result.Stats

	// Year filter applies to both sides so the corpus scan only covers
	// comparable years.
	if years := opts.yearSet(); years != nil {
		source = filterSourceByYear(source, years)
		reference = filterReferenceByYear(reference, years)
	}
	stats.AfterYearFilterSource = len(source)
	stats.AfterYearFilterReference = len(reference)

	source, excluded := excludeByTitle(source, opts.TitleExcludeKeywords)
	stats.ExcludedByTitle = excluded
	stats.AfterTitleFilter = len(source)

	logger.Debug().
		Int("source", stats.AfterTitleFilter).
		Int("reference", stats.AfterYearFilterReference).
		Int("excluded_by_title", excluded).
		Msg("filters applied")

	fresh, duplicates := dedup.NewDetector(opts.Threshold).FindNew(source, reference)
	result.Duplicates = duplicates
	stats.NewArticles = len(fresh)
	stats.DuplicatesFound = len(duplicates)

	logger.Info().
		Int("new_articles", stats.NewArticles).
		Int("duplicates", stats.DuplicatesFound).
		Int("threshold", opts.Threshold).
		Msg("duplicate detection finished")

	if len(fresh) == 0 {
		return result, nil
	}

	extractor := affiliation.NewExtractor(opts.AffiliationKeywords, opts.AffiliationExcludeKeywords)
	resolver := department.NewResolver(mapping)

	for _, rec := range fresh {
		authors := extractor.Extract(rec.AuthorsWithAffiliations, rec.AuthorFullNames)
		if authors.Count == 0 {
			stats.NoAffiliatedAuthors++
			continue
		}
		stats.AffiliatedArticles++

		resolution := resolver.Resolve(authors.ShortNames)
		switch resolution.Reason {
		case domain.HighlightNotFound:
			stats.HighlightedNotFound++
		case domain.HighlightMultiple:
			stats.HighlightedMultiple++
		}
		if resolution.NeedsHighlight() {
			stats.HighlightedDepartments++
			logger.Debug().
				Str("title", rec.Title).
				Str("reason", string(resolution.Reason)).
				Strs("unresolved", resolution.UnresolvedAuthors).
				Msg("department needs review")
		}

		result.Records = append(result.Records, assemble(rec, authors, resolution))
	}

	logger.Info().
		Int("affiliated", stats.AffiliatedArticles).
		Int("no_affiliated_authors", stats.NoAffiliatedAuthors).
		Int("highlighted", stats.HighlightedDepartments).
		Msg("pipeline finished")

	return result, nil
}

// assemble builds one fixed-schema result record. Absent source fields were
// already defaulted to empty strings at load time, so passthrough is direct.
func assemble(rec domain.SourceRecord, authors affiliation.Extracted, resolution department.Resolution) domain.ResultRecord {
	return domain.ResultRecord{
		Department:         resolution.Department,
		AffiliatedAuthors:  authors.ShortNames,
		AllAuthors:         rec.Authors,
		AllAuthorFullNames: rec.AuthorFullNames,
		Title:              rec.Title,
		Year:               rec.Year,
		SourceTitle:        rec.SourceTitle,
		Volume:             rec.Volume,
		Issue:              rec.Issue,
		ArticleNumber:      rec.ArticleNumber,
		PageStart:          rec.PageStart,
		PageEnd:            rec.PageEnd,
		PageCount:          rec.PageCount,
		Source:             SourceName,
		Highlight:          resolution.Reason,
	}
}

func filterSourceByYear(records []domain.SourceRecord, years map[int]bool) []domain.SourceRecord {
	kept := make([]domain.SourceRecord, 0, len(records))
	for _, rec := range records {
		if years[rec.Year] {
			kept = append(kept, rec)
		}
	}
	return kept
}

func filterReferenceByYear(records []domain.ReferenceRecord, years map[int]bool) []domain.ReferenceRecord {
	kept := make([]domain.ReferenceRecord, 0, len(records))
	for _, rec := range records {
		if years[rec.Year] {
			kept = append(kept, rec)
		}
	}
	return kept
}

// excludeByTitle drops records whose title contains any keyword,
// case-insensitively. Records without a title are always kept.
func excludeByTitle(records []domain.SourceRecord, keywords []string) ([]domain.SourceRecord, int) {
	if len(keywords) == 0 {
		return records, 0
	}

	kept := make([]domain.SourceRecord, 0, len(records))
	excluded := 0
	for _, rec := range records {
		if containsAny(rec.Title, keywords) {
			excluded++
			continue
		}
		kept = append(kept, rec)
	}
	return kept, excluded
}

func containsAny(title string, keywords []string) bool {
	if title == "" {
		return false
	}
	lower := strings.ToLower(title)
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
