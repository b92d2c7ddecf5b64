package pipeline

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/khazar-analytics/scopus-processor/internal/domain"
)

// Options are the caller-supplied parameters for one pipeline run. They are
// passed in explicitly rather than read from module state, so multiple
// configurations can coexist and be tested independently.
type Options struct {
	// Threshold is the duplicate similarity threshold, 0-100 inclusive.
	Threshold int `validate:"gte=0,lte=100"`

	// Years restricts both source and reference records to the given
	// publication years. Empty means no year filtering.
	Years []int

	// TitleExcludeKeywords drops source records whose title contains any of
	// these substrings, case-insensitively. Records without a title are
	// always kept.
	TitleExcludeKeywords []string

	// AffiliationKeywords identify the target institution within an
	// affiliation block.
	AffiliationKeywords []string

	// AffiliationExcludeKeywords veto an affiliation block even when an
	// inclusion keyword matches.
	AffiliationExcludeKeywords []string
}

// validate checks option bounds, translating validator output into the
// domain error taxonomy.
func (o Options) validate(v *validator.Validate) error {
	err := v.Struct(o)
	if err == nil {
		return nil
	}

	var invalid validator.ValidationErrors
	if errors.As(err, &invalid) && len(invalid) > 0 {
		return &domain.OptionError{
			Field:   invalid[0].Field(),
			Message: "failed on rule " + invalid[0].Tag(),
		}
	}
	return err
}

// yearSet returns the year filter as a set, or nil when filtering is off.
func (o Options) yearSet() map[int]bool {
	if len(o.Years) == 0 {
		return nil
	}
	set := make(map[int]bool, len(o.Years))
	for _, y := range o.Years {
		set[y] = true
	}
	return set
}
