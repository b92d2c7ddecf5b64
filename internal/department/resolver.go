// Package department maps institution-affiliated authors to organizational
// departments and flags records that need manual review.
package department

import (
	"strings"

	"github.com/khazar-analytics/scopus-processor/internal/domain"
)

// Resolution is the outcome of resolving one record's author list.
type Resolution struct {
	// Department is the deduplicated department list joined with "; ",
	// in order of first occurrence.
	Department string
	// Reason classifies why the record needs review. An unresolved author
	// always dominates a multi-department outcome.
	Reason domain.HighlightReason
	// UnresolvedAuthors lists the short names with no mapping row.
	UnresolvedAuthors []string
}

// NeedsHighlight reports whether the rendered department cell should be
// shaded.
func (r Resolution) NeedsHighlight() bool {
	return r.Reason != domain.HighlightNone
}

// Resolver looks up author short names in a department mapping table.
type Resolver struct {
	entries []domain.DepartmentMapping
}

// NewResolver creates a Resolver over the given mapping table. The table is
// scanned linearly per author; it is a small, human-curated dataset.
func NewResolver(entries []domain.DepartmentMapping) *Resolver {
	return &Resolver{entries: entries}
}

// Resolve matches each short name in the "; "-separated input against the
// mapping table, case-insensitively and exactly. Every matching row with a
// non-blank department contributes to the result; duplicates are removed
// preserving first occurrence. An empty input short-circuits to an empty
// resolution with no highlight.
func (r *Resolver) Resolve(shortNames string) Resolution {
	if strings.TrimSpace(shortNames) == "" {
		return Resolution{}
	}

	var departments []string
	seen := make(map[string]bool)
	var unresolved []string

	for _, author := range strings.Split(shortNames, ";") {
		author = strings.TrimSpace(author)
		if author == "" {
			continue
		}

		found := false
		for _, entry := range r.entries {
			if !strings.EqualFold(entry.AuthorName, author) {
				continue
			}
			found = true
			dept := strings.TrimSpace(entry.Department)
			if dept == "" || seen[dept] {
				continue
			}
			seen[dept] = true
			departments = append(departments, dept)
		}

		if !found {
			unresolved = append(unresolved, author)
		}
	}

	reason := domain.HighlightNone
	switch {
	case len(unresolved) > 0:
		reason = domain.HighlightNotFound
	case len(departments) > 1:
		reason = domain.HighlightMultiple
	}

	return Resolution{
		Department:        strings.Join(departments, "; "),
		Reason:            reason,
		UnresolvedAuthors: unresolved,
	}
}
