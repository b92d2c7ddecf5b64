// Package domain provides the record types and error taxonomy shared by the
// Scopus reconciliation pipeline and its collaborators.
package domain

// HighlightReason classifies why a result record needs manual review of its
// department assignment. These values are consumed by the report writer to
// decide cell highlighting and are never part of the published schema.
type HighlightReason string

const (
	// HighlightNone means the department resolved cleanly.
	HighlightNone HighlightReason = ""
	// HighlightNotFound means at least one affiliated author has no row in
	// the department mapping table.
	HighlightNotFound HighlightReason = "not_found"
	// HighlightMultiple means the affiliated authors resolved to more than
	// one distinct department.
	HighlightMultiple HighlightReason = "multiple"
)

// SourceRecord is one bibliographic entry from a Scopus export. Every field
// is optional in the input schema; absent columns load as empty strings and
// an unknown year loads as zero.
type SourceRecord struct {
	Title string
	Year  int

	// Authors is the plain semicolon-delimited author list.
	Authors string
	// AuthorFullNames holds semicolon-delimited "Last, First (id)" entries.
	AuthorFullNames string
	// AuthorsWithAffiliations holds semicolon-delimited author blocks of the
	// form "Last, First, affiliation, city, country".
	AuthorsWithAffiliations string

	SourceTitle   string
	Volume        string
	Issue         string
	ArticleNumber string
	PageStart     string
	PageEnd       string
	PageCount     string
}

// ReferenceRecord is an entry of the previously curated corpus. Only the
// title participates in duplicate comparison; the year is used by the
// optional year filter.
type ReferenceRecord struct {
	Title string
	Year  int
}

// DepartmentMapping pairs an author short name ("Last, F.") with a
// department. The same author name may appear in multiple rows when the
// author belongs to more than one department, and the department may be
// blank.
type DepartmentMapping struct {
	AuthorName string
	Department string
}

// ResultRecord is one row of the reconciliation output, in the published
// column order. Source is always "Scopus"; Presentation, Data, Amount and
// Quartile are reserved blank columns filled in manually downstream.
type ResultRecord struct {
	Department         string
	AffiliatedAuthors  string
	AllAuthors         string
	AllAuthorFullNames string
	Title              string
	Year               int
	SourceTitle        string
	Volume             string
	Issue              string
	ArticleNumber      string
	PageStart          string
	PageEnd            string
	PageCount          string
	Source             string
	Presentation       string
	Data               string
	Amount             string
	Quartile           string

	// Highlight is internal review metadata for the report writer.
	Highlight HighlightReason
}

// NeedsHighlight reports whether the department cell of this record should
// be shaded in the rendered report.
func (r ResultRecord) NeedsHighlight() bool {
	return r.Highlight != HighlightNone
}

// Statistics holds the counters accumulated across one pipeline run.
//
// Invariants after every run:
//
//	NewArticles + DuplicatesFound == AfterTitleFilter
//	AffiliatedArticles + NoAffiliatedAuthors == NewArticles
//	HighlightedDepartments == HighlightedNotFound + HighlightedMultiple
type Statistics struct {
	OriginalSourceCount      int
	OriginalReferenceCount   int
	AfterYearFilterSource    int
	AfterYearFilterReference int
	AfterTitleFilter         int
	ExcludedByTitle          int
	NewArticles              int
	DuplicatesFound          int
	AffiliatedArticles       int
	NoAffiliatedAuthors      int
	HighlightedDepartments   int
	HighlightedNotFound      int
	HighlightedMultiple      int
}
