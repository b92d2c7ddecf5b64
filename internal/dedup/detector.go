package dedup

import (
	"github.com/khazar-analytics/scopus-processor/internal/domain"
)

// Match reports one source record that was excluded as a duplicate of an
// existing reference record.
type Match struct {
	// SourceTitle is the raw title of the excluded source record.
	SourceTitle string
	// MatchedTitle is the normalized title of the reference record that
	// qualified.
	MatchedTitle string
	// Score is the similarity score of the qualifying match.
	Score int
	// BestScore is the highest score seen across the scan up to and
	// including the qualifying match. Reporting only; it plays no part in
	// the inclusion decision.
	BestScore int
}

// Detector decides whether source records already exist in a reference
// corpus by scanning reference titles in their given order and declaring a
// duplicate on the first similarity score at or above the threshold.
//
// This is a first-match policy: once an earlier reference title clears the
// threshold, a later one with a higher score is never considered.
type Detector struct {
	threshold int
}

// NewDetector creates a Detector with the given similarity threshold in
// [0,100].
func NewDetector(threshold int) *Detector {
	return &Detector{threshold: threshold}
}

// FindNew returns the subsequence of source records with no qualifying match
// in the reference corpus, order preserved, together with a match report for
// every excluded record.
//
// Absent titles normalize to empty strings and simply compare as empty, so
// there are no failure modes. Complexity is O(n*m); both inputs are bounded,
// human-curated datasets.
func (d *Detector) FindNew(source []domain.SourceRecord, reference []domain.ReferenceRecord) ([]domain.SourceRecord, []Match) {
	refTitles := make([]string, len(reference))
	for i, ref := range reference {
		refTitles[i] = NormalizeTitle(ref.Title)
	}

	fresh := make([]domain.SourceRecord, 0, len(source))
	var matches []Match

	for _, rec := range source {
		title := NormalizeTitle(rec.Title)

		best := 0
		duplicate := false
		for i, refTitle := range refTitles {
			score := Ratio(title, refTitle)
			if score > best {
				best = score
			}
			if score >= d.threshold {
				matches = append(matches, Match{
					SourceTitle:  rec.Title,
					MatchedTitle: refTitles[i],
					Score:        score,
					BestScore:    best,
				})
				duplicate = true
				break
			}
		}

		if !duplicate {
			fresh = append(fresh, rec)
		}
	}

	return fresh, matches
}
