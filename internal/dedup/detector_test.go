package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khazar-analytics/scopus-processor/internal/domain"
)

func sourceTitles(titles ...string) []domain.SourceRecord {
	records := make([]domain.SourceRecord, len(titles))
	for i, title := range titles {
		records[i] = domain.SourceRecord{Title: title}
	}
	return records
}

func referenceTitles(titles ...string) []domain.ReferenceRecord {
	records := make([]domain.ReferenceRecord, len(titles))
	for i, title := range titles {
		records[i] = domain.ReferenceRecord{Title: title}
	}
	return records
}

func TestFindNewNormalizedEquality(t *testing.T) {
	t.Parallel()

	// Extra spaces and different case normalize to the same key, so the
	// record is a duplicate at any threshold up to 100.
	source := sourceTitles("Deep Learning in Healthcare")
	reference := referenceTitles("Deep learning  in healthcare ")

	for _, threshold := range []int{0, 50, 90, 100} {
		fresh, matches := NewDetector(threshold).FindNew(source, reference)

		assert.Empty(t, fresh, "threshold %d", threshold)
		require.Len(t, matches, 1, "threshold %d", threshold)
		assert.Equal(t, 100, matches[0].Score)
		assert.Equal(t, "Deep Learning in Healthcare", matches[0].SourceTitle)
		// The report carries the normalized comparison key of the matched
		// reference title.
		assert.Equal(t, "deep learning in healthcare", matches[0].MatchedTitle)
	}
}

func TestFindNewKeepsUnmatched(t *testing.T) {
	t.Parallel()

	source := sourceTitles(
		"Graph Neural Networks for Traffic Forecasting",
		"Quantum Error Correction Codes",
	)
	reference := referenceTitles("A Completely Unrelated Survey of Pottery")

	fresh, matches := NewDetector(90).FindNew(source, reference)

	require.Len(t, fresh, 2)
	assert.Equal(t, source[0].Title, fresh[0].Title)
	assert.Equal(t, source[1].Title, fresh[1].Title)
	assert.Empty(t, matches)
}

func TestFindNewFirstMatchPolicy(t *testing.T) {
	t.Parallel()

	// Both reference titles clear the threshold; the first one in scan
	// order wins even though the second scores higher.
	source := sourceTitles("Deep Learning Methods")
	reference := referenceTitles(
		"Deep Learning Method",  // near match, clears threshold first
		"Deep Learning Methods", // exact match, never reached
	)

	fresh, matches := NewDetector(80).FindNew(source, reference)

	assert.Empty(t, fresh)
	require.Len(t, matches, 1)
	assert.Equal(t, "deep learning method", matches[0].MatchedTitle)
	assert.Less(t, matches[0].Score, 100)
}

func TestFindNewSuffixVariantAtDefaultThreshold(t *testing.T) {
	t.Parallel()

	// A re-publication that only appends a suffix to an existing title must
	// still clear the default threshold of 90.
	source := sourceTitles("Analysis of Deep Learning Methods in Medical Imaging: Review")
	reference := referenceTitles("Analysis of Deep Learning Methods in Medical Imaging")

	fresh, matches := NewDetector(90).FindNew(source, reference)

	assert.Empty(t, fresh)
	require.Len(t, matches, 1)
	assert.GreaterOrEqual(t, matches[0].Score, 90)
}

func TestFindNewThresholdMonotonic(t *testing.T) {
	t.Parallel()

	source := sourceTitles(
		"Deep Learning in Healthcare",
		"Deep Learning in Health",
		"Reinforcement Learning Basics",
		"Completely Different Topic",
	)
	reference := referenceTitles(
		"Deep learning in healthcare",
		"Reinforcement learning: basics",
	)

	previous := -1
	for threshold := 0; threshold <= 100; threshold += 10 {
		_, matches := NewDetector(threshold).FindNew(source, reference)
		if previous >= 0 {
			assert.LessOrEqual(t, len(matches), previous,
				"raising the threshold must never increase duplicates (threshold %d)", threshold)
		}
		previous = len(matches)
	}
}

func TestFindNewAbsentTitles(t *testing.T) {
	t.Parallel()

	// An absent source title compares as empty: identical to an absent
	// reference title, dissimilar to everything else.
	fresh, matches := NewDetector(90).FindNew(
		sourceTitles(""),
		referenceTitles("Some Existing Title"),
	)
	assert.Len(t, fresh, 1)
	assert.Empty(t, matches)

	fresh, matches = NewDetector(90).FindNew(
		sourceTitles(""),
		referenceTitles(""),
	)
	assert.Empty(t, fresh)
	require.Len(t, matches, 1)
	assert.Equal(t, 100, matches[0].Score)
}

func TestFindNewBestScoreReporting(t *testing.T) {
	t.Parallel()

	source := sourceTitles("Deep Learning Methods")
	reference := referenceTitles(
		"Unrelated Entry",
		"Deep Learning Methods",
	)

	_, matches := NewDetector(95).FindNew(source, reference)

	require.Len(t, matches, 1)
	assert.Equal(t, 100, matches[0].Score)
	assert.Equal(t, 100, matches[0].BestScore)
	assert.GreaterOrEqual(t, matches[0].BestScore, matches[0].Score)
}

func TestFindNewEmptyInputs(t *testing.T) {
	t.Parallel()

	fresh, matches := NewDetector(90).FindNew(nil, referenceTitles("Anything"))
	assert.Empty(t, fresh)
	assert.Empty(t, matches)

	fresh, matches = NewDetector(90).FindNew(sourceTitles("New Article"), nil)
	assert.Len(t, fresh, 1)
	assert.Empty(t, matches)
}
