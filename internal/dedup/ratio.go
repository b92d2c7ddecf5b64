package dedup

import (
	"math"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Ratio returns a symmetric character-level similarity score between 0 and
// 100: the Levenshtein distance of the two strings normalized by the sum of
// their lengths. Identical strings score 100; two empty strings are treated
// as identical.
func Ratio(a, b string) int {
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	if total == 0 {
		return 100
	}

	dist := levenshtein.ComputeDistance(a, b)
	return int(math.Round(100 * float64(total-dist) / float64(total)))
}
