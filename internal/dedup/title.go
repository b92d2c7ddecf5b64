// Package dedup detects source records that already exist in the curated
// reference corpus, using fuzzy title similarity.
package dedup

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeTitle canonicalizes a title for comparison: lowercase, whitespace
// runs collapsed to single spaces, leading and trailing whitespace trimmed.
// An absent title normalizes to the empty string. The result is a comparison
// key only and is never shown to the user.
func NormalizeTitle(title string) string {
	title = strings.ToLower(strings.TrimSpace(title))
	return whitespaceRun.ReplaceAllString(title, " ")
}
