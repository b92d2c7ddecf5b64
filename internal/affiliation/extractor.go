// Package affiliation parses the semi-structured author/affiliation fields
// of a Scopus export and isolates the authors that belong to the target
// institution.
package affiliation

import (
	"regexp"
	"strings"
)

// identifierEntry matches one "Last, First (1234567)" full-name entry.
var identifierEntry = regexp.MustCompile(`^(.+?)\s*\((\d+)\)`)

// Extracted holds the institution-affiliated authors of one record in three
// textual representations, aligned by position, plus the count of accepted
// author blocks.
type Extracted struct {
	// ShortNames is "Last, F." forms joined with "; ".
	ShortNames string
	// FullNamesWithIDs is "Last, First (id)" forms joined with "; ".
	FullNamesWithIDs string
	// FullNames is "Last, First" forms joined with "; ".
	FullNames string
	// Count is the number of accepted affiliation blocks.
	Count int
}

// fullName is one indexed entry from the "Author full names" field.
type fullName struct {
	name string
	id   string
}

// Extractor classifies affiliation blocks against institution keywords.
// A block is accepted when any keyword occurs as a case-insensitive
// substring anywhere in its text, unless an exclude keyword also occurs.
type Extractor struct {
	keywords []string
	excludes []string
}

// NewExtractor creates an Extractor for the given keyword lists. With no
// keywords, no block is ever accepted.
func NewExtractor(keywords, excludeKeywords []string) *Extractor {
	return &Extractor{
		keywords: lowered(keywords),
		excludes: lowered(excludeKeywords),
	}
}

// Extract parses one "Authors with affiliations" string (author blocks
// separated by ";", each block "Last, First, affiliation...") together with
// the parallel "Author full names" string ("Last, First (id)" entries) and
// returns the affiliated authors. A missing affiliation string yields an
// all-empty result with count zero.
func (e *Extractor) Extract(authorsWithAffiliations, authorFullNames string) Extracted {
	if strings.TrimSpace(authorsWithAffiliations) == "" {
		return Extracted{}
	}

	index := indexFullNames(authorFullNames)

	var short, withIDs, full []string
	for _, block := range strings.Split(authorsWithAffiliations, ";") {
		block = strings.TrimSpace(block)
		if block == "" || !e.accepts(block) {
			continue
		}

		// The author's name is the text before the first two commas.
		parts := strings.Split(block, ",")
		if len(parts) < 2 {
			continue
		}
		lastName := strings.TrimSpace(parts[0])
		firstName := strings.TrimSpace(parts[1])

		short = append(short, shortName(lastName, firstName))

		if entry, ok := index.lookup(lastName, firstName); ok {
			withIDs = append(withIDs, entry.name+" ("+entry.id+")")
			full = append(full, entry.name)
		} else {
			// No identifier entry; fall back to the raw name pair.
			fallback := lastName + ", " + firstName
			withIDs = append(withIDs, fallback)
			full = append(full, fallback)
		}
	}

	return Extracted{
		ShortNames:       strings.Join(short, "; "),
		FullNamesWithIDs: strings.Join(withIDs, "; "),
		FullNames:        strings.Join(full, "; "),
		Count:            len(short),
	}
}

// accepts reports whether a block belongs to the target institution.
// Exclude keywords are checked first and veto the block outright.
func (e *Extractor) accepts(block string) bool {
	lower := strings.ToLower(block)
	for _, kw := range e.excludes {
		if strings.Contains(lower, kw) {
			return false
		}
	}
	for _, kw := range e.keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// shortName abbreviates to "Last, F.".
func shortName(lastName, firstName string) string {
	initial := ""
	if runes := []rune(firstName); len(runes) > 0 {
		initial = string(runes[0]) + "."
	}
	return lastName + ", " + initial
}

// nameIndex maps lowercase last names to their full-name entries. Several
// co-authors can share a last name, so each key holds all entries in input
// order and lookup disambiguates by first name.
type nameIndex map[string][]fullName

// indexFullNames parses the "Author full names" field. Entries not matching
// the "Name (id)" shape contribute nothing.
func indexFullNames(authorFullNames string) nameIndex {
	index := make(nameIndex)
	if strings.TrimSpace(authorFullNames) == "" {
		return index
	}

	for _, part := range strings.Split(authorFullNames, ";") {
		part = strings.TrimSpace(part)
		m := identifierEntry.FindStringSubmatch(part)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		lastName := strings.ToLower(strings.TrimSpace(strings.SplitN(name, ",", 2)[0]))
		index[lastName] = append(index[lastName], fullName{name: name, id: m[2]})
	}
	return index
}

// lookup finds the full-name entry for an author block. When several entries
// share the last name, the first name disambiguates: an exact match beats an
// initial match beats a bare last-name match, and among equally good
// candidates the later entry wins.
func (ix nameIndex) lookup(lastName, firstName string) (fullName, bool) {
	candidates := ix[strings.ToLower(lastName)]
	if len(candidates) == 0 {
		return fullName{}, false
	}

	best := candidates[0]
	bestRank := -1
	for _, c := range candidates {
		if rank := firstNameRank(c.name, firstName); rank >= bestRank {
			best = c
			bestRank = rank
		}
	}
	return best, true
}

// firstNameRank scores how well a candidate entry's first-name component
// matches the block's first name: 2 exact, 1 initial, 0 otherwise.
func firstNameRank(candidateName, firstName string) int {
	parts := strings.SplitN(candidateName, ",", 2)
	if len(parts) < 2 {
		return 0
	}
	candidate := strings.ToLower(strings.TrimSpace(parts[1]))
	first := strings.ToLower(strings.TrimSpace(firstName))
	if candidate == "" || first == "" {
		return 0
	}

	if candidate == first {
		return 2
	}
	if candidate[0] == first[0] {
		return 1
	}
	return 0
}

func lowered(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.ToLower(v))
	}
	return out
}
