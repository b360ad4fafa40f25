// Package filter narrows a dictionary to the words still consistent with the
// current constraints and ranks them by letter frequency.
package filter

import (
	"wordhint/pkg/constraint"
	"wordhint/pkg/dictionary"

	"github.com/charmbracelet/log"
)

// Stats records the candidate count after each filtering stage. A stage that
// did not run repeats the previous stage's count.
type Stats struct {
	Original       int
	AfterPattern   int
	AfterInclusion int
	AfterExclusion int
}

// Options controls ranking and truncation of the filter result.
type Options struct {
	// Ranker orders the result by descending frequency score when Sort is
	// set; nil falls back to DefaultRanker.
	Ranker *Ranker
	// Sort enables frequency ranking.
	Sort bool
	// Limit truncates the result to the first N words when positive.
	Limit int
}

// Filter applies the constraints to the dictionary in three stages (fixed
// pattern, required multiset, forbidden letters) and optionally ranks and
// truncates the survivors. The dictionary is never mutated; the result is a
// fresh slice. No match yields an empty slice, not an error.
func Filter(dict *dictionary.Dictionary, cons constraint.Constraints, opts Options) ([]string, Stats) {
	stats := Stats{Original: dict.Len()}

	words := matchPattern(dict.Words(), cons.Fixed)
	stats.AfterPattern = len(words)

	if len(cons.Required) > 0 {
		words = matchInclusion(words, cons.Required)
	}
	stats.AfterInclusion = len(words)

	if len(cons.Forbidden) > 0 {
		words = matchExclusion(words, cons.Forbidden)
	}
	stats.AfterExclusion = len(words)

	if opts.Sort && len(words) > 0 {
		ranker := opts.Ranker
		if ranker == nil {
			ranker = DefaultRanker()
		}
		ranker.Sort(words)
	}

	if opts.Limit > 0 && len(words) > opts.Limit {
		words = words[:opts.Limit]
	}

	log.Debugf("Filter: %d -> pattern %d -> inclusion %d -> exclusion %d",
		stats.Original, stats.AfterPattern, stats.AfterInclusion, stats.AfterExclusion)
	return words, stats
}

// matchPattern keeps words matching the fixed slots letter for letter;
// wildcard slots match any single letter.
func matchPattern(words []string, fixed []rune) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if MatchesFixed(w, fixed) {
			out = append(out, w)
		}
	}
	return out
}

// MatchesFixed reports whether word satisfies the fixed positional slots.
func MatchesFixed(word string, fixed []rune) bool {
	runes := []rune(word)
	if len(runes) != len(fixed) {
		return false
	}
	for i, f := range fixed {
		if f != constraint.Wildcard && runes[i] != f {
			return false
		}
	}
	return true
}

// matchInclusion keeps words whose per-letter counts cover the required
// multiset: a doubled required letter needs at least two occurrences.
func matchInclusion(words []string, required map[rune]int) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		counts := make(map[rune]int)
		for _, r := range w {
			counts[r]++
		}
		ok := true
		for letter, n := range required {
			if counts[letter] < n {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, w)
		}
	}
	return out
}

// matchExclusion drops words containing any forbidden letter.
func matchExclusion(words []string, forbidden map[rune]struct{}) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		ok := true
		for _, r := range w {
			if _, bad := forbidden[r]; bad {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, w)
		}
	}
	return out
}
