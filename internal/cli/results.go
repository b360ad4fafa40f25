package cli

import (
	"wordhint/pkg/filter"

	"github.com/charmbracelet/log"
)

// capUnlimited bounds one-shot output when the user gave no -limit.
const capUnlimited = 20

// PrintResults renders a one-shot filter run: the ranked words and the
// per-stage counts. When no limit was requested and the result is large,
// output is capped with a hint.
func PrintResults(words []string, stats filter.Stats, limited bool) {
	if len(words) == 0 {
		log.Warn("No matching words")
		return
	}
	log.Printf("Found %d matching words:", len(words))

	shown := words
	if !limited && len(words) > 50 {
		log.Warnf("Large result; showing first %d. Use -limit to change.", capUnlimited)
		shown = words[:capUnlimited]
	}
	for _, w := range shown {
		log.Printf("  %s", renderWord(w))
	}

	log.Print("Filter stages:")
	log.Printf("  original:        %d", stats.Original)
	log.Printf("  after pattern:   %d", stats.AfterPattern)
	log.Printf("  after inclusion: %d", stats.AfterInclusion)
	log.Printf("  after exclusion: %d", stats.AfterExclusion)
}

// PrintLetterStats renders the most frequent letters of a result set.
func PrintLetterStats(stats *filter.LetterStats, max int) {
	if stats == nil || len(stats.Overall) == 0 {
		return
	}
	log.Print("Most frequent letters in the result:")
	for i, lf := range stats.Overall {
		if i >= max {
			break
		}
		log.Printf("  %s: %.1f%%", string(lf.Letter), lf.Pct)
	}
	for pos, freqs := range stats.ByPosition {
		if len(freqs) == 0 {
			continue
		}
		top := freqs[0]
		log.Printf("  position %d leader: %s (%.1f%%)", pos+1, string(top.Letter), top.Pct)
	}
}

// PrintSuggestion renders the recommended next guess.
func PrintSuggestion(word string) {
	log.Printf("Recommended next guess: %s", renderSuggestion(word))
}
