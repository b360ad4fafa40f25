package filter

import "sort"

// LetterFreq is one letter's share of a word set, in percent of words.
type LetterFreq struct {
	Letter rune
	Pct    float64
}

// LetterStats summarizes letter usage over a result set.
type LetterStats struct {
	// Overall counts a letter once per occurrence across all words,
	// sorted by descending percentage.
	Overall []LetterFreq
	// ByPosition holds the same breakdown per word position.
	ByPosition [][]LetterFreq
}

// ComputeLetterStats tallies overall and positional letter frequencies for
// the given words. Empty input yields nil.
func ComputeLetterStats(words []string) *LetterStats {
	if len(words) == 0 {
		return nil
	}
	total := float64(len(words))
	overall := make(map[rune]int)
	var positional []map[rune]int

	for _, w := range words {
		for i, letter := range []rune(w) {
			overall[letter]++
			for len(positional) <= i {
				positional = append(positional, make(map[rune]int))
			}
			positional[i][letter]++
		}
	}

	stats := &LetterStats{
		Overall:    toSorted(overall, total),
		ByPosition: make([][]LetterFreq, len(positional)),
	}
	for i, counts := range positional {
		stats.ByPosition[i] = toSorted(counts, total)
	}
	return stats
}

func toSorted(counts map[rune]int, total float64) []LetterFreq {
	out := make([]LetterFreq, 0, len(counts))
	for letter, n := range counts {
		out = append(out, LetterFreq{Letter: letter, Pct: float64(n) / total * 100})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Pct != out[j].Pct {
			return out[i].Pct > out[j].Pct
		}
		return out[i].Letter < out[j].Letter
	})
	return out
}
