package solver

import (
	"math/rand"

	"wordhint/pkg/constraint"
	"wordhint/pkg/dictionary"
	"wordhint/pkg/feedback"
	"wordhint/pkg/filter"

	"github.com/charmbracelet/log"
)

// Rand supplies the single nondeterministic operation of the package, the
// uniform fallback pick. Tests inject a deterministic stub.
type Rand interface {
	Intn(n int) int
}

type systemRand struct{}

func (systemRand) Intn(n int) int { return rand.Intn(n) }

// SystemRand returns a Rand backed by math/rand's global source.
func SystemRand() Rand { return systemRand{} }

// DefaultStarters are curated opening words covering frequent Russian
// letters, tried in order when no candidates remain.
var DefaultStarters = []string{"адрес", "стена", "рейка", "тоска", "ление", "окрас"}

const (
	defaultPoolTop   = 10
	defaultPoolExtra = 20
)

// Suggester picks the next guess for the current candidate list.
type Suggester struct {
	dict      *dictionary.Dictionary
	starters  []string
	rng       Rand
	poolTop   int
	poolExtra int
}

// NewSuggester builds a Suggester over dict. Nil starters and rng fall back
// to DefaultStarters and SystemRand.
func NewSuggester(dict *dictionary.Dictionary, starters []string, rng Rand) *Suggester {
	if starters == nil {
		starters = DefaultStarters
	}
	if rng == nil {
		rng = SystemRand()
	}
	return &Suggester{
		dict:      dict,
		starters:  starters,
		rng:       rng,
		poolTop:   defaultPoolTop,
		poolExtra: defaultPoolExtra,
	}
}

// SetPoolSizes overrides how many top candidates and extra dictionary words
// enter the discriminative pool. Non-positive values keep the defaults.
func (s *Suggester) SetPoolSizes(top, extra int) {
	if top > 0 {
		s.poolTop = top
	}
	if extra > 0 {
		s.poolExtra = extra
	}
}

// Suggest returns the next guess. candidates must already be frequency
// ranked (the filter's output order).
//
// Small candidate sets short-circuit: none left falls back to a starter
// word, one or two takes the top-ranked, three to five takes the middle
// rank. Larger sets run a bounded discriminative search over a pool of
// guesses, preferring the guess whose verdict partition splits the
// candidates into many small groups.
func (s *Suggester) Suggest(candidates []string, cons constraint.Constraints) string {
	switch {
	case len(candidates) == 0:
		return s.starter(cons)
	case len(candidates) <= 2:
		return candidates[0]
	case len(candidates) <= 5:
		return candidates[len(candidates)/2]
	}

	pool := s.buildPool(candidates, cons)
	if len(pool) == 0 {
		return candidates[0]
	}

	inCandidates := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		inCandidates[c] = struct{}{}
	}

	best := ""
	bestScore := -1.0
	for _, guess := range pool {
		groups := make(map[string]int)
		largest := 0
		for _, c := range candidates {
			key := feedback.Compare(guess, c).String()
			groups[key]++
			if groups[key] > largest {
				largest = groups[key]
			}
		}
		// Many distinct groups and a small dominant group both mean the
		// guess shrinks the space regardless of the actual outcome.
		score := float64(len(groups)) - float64(largest)/float64(len(candidates))
		if _, ok := inCandidates[guess]; ok {
			score += 0.5
		}
		if score > bestScore {
			bestScore = score
			best = guess
		}
	}
	if best == "" {
		return candidates[0]
	}
	log.Debugf("Suggest: picked %q (score %.3f) from pool of %d", best, bestScore, len(pool))
	return best
}

// buildPool gathers the top ranked candidates plus a bounded sample of
// dictionary words that satisfy the fixed slots and avoid forbidden
// letters, scanned in dictionary order.
func (s *Suggester) buildPool(candidates []string, cons constraint.Constraints) []string {
	pool := make([]string, 0, s.poolTop+s.poolExtra)
	top := s.poolTop
	if top > len(candidates) {
		top = len(candidates)
	}
	pool = append(pool, candidates[:top]...)

	extras := 0
	for _, word := range s.dict.Words() {
		if extras >= s.poolExtra {
			break
		}
		if hasForbidden(word, cons) {
			continue
		}
		if !filter.MatchesFixed(word, cons.Fixed) {
			continue
		}
		pool = append(pool, word)
		extras++
	}
	return pool
}

// starter returns the first curated opener that is a dictionary word with no
// forbidden letters, or a uniformly random dictionary word if none fits.
func (s *Suggester) starter(cons constraint.Constraints) string {
	for _, word := range s.starters {
		if s.dict.Contains(word) && !hasForbidden(word, cons) {
			return word
		}
	}
	return s.dict.Word(s.rng.Intn(s.dict.Len()))
}

func hasForbidden(word string, cons constraint.Constraints) bool {
	for _, r := range word {
		if cons.IsForbidden(r) {
			return true
		}
	}
	return false
}
