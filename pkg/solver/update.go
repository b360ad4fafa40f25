// Package solver derives new constraints from guess feedback and picks the
// next guess that best splits the remaining candidates.
package solver

import (
	"wordhint/pkg/constraint"
	"wordhint/pkg/feedback"
)

// Update folds one round of feedback into the constraints and returns the
// next state. The prior constraints are never mutated.
//
// Two passes, order significant. Pass 1 pins every Correct letter to its
// position. Pass 2 walks the positions again against the updated fixed
// slots:
//
//   - Correct releases one required instance of the letter, now accounted
//     for by its fixed slot.
//   - Present adds a required instance when the letter is not yet known at
//     all, or when it is already pinned somewhere (the duplicate case: one
//     occurrence placed, another confirmed elsewhere). A letter tracked
//     purely via required stays at its current count.
//   - Absent forbids the letter only when it is known neither fixed nor
//     required; otherwise it just means "no further occurrences" and
//     changes nothing.
func Update(prior constraint.Constraints, guess string, verdicts feedback.Sequence) constraint.Constraints {
	next := prior.Clone()
	letters := []rune(guess)

	for i, v := range verdicts {
		if v == feedback.Correct && i < len(next.Fixed) {
			next.Fixed[i] = letters[i]
		}
	}

	for i, v := range verdicts {
		if i >= len(letters) {
			break
		}
		letter := letters[i]
		switch v {
		case feedback.Correct:
			if next.Required[letter] > 0 {
				next.Required[letter]--
				if next.Required[letter] == 0 {
					delete(next.Required, letter)
				}
			}
		case feedback.Present:
			fixedCount := next.FixedCount(letter)
			if fixedCount+next.Required[letter] == 0 || fixedCount > 0 {
				next.Required[letter]++
			}
		case feedback.Absent:
			if next.FixedCount(letter) == 0 && next.Required[letter] == 0 {
				next.Forbidden[letter] = struct{}{}
			}
		}
	}
	return next
}
