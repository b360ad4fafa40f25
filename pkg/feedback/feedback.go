// Package feedback turns a guess into per-position verdicts against a target
// word, and parses the mark strings the game hands back ("+м?о-т-р-а").
package feedback

import (
	"fmt"
	"strings"
)

// Verdict is the per-letter outcome of a guess.
type Verdict uint8

const (
	// Absent means the letter does not occur in the target.
	Absent Verdict = iota
	// Present means the letter occurs in the target at another position.
	Present
	// Correct means the letter is at this exact position.
	Correct
)

// Mark returns the single-symbol form used in game feedback.
func (v Verdict) Mark() byte {
	switch v {
	case Correct:
		return '+'
	case Present:
		return '?'
	}
	return '-'
}

// Sequence is the ordered verdicts for one guess, one entry per position.
type Sequence []Verdict

// String renders the sequence as marks, e.g. "+?--+". The rendering is also
// used as a partition key when scoring candidate guesses.
func (s Sequence) String() string {
	var b strings.Builder
	b.Grow(len(s))
	for _, v := range s {
		b.WriteByte(v.Mark())
	}
	return b.String()
}

// AllCorrect reports whether every position matched.
func (s Sequence) AllCorrect() bool {
	for _, v := range s {
		if v != Correct {
			return false
		}
	}
	return true
}

// Compare evaluates guess against target position by position: same letter at
// the same position is Correct, a letter occurring anywhere else in target is
// Present, otherwise Absent.
//
// Deliberately simplified: target letters are not consumed by earlier
// matches, so a letter occurring once in target can be marked Present at
// several guess positions. The suggestion scoring and the interactive mark
// parser both rely on exactly this behavior.
func Compare(guess, target string) Sequence {
	g := []rune(guess)
	t := []rune(target)
	n := len(g)
	if len(t) < n {
		n = len(t)
	}
	seq := make(Sequence, n)
	for i := 0; i < n; i++ {
		switch {
		case g[i] == t[i]:
			seq[i] = Correct
		case containsRune(t, g[i]):
			seq[i] = Present
		default:
			seq[i] = Absent
		}
	}
	return seq
}

// ParseMarks extracts length status symbols from input. Marks may be
// interleaved with the guessed letters ("+м?о-т-р-а") or bare ("+?---");
// anything that is not '+', '?' or '-' is skipped, and scanning stops once
// enough marks are collected. Fewer marks than length is an error.
func ParseMarks(input string, length int) (Sequence, error) {
	seq := make(Sequence, 0, length)
	for _, r := range input {
		if len(seq) == length {
			break
		}
		switch r {
		case '+':
			seq = append(seq, Correct)
		case '?':
			seq = append(seq, Present)
		case '-':
			seq = append(seq, Absent)
		}
	}
	if len(seq) != length {
		return nil, fmt.Errorf("want exactly %d marks (+, ?, -), got %d", length, len(seq))
	}
	return seq, nil
}

func containsRune(runes []rune, r rune) bool {
	for _, c := range runes {
		if c == r {
			return true
		}
	}
	return false
}
