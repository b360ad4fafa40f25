// Package constraint models what is known about the hidden word: letters
// pinned to positions, letters known to be present with a minimum count, and
// letters known to be absent. Parsing normalizes raw user input and rejects
// contradictory combinations before any filtering runs.
package constraint

import (
	"fmt"
	"sort"
	"strings"
)

// Wildcard marks an unconstrained position in a fixed pattern.
const Wildcard = '_'

// Policy selects which constraint overlaps count as contradictions.
type Policy int

const (
	// PolicyRelaxed permits the same letter in both fixed and required,
	// which is how words with repeated letters are tracked: one occurrence
	// pinned to a position, another merely known to be present.
	PolicyRelaxed Policy = iota
	// PolicyStrict additionally rejects any overlap between fixed and
	// required letters.
	PolicyStrict
)

// ParsePolicy maps a config string to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "relaxed":
		return PolicyRelaxed, nil
	case "strict":
		return PolicyStrict, nil
	}
	return PolicyRelaxed, fmt.Errorf("unknown validation policy %q (want \"relaxed\" or \"strict\")", s)
}

// ValidationError reports malformed or contradictory constraint input.
// It names the offending letters so the user can correct them.
type ValidationError struct {
	Letters []rune
	Reason  string
}

func (e *ValidationError) Error() string {
	if len(e.Letters) == 0 {
		return e.Reason
	}
	letters := make([]string, len(e.Letters))
	for i, r := range e.Letters {
		letters[i] = string(r)
	}
	return fmt.Sprintf("letters %s: %s", strings.Join(letters, ", "), e.Reason)
}

// Alphabet is the set of letters words may be made of.
type Alphabet map[rune]struct{}

// NewAlphabet builds an Alphabet from the runes of s.
func NewAlphabet(s string) Alphabet {
	a := make(Alphabet, len(s))
	for _, r := range strings.ToLower(s) {
		a[r] = struct{}{}
	}
	return a
}

// DefaultAlphabet returns the Russian alphabet, the reference domain of the
// "5 букв" game.
func DefaultAlphabet() Alphabet {
	return NewAlphabet("абвгдеёжзийклмнопрстуфхцчшщъыьэюя")
}

// Contains reports whether r is a letter of the alphabet.
func (a Alphabet) Contains(r rune) bool {
	_, ok := a[r]
	return ok
}

// Constraints is the full constraint state for one puzzle. A zero count in
// Required and absence from Forbidden mean "nothing known". Instances are
// replaced wholesale between rounds, never shared between writers.
type Constraints struct {
	// Fixed has one entry per word position, either a letter or Wildcard.
	Fixed []rune
	// Required maps a letter to its known minimum occurrence count,
	// independent of position. Only positive counts are stored.
	Required map[rune]int
	// Forbidden holds letters known to be entirely absent.
	Forbidden map[rune]struct{}
}

// Empty returns unconstrained Constraints for words of the given length.
func Empty(length int) Constraints {
	fixed := make([]rune, length)
	for i := range fixed {
		fixed[i] = Wildcard
	}
	return Constraints{
		Fixed:     fixed,
		Required:  make(map[rune]int),
		Forbidden: make(map[rune]struct{}),
	}
}

// Parse validates raw fixed/required/forbidden strings and builds normalized
// Constraints. fixed must be exactly length symbols of alphabet letters or
// Wildcard; required and forbidden may only contain alphabet letters.
// Contradictions fail with a *ValidationError before any filtering work.
func Parse(fixed, required, forbidden string, length int, alphabet Alphabet, policy Policy) (Constraints, error) {
	fixed = strings.ToLower(fixed)
	required = strings.ToLower(required)
	forbidden = strings.ToLower(forbidden)

	fixedRunes := []rune(fixed)
	if len(fixedRunes) != length {
		return Constraints{}, &ValidationError{
			Reason: fmt.Sprintf("fixed pattern must be exactly %d symbols, got %d", length, len(fixedRunes)),
		}
	}
	for _, r := range fixedRunes {
		if r != Wildcard && !alphabet.Contains(r) {
			return Constraints{}, &ValidationError{
				Letters: []rune{r},
				Reason:  "fixed pattern may only contain alphabet letters and '_'",
			}
		}
	}
	for _, r := range required {
		if !alphabet.Contains(r) {
			return Constraints{}, &ValidationError{
				Letters: []rune{r},
				Reason:  "required letters must be alphabet letters",
			}
		}
	}
	for _, r := range forbidden {
		if !alphabet.Contains(r) {
			return Constraints{}, &ValidationError{
				Letters: []rune{r},
				Reason:  "forbidden letters must be alphabet letters",
			}
		}
	}

	c := Empty(length)
	copy(c.Fixed, fixedRunes)
	for _, r := range required {
		c.Required[r]++
	}
	for _, r := range forbidden {
		c.Forbidden[r] = struct{}{}
	}
	if err := c.Validate(policy); err != nil {
		return Constraints{}, err
	}
	return c, nil
}

// Validate checks for contradictions between the three constraint parts.
// forbidden vs required and forbidden vs fixed always conflict; fixed vs
// required conflicts only under PolicyStrict (the relaxed policy keeps the
// overlap legal for duplicate-letter words).
func (c Constraints) Validate(policy Policy) error {
	fixedSet := make(map[rune]struct{})
	for _, r := range c.Fixed {
		if r != Wildcard {
			fixedSet[r] = struct{}{}
		}
	}

	if conflict := intersect(c.Forbidden, func(r rune) bool { return c.Required[r] > 0 }); len(conflict) > 0 {
		return &ValidationError{
			Letters: conflict,
			Reason:  "marked both required and forbidden; a letter cannot be present and absent at once",
		}
	}
	if conflict := intersect(c.Forbidden, func(r rune) bool { _, ok := fixedSet[r]; return ok }); len(conflict) > 0 {
		return &ValidationError{
			Letters: conflict,
			Reason:  "marked forbidden but pinned at a fixed position; a placed letter cannot be absent",
		}
	}
	if policy == PolicyStrict {
		if conflict := intersect(fixedSet, func(r rune) bool { return c.Required[r] > 0 }); len(conflict) > 0 {
			return &ValidationError{
				Letters: conflict,
				Reason:  "appears in both fixed and required, which the strict policy rejects",
			}
		}
	}
	return nil
}

// Clone returns a deep copy; the receiver stays untouched by later updates
// to the copy.
func (c Constraints) Clone() Constraints {
	out := Constraints{
		Fixed:     make([]rune, len(c.Fixed)),
		Required:  make(map[rune]int, len(c.Required)),
		Forbidden: make(map[rune]struct{}, len(c.Forbidden)),
	}
	copy(out.Fixed, c.Fixed)
	for r, n := range c.Required {
		out.Required[r] = n
	}
	for r := range c.Forbidden {
		out.Forbidden[r] = struct{}{}
	}
	return out
}

// FixedCount counts occurrences of r among the fixed slots.
func (c Constraints) FixedCount(r rune) int {
	n := 0
	for _, f := range c.Fixed {
		if f == r {
			n++
		}
	}
	return n
}

// IsForbidden reports whether r is a forbidden letter.
func (c Constraints) IsForbidden(r rune) bool {
	_, ok := c.Forbidden[r]
	return ok
}

// FixedString renders the fixed slots as a pattern string, e.g. "м_тр_".
func (c Constraints) FixedString() string {
	return string(c.Fixed)
}

// RequiredString renders the required multiset as a sorted letter string,
// repeating letters per their count.
func (c Constraints) RequiredString() string {
	var runes []rune
	for r, n := range c.Required {
		for i := 0; i < n; i++ {
			runes = append(runes, r)
		}
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return string(runes)
}

// ForbiddenString renders the forbidden set as a sorted letter string.
func (c Constraints) ForbiddenString() string {
	var runes []rune
	for r := range c.Forbidden {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return string(runes)
}

func intersect(set map[rune]struct{}, in func(rune) bool) []rune {
	var out []rune
	for r := range set {
		if in(r) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
