package cli

import (
	"strings"
	"testing"

	"wordhint/pkg/config"
	"wordhint/pkg/dictionary"
)

type stubRand struct{}

func (stubRand) Intn(int) int { return 0 }

func newSession(t *testing.T, input string, words ...string) *Session {
	t.Helper()
	dict, err := dictionary.New(words, 5, "test")
	if err != nil {
		t.Fatalf("dictionary.New failed: %v", err)
	}
	s := NewSession(dict, config.DefaultConfig(), stubRand{})
	s.SetInput(strings.NewReader(input))
	return s
}

func TestSessionAllCorrectFinishes(t *testing.T) {
	// Feeding an all-correct verdict for образ leaves a single candidate,
	// which ends the session.
	s := newSession(t, "образ +о+б+р+а+з\n", "адрес", "запас", "образ")
	if err := s.Start(); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	if got := s.Constraints().FixedString(); got != "образ" {
		t.Errorf("fixed after all-correct = %q, want %q", got, "образ")
	}
}

func TestSessionBareMarksApplyToSuggestion(t *testing.T) {
	// With three candidates the suggester proposes the middle-ranked word;
	// bare marks must apply to it.
	s := newSession(t, "+++++\n", "адрес", "запас", "образ")
	if err := s.Start(); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	// Ranked order is адрес, образ, запас; middle is образ.
	if got := s.Constraints().FixedString(); got != "образ" {
		t.Errorf("fixed = %q, want the suggested word %q pinned", got, "образ")
	}
}

func TestSessionBadInputReprompts(t *testing.T) {
	// Malformed feedback must not end the session or alter state; the
	// following quit does.
	input := strings.Join([]string{
		"образ",               // bare token with no marks in it
		"образ ++",            // too few marks
		"слишкомдлинно +++++", // wrong word length
		"quit",
	}, "\n") + "\n"

	s := newSession(t, input, "адрес", "запас", "образ")
	if err := s.Start(); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	if got := s.Constraints().FixedString(); got != "_____" {
		t.Errorf("state advanced on bad input: fixed = %q", got)
	}
}

func TestSessionReset(t *testing.T) {
	// The first feedback leaves адрес and парад as candidates, so the
	// session keeps prompting; reset must then clear everything.
	input := "образ -о-б+р?а-з\nreset\nquit\n"
	s := newSession(t, input, "адрес", "запас", "образ", "парад")
	if err := s.Start(); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	cons := s.Constraints()
	if cons.FixedString() != "_____" || len(cons.Required) != 0 || len(cons.Forbidden) != 0 {
		t.Errorf("reset did not clear state: %q %q %q",
			cons.FixedString(), cons.RequiredString(), cons.ForbiddenString())
	}
}

func TestSessionEOFEndsCleanly(t *testing.T) {
	s := newSession(t, "", "адрес", "запас", "образ")
	if err := s.Start(); err != nil {
		t.Fatalf("EOF should end the session without error, got %v", err)
	}
}
