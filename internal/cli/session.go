// Package cli runs the interactive guided session and renders one-shot
// filter results.
package cli

import (
	"bufio"
	"io"
	"os"
	"strings"

	"wordhint/internal/logger"
	"wordhint/pkg/config"
	"wordhint/pkg/constraint"
	"wordhint/pkg/dictionary"
	"wordhint/pkg/feedback"
	"wordhint/pkg/filter"
	"wordhint/pkg/solver"

	"github.com/charmbracelet/log"
)

// Session drives guided play: each round it filters candidates, suggests a
// guess, reads the game's feedback and folds it into the constraints.
type Session struct {
	dict      *dictionary.Dictionary
	cfg       *config.Config
	ranker    *filter.Ranker
	suggester *solver.Suggester

	cons          constraint.Constraints
	lastSuggested string
	attempt       int

	in  io.Reader
	log *log.Logger
}

// NewSession builds a Session over dict using the config's suggestion
// settings. Input defaults to stdin.
func NewSession(dict *dictionary.Dictionary, cfg *config.Config, rng solver.Rand) *Session {
	suggester := solver.NewSuggester(dict, cfg.Suggest.Starters, rng)
	suggester.SetPoolSizes(cfg.Suggest.PoolTop, cfg.Suggest.PoolExtra)
	return &Session{
		dict:      dict,
		cfg:       cfg,
		ranker:    filter.DefaultRanker(),
		suggester: suggester,
		cons:      constraint.Empty(dict.WordLength()),
		attempt:   1,
		in:        os.Stdin,
		log:       logger.New("hint"),
	}
}

// SetInput redirects the session's input, for tests.
func (s *Session) SetInput(in io.Reader) { s.in = in }

// Start runs the round loop until the answer is found, input is exhausted,
// or the user quits. Malformed input re-prompts and never ends the session.
func (s *Session) Start() error {
	s.log.Print("wordhint interactive mode")
	s.log.Print("feedback marks: +letter correct, ?letter present elsewhere, -letter absent")
	s.log.Print("example: +м?о-т+р-а")
	s.log.Print("control words: quit (выход), reset (сброс)")

	reader := bufio.NewReader(s.in)
	for {
		done := s.showRound()
		if done {
			return nil
		}

		s.log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch strings.ToLower(line) {
		case "quit", "q", "выход":
			s.log.Print("bye")
			return nil
		case "reset", "сброс":
			s.cons = constraint.Empty(s.dict.WordLength())
			s.lastSuggested = ""
			s.attempt = 1
			s.log.Print("state reset")
			continue
		}
		s.handleFeedback(line)
	}
}

// showRound prints the current candidates and suggestion. It returns true
// when the session is over (answer found or nothing left to narrow).
func (s *Session) showRound() bool {
	words, _ := filter.Filter(s.dict, s.cons, filter.Options{
		Ranker: s.ranker,
		Sort:   true,
		Limit:  s.cfg.CLI.InteractiveLimit,
	})

	s.log.Printf("attempt %d: fixed=%q required=%q forbidden=%q",
		s.attempt, s.cons.FixedString(), s.cons.RequiredString(), s.cons.ForbiddenString())

	if len(words) == 0 {
		s.log.Warn("No candidates left; the recorded feedback is likely inconsistent")
		return true
	}
	if len(words) == 1 {
		s.log.Printf("answer found: %s", renderSuggestion(words[0]))
		return true
	}

	show := s.cfg.CLI.ShowMax
	if show > len(words) {
		show = len(words)
	}
	s.log.Printf("%d candidates (showing %d):", len(words), show)
	for i := 0; i < show; i++ {
		s.log.Printf("%2d. %s", i+1, renderWord(words[i]))
	}
	if len(words) > show {
		s.log.Printf("    ... and %d more", len(words)-show)
	}

	s.lastSuggested = s.suggester.Suggest(words, s.cons)
	s.log.Printf("try: %s", renderSuggestion(s.lastSuggested))
	return false
}

// handleFeedback parses "<word> <marks>" or bare "<marks>" (which applies to
// the last suggestion) and advances the constraint state. Parse problems are
// reported and the round repeats.
func (s *Session) handleFeedback(line string) {
	wordLen := s.dict.WordLength()

	var word, marks string
	parts := strings.Fields(line)
	switch {
	case len(parts) == 1 && s.lastSuggested != "":
		word, marks = s.lastSuggested, parts[0]
		s.log.Printf("applying marks to suggested word %q", word)
	case len(parts) == 2:
		word, marks = strings.ToLower(parts[0]), parts[1]
	default:
		s.log.Errorf("Cannot parse input; want \"word marks\" or bare marks for the last suggestion")
		return
	}

	if len([]rune(word)) != wordLen {
		s.log.Errorf("Word must be exactly %d letters, got %q", wordLen, word)
		return
	}
	if !s.dict.Contains(word) {
		s.log.Warnf("%q is not a dictionary word; recording its feedback anyway", word)
	}

	seq, err := feedback.ParseMarks(marks, wordLen)
	if err != nil {
		s.log.Errorf("Bad marks: %v", err)
		return
	}

	s.log.Printf("recorded: %s", renderVerdicts(word, seq))
	s.cons = solver.Update(s.cons, word, seq)
	s.attempt++
}

// Constraints exposes the current constraint state, for tests.
func (s *Session) Constraints() constraint.Constraints { return s.cons }
