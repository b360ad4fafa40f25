package cli

import (
	"strings"

	"wordhint/pkg/feedback"

	"github.com/charmbracelet/lipgloss"
)

var (
	wordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#569fba"})

	correctStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#285943", Dark: "#31748f"}).
			Bold(true)

	presentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#ea9d34", Dark: "#f6c177"})

	absentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#9893a5", Dark: "#6e6a86"})

	suggestStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
)

// renderWord colors a candidate word for list output.
func renderWord(w string) string {
	return wordStyle.Render(w)
}

// renderSuggestion highlights the recommended next guess.
func renderSuggestion(w string) string {
	return suggestStyle.Render(strings.ToUpper(w))
}

// renderVerdicts echoes a guess with each letter colored by its verdict.
func renderVerdicts(word string, seq feedback.Sequence) string {
	runes := []rune(word)
	var b strings.Builder
	for i, v := range seq {
		if i >= len(runes) {
			break
		}
		letter := string(runes[i])
		switch v {
		case feedback.Correct:
			b.WriteString(correctStyle.Render(letter))
		case feedback.Present:
			b.WriteString(presentStyle.Render(letter))
		default:
			b.WriteString(absentStyle.Render(letter))
		}
	}
	return b.String()
}
