package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/okian/tuiermo/internal/domain/model"
)

// Styles holds the lipgloss styles used by View.
type Styles struct {
	HelpKey    lipgloss.Style
	Help       lipgloss.Style
	Title      lipgloss.Style
	Input      lipgloss.Style
	InputFocus lipgloss.Style
	List       lipgloss.Style
	Correct    lipgloss.Style
	Present    lipgloss.Style
	Absent     lipgloss.Style
	Error      lipgloss.Style
}

// DefaultStyles returns the default colour scheme.
func DefaultStyles() Styles {
	border := lipgloss.RoundedBorder()
	return Styles{
		HelpKey: lipgloss.NewStyle().Bold(true),
		Help:    lipgloss.NewStyle().Faint(true),
		Title:   lipgloss.NewStyle().Bold(true),
		Input: lipgloss.NewStyle().
			Border(border).
			Padding(0, 1),
		InputFocus: lipgloss.NewStyle().
			Border(border).
			BorderForeground(lipgloss.Color("3")).
			Foreground(lipgloss.Color("3")).
			Padding(0, 1),
		List: lipgloss.NewStyle().
			Border(border).
			Padding(0, 1),
		Correct: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Present: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Absent:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

func (s Styles) letter(c model.LetterClass) lipgloss.Style {
	switch c {
	case model.Correct:
		return s.Correct
	case model.Present:
		return s.Present
	default:
		return s.Absent
	}
}
