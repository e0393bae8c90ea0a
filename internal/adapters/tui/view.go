package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/okian/tuiermo/internal/domain/model"
	"github.com/okian/tuiermo/internal/domain/session"
)

const solvedMark = "✔"

// View implements tea.Model.
func (m Model) View() string {
	sections := []string{
		m.renderHelp(),
		m.renderInput(),
		m.renderHistory(),
	}
	if m.err != nil {
		sections = append(sections, m.styles.Error.Render(m.err.Error()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHelp() string {
	k, h := m.styles.HelpKey, m.styles.Help
	if m.snap.Mode == session.ModeEditing {
		return k.Render(m.keymap.Cancel.Help().Key) + h.Render(" to "+m.keymap.Cancel.Help().Desc+", ") +
			k.Render(m.keymap.Submit.Help().Key) + h.Render(" to "+m.keymap.Submit.Help().Desc)
	}
	return k.Render(m.keymap.Quit.Help().Key) + h.Render(" to "+m.keymap.Quit.Help().Desc+", ") +
		k.Render(m.keymap.BeginEdit.Help().Key) + h.Render(" to "+m.keymap.BeginEdit.Help().Desc)
}

func (m Model) renderInput() string {
	style := m.styles.Input
	if m.snap.Mode == session.ModeEditing {
		style = m.styles.InputFocus
	}
	if m.width > 2 {
		style = style.Width(m.width - 2)
	}
	body := lipgloss.JoinVertical(lipgloss.Left, m.styles.Title.Render("Tuiermo"), m.input.View())
	return style.Render(body)
}

func (m Model) renderHistory() string {
	style := m.styles.List
	if m.width > 2 {
		style = style.Width(m.width - 2)
	}
	rows := make([]string, 0, len(m.snap.History)+1)
	rows = append(rows, m.styles.Title.Render("Tuiermos"))
	for i, g := range m.snap.History {
		rows = append(rows, m.renderRow(i, g))
	}
	return style.Render(strings.Join(rows, "\n"))
}

func (m Model) renderRow(i int, g model.ScoredGuess) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(i))
	b.WriteString(": ")
	if g.Solved() {
		b.WriteString(m.styles.Correct.Render(g.Word + " " + solvedMark))
		return b.String()
	}
	for _, l := range g.Letters {
		b.WriteString(m.styles.letter(l.Class).Render(string(l.Char)))
	}
	return b.String()
}
