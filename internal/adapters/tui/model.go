// Package tui is the interactive terminal front end. It decodes key presses
// into session events and renders the hosted session after each one.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	service "github.com/okian/tuiermo/internal/app"
	"github.com/okian/tuiermo/internal/domain/session"
)

// Host is the part of the game service the UI drives.
type Host interface {
	Dispatch(ctx context.Context, ev session.Event) (session.Result, error)
	Snapshot() service.Snapshot
}

// Model is the Bubble Tea model for one game session.
type Model struct {
	ctx  context.Context
	host Host

	// UI Components
	input textinput.Model

	// State
	snap service.Snapshot
	err  error

	// Rendering
	width  int
	styles Styles

	// Keybindings
	keymap KeyMap
}

// Option configures a Model.
type Option func(*Model)

// WithStyles sets the rendering styles.
func WithStyles(s Styles) Option {
	return func(m *Model) {
		m.styles = s
	}
}

// WithKeyMap sets the key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) {
		m.keymap = k
	}
}

// New creates a Model for a started host.
func New(ctx context.Context, host Host, opts ...Option) Model {
	input := textinput.New()
	input.Prompt = ""

	m := Model{
		ctx:    ctx,
		host:   host,
		input:  input,
		snap:   host.Snapshot(),
		styles: DefaultStyles(),
		keymap: DefaultKeyMap(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Err returns the error that stopped the program, if any.
func (m Model) Err() error {
	return m.err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.ForceQuit) {
			return m, tea.Quit
		}
		switch m.snap.Mode {
		case session.ModeNormal:
			return m.handleNormalKeys(msg)
		case session.ModeEditing:
			return m.handleEditingKeys(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-6, 1)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.BeginEdit):
		if _, err := m.dispatch(session.BeginEdit{}); err != nil {
			return m, tea.Quit
		}
		m.input.Reset()
		return m, m.input.Focus()

	case key.Matches(msg, m.keymap.Quit):
		if _, err := m.dispatch(session.Quit{}); err != nil {
			return m, tea.Quit
		}
	}

	if !m.snap.Running {
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleEditingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Submit):
		res, err := m.dispatch(session.Submit{})
		if err != nil {
			return m, tea.Quit
		}
		if res.Outcome == session.OutcomeAccepted {
			m.input.Reset()
		}
		return m, nil

	case key.Matches(msg, m.keymap.Cancel):
		if _, err := m.dispatch(session.Cancel{}); err != nil {
			return m, tea.Quit
		}
		m.input.Reset()
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if _, err := m.dispatch(session.BufferChanged{Text: m.input.Value(), Cursor: m.input.Position()}); err != nil {
		return m, tea.Quit
	}
	return m, cmd
}

// dispatch forwards ev to the host and refreshes the snapshot. A host error
// is kept for Err and ends the program.
func (m *Model) dispatch(ev session.Event) (session.Result, error) {
	res, err := m.host.Dispatch(m.ctx, ev)
	if err != nil {
		m.err = fmt.Errorf("dispatch %s: %w", ev.Name(), err)
		return res, m.err
	}
	m.snap = m.host.Snapshot()
	return res, nil
}

// Run starts an alternate-screen program over host and blocks until the
// player quits or ctx is cancelled.
func Run(ctx context.Context, host Host, opts ...Option) error {
	p := tea.NewProgram(New(ctx, host, opts...), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrProgram, err)
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
