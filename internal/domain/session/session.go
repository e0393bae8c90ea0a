// Package session implements the game session state machine: the mode, the
// edit buffer, guess validation and the append-only history of scored
// guesses.
//
// A Session is owned by a single goroutine. It defines no locking; hosts that
// share one across goroutines must serialize access themselves.
package session

import (
	"fmt"

	"github.com/okian/tuiermo/internal/domain/model"
	"github.com/okian/tuiermo/internal/domain/scoring"
	"github.com/okian/tuiermo/internal/domain/word"
)

// Mode governs which events a Session accepts.
type Mode int

const (
	ModeNormal Mode = iota
	ModeEditing
)

func (m Mode) String() string {
	if m == ModeEditing {
		return "editing"
	}
	return "normal"
}

// Outcome tells the caller what an event did.
type Outcome int

const (
	OutcomeIgnored Outcome = iota
	OutcomeEditStarted
	OutcomeBufferChanged
	OutcomeCancelled
	OutcomeAccepted
	OutcomeRejected
	OutcomeQuit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeEditStarted:
		return "edit_started"
	case OutcomeBufferChanged:
		return "buffer_changed"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeAccepted:
		return "accepted"
	case OutcomeRejected:
		return "rejected"
	case OutcomeQuit:
		return "quit"
	default:
		return "ignored"
	}
}

// Result is returned by Handle. Guess is set only for OutcomeAccepted.
type Result struct {
	Outcome Outcome
	Guess   model.ScoredGuess
}

// editBuffer only exists while the session is Editing.
type editBuffer struct {
	text   string
	cursor int
}

// Session holds one game. The zero value is not usable; call New.
type Session struct {
	target  string
	length  int
	edit    *editBuffer
	history []model.ScoredGuess
	running bool
}

// New starts a session in Normal mode for target. The target is normalized
// and must be exactly length letters.
func New(target string, length int) (*Session, error) {
	if length < 1 {
		return nil, fmt.Errorf("%w: length %d", ErrInvalidTarget, length)
	}
	t, err := word.Parse(target, length)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTarget, err)
	}
	return &Session{
		target:  t,
		length:  length,
		running: true,
	}, nil
}

// Handle applies ev according to the current mode and reports what changed.
func (s *Session) Handle(ev Event) Result {
	if s.edit == nil {
		return s.handleNormal(ev)
	}
	return s.handleEditing(ev)
}

func (s *Session) handleNormal(ev Event) Result {
	switch ev.(type) {
	case BeginEdit:
		s.edit = &editBuffer{}
		return Result{Outcome: OutcomeEditStarted}
	case Quit:
		s.running = false
		return Result{Outcome: OutcomeQuit}
	default:
		return Result{Outcome: OutcomeIgnored}
	}
}

func (s *Session) handleEditing(ev Event) Result {
	switch e := ev.(type) {
	case BufferChanged:
		s.edit.text = e.Text
		s.edit.cursor = clamp(e.Cursor, 0, word.Len(e.Text))
		return Result{Outcome: OutcomeBufferChanged}
	case Cancel:
		s.edit = nil
		return Result{Outcome: OutcomeCancelled}
	case Submit:
		return s.submit()
	default:
		return Result{Outcome: OutcomeIgnored}
	}
}

// submit scores the buffer. Input that does not normalize to a full word is
// dropped without touching the buffer or the history; the player keeps
// typing.
func (s *Session) submit() Result {
	guess, err := word.Parse(s.edit.text, s.length)
	if err != nil {
		return Result{Outcome: OutcomeRejected}
	}

	scored := scoring.Evaluate(s.target, guess)
	s.history = append(s.history, scored)
	s.edit = &editBuffer{}
	return Result{Outcome: OutcomeAccepted, Guess: scored.Clone()}
}

// Mode returns the current mode.
func (s *Session) Mode() Mode {
	if s.edit == nil {
		return ModeNormal
	}
	return ModeEditing
}

// Buffer returns the edit buffer and cursor. Both are zero in Normal mode.
func (s *Session) Buffer() (string, int) {
	if s.edit == nil {
		return "", 0
	}
	return s.edit.text, s.edit.cursor
}

// History returns a copy of the scored guesses in submission order.
func (s *Session) History() []model.ScoredGuess {
	out := make([]model.ScoredGuess, len(s.history))
	for i, g := range s.history {
		out[i] = g.Clone()
	}
	return out
}

// Len returns the number of accepted guesses.
func (s *Session) Len() int { return len(s.history) }

// Running is false once Quit was handled.
func (s *Session) Running() bool { return s.running }

// WordLength is the number of letters in the target and in every guess.
func (s *Session) WordLength() int { return s.length }

// Solved reports whether any accepted guess matched the target.
func (s *Session) Solved() bool {
	for _, g := range s.history {
		if g.Solved() {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
