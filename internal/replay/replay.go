// Package replay plays a game without a terminal: each input line is typed
// and submitted, and the scored history is written as plain text.
package replay

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/okian/tuiermo/internal/domain/model"
	"github.com/okian/tuiermo/internal/domain/session"
)

// Mask symbols, one per letter class.
const (
	MarkCorrect = '='
	MarkPresent = '~'
	MarkAbsent  = '.'
	SolvedMark  = "✔"
)

// Host is the part of the game service replay drives.
type Host interface {
	Dispatch(ctx context.Context, ev session.Event) (session.Result, error)
}

// Run feeds every non-blank line of r to host as a submitted guess and
// writes one line per outcome to w. It stops at the first host or I/O error,
// or when ctx is done.
func Run(ctx context.Context, host Host, r io.Reader, w io.Writer) error {
	if _, err := host.Dispatch(ctx, session.BeginEdit{}); err != nil {
		return fmt.Errorf("begin edit: %w", err)
	}

	scanner := bufio.NewScanner(r)
	attempt := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if _, err := host.Dispatch(ctx, session.BufferChanged{Text: line, Cursor: utf8.RuneCountInString(line)}); err != nil {
			return fmt.Errorf("buffer: %w", err)
		}
		res, err := host.Dispatch(ctx, session.Submit{})
		if err != nil {
			return fmt.Errorf("submit: %w", err)
		}

		var out string
		switch res.Outcome {
		case session.OutcomeAccepted:
			out = FormatGuess(attempt, res.Guess)
			attempt++
		default:
			out = "rejected: " + line
			// Clear the kept buffer before the next line.
			if _, err := host.Dispatch(ctx, session.BufferChanged{}); err != nil {
				return fmt.Errorf("buffer: %w", err)
			}
		}
		if _, err := fmt.Fprintln(w, out); err != nil {
			return fmt.Errorf("write: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read: %w", err)
	}
	return nil
}

// FormatGuess renders one history row as "i: <word> <mask>". The mask is
// aligned on the display width of the word so wide letters keep columns.
func FormatGuess(i int, g model.ScoredGuess) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(i))
	b.WriteString(": ")
	b.WriteString(g.Word)
	b.WriteString(strings.Repeat(" ", max(1, len(g.Letters)+1-uniseg.StringWidth(g.Word))))
	b.WriteString(Mask(g))
	if g.Solved() {
		b.WriteString(" ")
		b.WriteString(SolvedMark)
	}
	return b.String()
}

// Mask returns one symbol per letter of g.
func Mask(g model.ScoredGuess) string {
	mask := make([]rune, len(g.Letters))
	for i, l := range g.Letters {
		switch l.Class {
		case model.Correct:
			mask[i] = MarkCorrect
		case model.Present:
			mask[i] = MarkPresent
		default:
			mask[i] = MarkAbsent
		}
	}
	return string(mask)
}
