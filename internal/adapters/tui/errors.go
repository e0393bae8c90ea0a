package tui

import "errors"

// ErrProgram wraps failures of the terminal program itself.
var ErrProgram = errors.New("terminal program failed")
