package word

import (
	"errors"
)

// Sentinel error kinds for word validation. These allow errors.Is/As from callers.
var (
	ErrLength    = errors.New("word has the wrong length")
	ErrNotLetter = errors.New("word contains a non-letter")
)
