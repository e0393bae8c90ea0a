package words

import (
	"errors"
)

// Sentinel error kinds for word sources.
var (
	ErrEmptyWord     = errors.New("empty target word")
	ErrEmptyWordList = errors.New("word list is empty")
	ErrLoadWords     = errors.New("load word list failed")
)
