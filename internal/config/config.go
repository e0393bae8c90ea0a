// Package config defines the game configuration and how it is loaded.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Loading functions accept context.Context as the first parameter.
// - External errors are wrapped with this package's sentinel errors.
package config

import (
	"github.com/okian/tuiermo/internal/adapters/words"
	"github.com/okian/tuiermo/internal/domain/word"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFile receives log output. Empty discards logs, since stdout is the
	// game screen.
	LogFile string `koanf:"log_file"`

	// WordLength is the number of letters in the target and in every guess.
	WordLength int `koanf:"word_length"`

	// Word is the fixed target used when WordsFile is empty.
	Word string `koanf:"word"`

	// WordsFile, when set, is a list of candidate targets; one is drawn at
	// random per session.
	WordsFile string `koanf:"words_file"`

	// MetricsAddr serves /metrics and /healthz when non-empty, e.g. ":9090".
	MetricsAddr string `koanf:"metrics_addr"`

	// TrackRepeats reports guesses already played in the session.
	TrackRepeats bool `koanf:"track_repeats"`

	// RepeatWindow bounds repeat tracking to the last n distinct guesses.
	// Zero remembers the whole session.
	RepeatWindow int `koanf:"repeat_window"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:     "info",
		LogFile:      "",
		WordLength:   word.DefaultLength,
		Word:         words.DefaultWord,
		WordsFile:    "",
		MetricsAddr:  "",
		TrackRepeats: true,
		RepeatWindow: 0,
	}
}
