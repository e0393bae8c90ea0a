package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/okian/tuiermo/pkg/logger"
)

const (
	// EnvPrefix prefixes every environment override, e.g. TUIERMO_WORD_LENGTH.
	EnvPrefix = "TUIERMO_"
	// EnvConfigPath names the YAML file read by Load.
	EnvConfigPath = EnvPrefix + "CONFIG"
)

// Load builds a Config from the YAML file named by TUIERMO_CONFIG, if any.
// See LoadFrom.
func Load(ctx context.Context) (*Config, error) {
	return LoadFrom(ctx, os.Getenv(EnvConfigPath))
}

// LoadFrom is Read followed by Validate.
func LoadFrom(ctx context.Context, path string) (*Config, error) {
	cfg, err := Read(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Read builds a Config by layering defaults, an optional YAML file and
// env vars, without validating it, so callers can apply further overrides
// first. Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) at path, when path is not empty
//  3. env (prefix TUIERMO_)
func Read(_ context.Context, path string) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
		}
	}

	// Map env keys like TUIERMO_WORD_LENGTH -> word_length (flat keys).
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, strings.ToLower(EnvPrefix))
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	return &cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.WordLength < 1 {
		return fmt.Errorf("%w: word_length must be at least 1, got %d", ErrInvalidConfig, c.WordLength)
	}
	if c.RepeatWindow < 0 {
		return fmt.Errorf("%w: repeat_window must not be negative, got %d", ErrInvalidConfig, c.RepeatWindow)
	}
	if c.WordsFile == "" && strings.TrimSpace(c.Word) == "" {
		return fmt.Errorf("%w: one of word or words_file must be set", ErrInvalidConfig)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
