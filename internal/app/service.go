// Package service hosts one game session for a front end. It owns the
// session exclusively, serializes every event behind a mutex, and turns
// outcomes into logs and metrics.
package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/okian/tuiermo/internal/adapters/words"
	"github.com/okian/tuiermo/internal/domain/dedupe"
	"github.com/okian/tuiermo/internal/domain/model"
	"github.com/okian/tuiermo/internal/domain/session"
	"github.com/okian/tuiermo/internal/domain/word"
	"github.com/okian/tuiermo/pkg/logger"
	"github.com/okian/tuiermo/pkg/metrics"
)

// Snapshot is a copy of the state a renderer needs.
type Snapshot struct {
	ID         string
	Mode       session.Mode
	Buffer     string
	Cursor     int
	History    []model.ScoredGuess
	Running    bool
	Solved     bool
	WordLength int
}

// Service hosts a single session.
type Service struct {
	mu sync.Mutex

	// Configuration
	source       words.Source
	wordLength   int
	trackRepeats bool
	repeatWindow int

	// State
	id      string
	session *session.Session
	repeats dedupe.Deduper
	solved  bool
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithWordSource sets where the target word comes from.
func WithWordSource(src words.Source) Option {
	return func(s *Service) {
		if src != nil {
			s.source = src
		}
	}
}

// WithWordLength sets the number of letters per word.
func WithWordLength(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.wordLength = n
		}
	}
}

// WithRepeatTracking enables or disables reporting of repeated guesses.
func WithRepeatTracking(enabled bool) Option {
	return func(s *Service) {
		s.trackRepeats = enabled
	}
}

// WithRepeatWindow bounds repeat tracking to the last n distinct guesses.
// Values <= 0 remember every guess of the session.
func WithRepeatWindow(n int) Option {
	return func(s *Service) {
		s.repeatWindow = n
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		source:       words.Fixed(words.DefaultWord),
		wordLength:   word.DefaultLength,
		trackRepeats: true,
		logger:       nil, // Will be replaced when service starts
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start draws a target word and opens a new session. Word source failures
// surface here, before any session exists. Starting a started service is a
// no-op.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	target, err := s.source.Word(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWordSource, err)
	}
	sess, err := session.New(target, s.wordLength)
	if err != nil {
		return err
	}

	s.id = uuid.NewString()
	s.session = sess
	s.solved = false
	s.repeats = nil
	if s.trackRepeats {
		s.repeats = dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(s.repeatWindow))
	}
	s.started = true

	metrics.RecordSessionStarted()
	s.logger.Info(ctx, "session started",
		logger.String("session", s.id),
		logger.Int("wordLength", s.wordLength),
		logger.Bool("trackRepeats", s.trackRepeats),
		logger.Int("repeatWindow", s.repeatWindow),
	)
	s.logger.Debug(ctx, "target drawn", logger.String("session", s.id), logger.String("target", target))

	return nil
}

// Stop closes the current session. A later Start opens a new one.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "session stopped",
		logger.String("session", s.id),
		logger.Int("guesses", s.session.Len()),
		logger.Bool("solved", s.solved),
	)
	s.started = false
}

// Dispatch hands ev to the session and records what happened.
func (s *Service) Dispatch(ctx context.Context, ev session.Event) (session.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return session.Result{}, ErrNotStarted
	}

	if ev == nil {
		return session.Result{Outcome: session.OutcomeIgnored}, nil
	}

	res := s.session.Handle(ev)
	metrics.RecordEvent(ev.Name(), res.Outcome.String())

	switch res.Outcome {
	case session.OutcomeAccepted:
		s.accepted(ctx, res.Guess)
	case session.OutcomeRejected:
		text, _ := s.session.Buffer()
		metrics.RecordGuessRejected()
		s.logger.Debug(ctx, "guess rejected",
			logger.String("session", s.id),
			logger.Int("letters", word.Len(word.Normalize(text))),
		)
	case session.OutcomeQuit:
		s.logger.Info(ctx, "quit requested", logger.String("session", s.id))
	default:
		s.logger.Debug(ctx, "event handled",
			logger.String("session", s.id),
			logger.String("event", ev.Name()),
			logger.String("outcome", res.Outcome.String()),
		)
	}

	return res, nil
}

func (s *Service) accepted(ctx context.Context, g model.ScoredGuess) {
	attempt := s.session.Len()
	metrics.RecordGuessAccepted(attempt)

	repeated := s.repeats != nil && s.repeats.SeenAndRecord(ctx, g.Word)
	if repeated {
		metrics.RecordGuessRepeated()
	}

	firstSolve := g.Solved() && !s.solved
	if firstSolve {
		s.solved = true
		metrics.RecordSolved(attempt)
	}

	s.logger.Info(ctx, "guess accepted",
		logger.String("session", s.id),
		logger.String("guess", g.Word),
		logger.Int("attempt", attempt),
		logger.Int("correct", g.Count(model.Correct)),
		logger.Int("present", g.Count(model.Present)),
		logger.Bool("repeated", repeated),
		logger.Bool("solved", g.Solved()),
	)
}

// Snapshot returns a copy of the current session state. It is the zero
// Snapshot before Start.
func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return Snapshot{}
	}
	text, cursor := s.session.Buffer()
	return Snapshot{
		ID:         s.id,
		Mode:       s.session.Mode(),
		Buffer:     text,
		Cursor:     cursor,
		History:    s.session.History(),
		Running:    s.started && s.session.Running(),
		Solved:     s.solved,
		WordLength: s.session.WordLength(),
	}
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := map[string]any{
		"started":    s.started,
		"wordLength": s.wordLength,
	}
	if s.session != nil {
		stats["session"] = s.id
		stats["guesses"] = s.session.Len()
		stats["solved"] = s.solved
		stats["running"] = s.session.Running()
	}
	if s.repeats != nil {
		stats["distinctGuesses"] = s.repeats.Size()
	}
	return stats
}
