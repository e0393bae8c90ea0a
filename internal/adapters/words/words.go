// Package words supplies target words for new sessions.
package words

import (
	"bufio"
	"context"
	"fmt"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/okian/tuiermo/internal/domain/word"
)

// DefaultWord is the placeholder target used when no word list is configured.
const DefaultWord = "acaso"

// Source yields one normalized target word per call.
type Source interface {
	Word(ctx context.Context) (string, error)
}

// FixedSource always returns the same word.
type FixedSource struct {
	word string
}

// Fixed returns a source for w. The word is validated when it is drawn so
// the session length does not need to be known here.
func Fixed(w string) *FixedSource {
	return &FixedSource{word: w}
}

// Word returns the normalized fixed word.
func (s *FixedSource) Word(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	w := word.Normalize(s.word)
	if w == "" {
		return "", ErrEmptyWord
	}
	return w, nil
}

// FileSource picks a random word from a list loaded once from disk.
type FileSource struct {
	mu    sync.Mutex
	words []string
	rng   *rand.Rand
}

// FromFile loads white-space separated words from path, keeping those that
// normalize to exactly length letters. It fails if none qualify.
func FromFile(path string, length int, opts ...Option) (*FileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadWords, err)
	}
	defer f.Close()

	var list []string
	sc := bufio.NewScanner(f)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		if w, err := word.Parse(sc.Text(), length); err == nil {
			list = append(list, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadWords, err)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: %s has no %d-letter words", ErrEmptyWordList, path, length)
	}

	s := &FileSource{
		words: list,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // word choice is not security sensitive
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Word returns a uniformly random word from the list.
func (s *FileSource) Word(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.words[s.rng.Intn(len(s.words))], nil
}

// Len returns the number of usable words.
func (s *FileSource) Len() int { return len(s.words) }
