// Package scoring evaluates a guess against the target word.
package scoring

import (
	"fmt"

	"github.com/okian/tuiermo/internal/domain/model"
)

// Evaluate classifies every letter of guess against target.
//
// Exact matches are resolved in a first pass over the whole word and only
// then are displaced letters credited from what remains of the target, so a
// letter that occurs k times in target and m times in guess is marked
// non-Absent exactly min(k, m) times and exact matches are never consumed by
// an earlier displaced one.
//
// Both words must already be normalized and of equal length; a mismatch is a
// caller bug and panics.
func Evaluate(target, guess string) model.ScoredGuess {
	t := []rune(target)
	g := []rune(guess)
	if len(t) != len(g) {
		panic(fmt.Sprintf("scoring: target has %d letters, guess has %d", len(t), len(g)))
	}

	letters := make([]model.ScoredLetter, len(g))
	remaining := make(map[rune]int, len(t))
	for _, r := range t {
		remaining[r]++
	}

	// First pass: exact matches.
	for i, r := range g {
		letters[i] = model.ScoredLetter{Char: r, Class: model.Absent}
		if r == t[i] {
			letters[i].Class = model.Correct
			remaining[r]--
		}
	}

	// Second pass: displaced matches from the remaining letters.
	for i, r := range g {
		if letters[i].Class == model.Correct {
			continue
		}
		if remaining[r] > 0 {
			letters[i].Class = model.Present
			remaining[r]--
		}
	}

	return model.ScoredGuess{Word: guess, Letters: letters}
}
