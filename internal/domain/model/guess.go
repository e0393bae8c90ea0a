// Package model contains domain models passed between layers.
package model

// LetterClass is the evaluation of one guessed letter against the target.
type LetterClass int

const (
	// Absent: the letter does not occur in the target, or all of its
	// occurrences are already accounted for.
	Absent LetterClass = iota
	// Present: the letter occurs elsewhere in the target.
	Present
	// Correct: the letter occupies the same position in the target.
	Correct
)

func (c LetterClass) String() string {
	switch c {
	case Correct:
		return "correct"
	case Present:
		return "present"
	default:
		return "absent"
	}
}

// ScoredLetter pairs a guessed letter with its class.
type ScoredLetter struct {
	Char  rune
	Class LetterClass
}

// ScoredGuess is an evaluated guess: the normalized word and one
// ScoredLetter per position, in guess order.
type ScoredGuess struct {
	Word    string
	Letters []ScoredLetter
}

// Solved reports whether every letter is Correct.
func (g ScoredGuess) Solved() bool {
	if len(g.Letters) == 0 {
		return false
	}
	for _, l := range g.Letters {
		if l.Class != Correct {
			return false
		}
	}
	return true
}

// Count returns how many letters have class c.
func (g ScoredGuess) Count(c LetterClass) int {
	n := 0
	for _, l := range g.Letters {
		if l.Class == c {
			n++
		}
	}
	return n
}

// Clone returns a copy that shares no memory with g.
func (g ScoredGuess) Clone() ScoredGuess {
	letters := make([]ScoredLetter, len(g.Letters))
	copy(letters, g.Letters)
	return ScoredGuess{Word: g.Word, Letters: letters}
}
