// Package word normalizes player input and target words into the canonical
// form compared by the evaluator: accent-folded, lowercase letters.
package word

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultLength is the word length of the classic game.
const DefaultLength = 5

// baseLetters folds letters that have no canonical decomposition.
var baseLetters = map[rune]rune{
	'ø': 'o',
	'ł': 'l',
	'đ': 'd',
	'ð': 'd',
	'ħ': 'h',
	'ı': 'i',
	'ŧ': 't',
}

// ligatures expand to more than one base letter, so they change the length.
var ligatures = strings.NewReplacer(
	"æ", "ae",
	"œ", "oe",
	"ß", "ss",
	"þ", "th",
)

func foldBase(r rune) rune {
	if b, ok := baseLetters[r]; ok {
		return b
	}
	return r
}

// Normalize trims surrounding white space, lowercases s and folds diacritics
// to their base letters, e.g. "Ação" becomes "acao" and "Søren" "soren".
// Ligatures expand: "æ" becomes "ae".
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = cases.Lower(language.Und).String(s)

	// Decompose, drop the combining marks, recompose what is left.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC, runes.Map(foldBase))
	folded, _, err := transform.String(t, s)
	if err != nil {
		// The chain only fails on invalid UTF-8; keep the lowercase input.
		return s
	}
	return ligatures.Replace(folded)
}

// Len reports the number of runes in s.
func Len(s string) int { return utf8.RuneCountInString(s) }

// Parse normalizes s and checks that the result is exactly length letters.
func Parse(s string, length int) (string, error) {
	w := Normalize(s)
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return "", fmt.Errorf("%w: %q", ErrNotLetter, r)
		}
	}
	if n := Len(w); n != length {
		return "", fmt.Errorf("%w: got %d, want %d", ErrLength, n, length)
	}
	return w, nil
}

// Valid reports whether s normalizes to a word of exactly length letters.
func Valid(s string, length int) bool {
	_, err := Parse(s, length)
	return err == nil
}
