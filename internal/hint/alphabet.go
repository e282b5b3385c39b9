// Package hint narrows a dictionary of five-letter Russian words down to the
// candidates that agree with Wordle-style feedback.
//
// Feedback is fed in one guess at a time (an Iteration). A Game folds every
// Iteration into per-slot constraints (Position) plus a word-global set of
// absent letters, and filters a Source against them.
//
// A Game is not safe for concurrent use. A Source is immutable and may be
// shared freely.
package hint

import (
	"strings"
	"unicode/utf8"

	"github.com/bits-and-blooms/bitset"
)

// WordLength is the number of slots on the board.
const WordLength = 5

// AnyLetterPattern is the pattern of a slot nothing is known about.
const AnyLetterPattern = "[а-яё]"

// alphabet lists the accepted letters in code-point order, which is also the
// order every rendered letter set uses.
const alphabet = "абвгдежзийклмнопрстуфхцчшщъыьэюяё"

var (
	alphabetRunes = []rune(alphabet)
	alphabetIndex = func() map[rune]uint {
		m := make(map[rune]uint, len(alphabetRunes))
		for i, r := range alphabetRunes {
			m[r] = uint(i)
		}
		return m
	}()
)

// Letter is a single letter of the alphabet.
type Letter rune

// Valid reports whether l belongs to the alphabet.
func (l Letter) Valid() bool {
	return IsLetter(rune(l))
}

func (l Letter) String() string {
	return string(rune(l))
}

// IsLetter reports whether r belongs to the alphabet.
func IsLetter(r rune) bool {
	_, ok := alphabetIndex[r]
	return ok
}

// IsWord reports whether s is exactly WordLength alphabet letters.
func IsWord(s string) bool {
	if utf8.RuneCountInString(s) != WordLength {
		return false
	}
	for _, r := range s {
		if !IsLetter(r) {
			return false
		}
	}
	return true
}

// LetterSet is a set of alphabet letters, one bit per letter.
type LetterSet struct {
	bits *bitset.BitSet
}

// NewLetterSet returns a set holding the given letters. Letters outside the
// alphabet are ignored.
func NewLetterSet(letters ...Letter) *LetterSet {
	s := &LetterSet{bits: bitset.New(uint(len(alphabetRunes)))}
	for _, l := range letters {
		s.Add(l)
	}
	return s
}

// Add inserts l and reports whether the set changed.
func (s *LetterSet) Add(l Letter) bool {
	i, ok := alphabetIndex[rune(l)]
	if !ok || s.bits.Test(i) {
		return false
	}
	s.bits.Set(i)
	return true
}

// Remove deletes l from the set.
func (s *LetterSet) Remove(l Letter) {
	if i, ok := alphabetIndex[rune(l)]; ok {
		s.bits.Clear(i)
	}
}

// Has reports whether r is in the set.
func (s *LetterSet) Has(r rune) bool {
	i, ok := alphabetIndex[r]
	return ok && s.bits.Test(i)
}

// Len returns the number of letters in the set.
func (s *LetterSet) Len() int {
	return int(s.bits.Count())
}

// Merge adds every letter of other to s.
func (s *LetterSet) Merge(other *LetterSet) {
	s.bits.InPlaceUnion(other.bits)
}

// Letters returns the members in alphabet order.
func (s *LetterSet) Letters() []Letter {
	out := make([]Letter, 0, s.Len())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		out = append(out, Letter(alphabetRunes[i]))
	}
	return out
}

// String concatenates the members in alphabet order.
func (s *LetterSet) String() string {
	var b strings.Builder
	for _, l := range s.Letters() {
		b.WriteRune(rune(l))
	}
	return b.String()
}
