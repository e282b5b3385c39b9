package hint

import (
	"fmt"
	"strings"
)

// Cell is the feedback for one slot of one guess.
type Cell struct {
	Letter Letter
	Status Status
}

// Iteration is one full guess: exactly WordLength cells in slot order.
type Iteration struct {
	cells [WordLength]Cell
}

// NewIteration builds an Iteration from cells given in slot order.
func NewIteration(cells ...Cell) (Iteration, error) {
	var it Iteration
	if len(cells) != WordLength {
		return it, fmt.Errorf("%w: got %d cells, want %d", ErrMalformedInput, len(cells), WordLength)
	}
	for i, c := range cells {
		if !c.Letter.Valid() {
			return it, fmt.Errorf("%w: slot %d: letter %q is not in the alphabet", ErrMalformedInput, i+1, c.Letter)
		}
		if !c.Status.Valid() {
			return it, fmt.Errorf("%w: slot %d: %v", ErrMalformedInput, i+1, c.Status)
		}
	}
	copy(it.cells[:], cells)
	return it, nil
}

// ParseIteration decodes a guessed word and its parallel status codes,
// e.g. ("ветка", "BYYYB"). The word is lower-cased before validation.
func ParseIteration(word, codes string) (Iteration, error) {
	letters := []rune(strings.ToLower(strings.TrimSpace(word)))
	statusCodes := []rune(codes)

	if len(letters) != WordLength {
		return Iteration{}, fmt.Errorf("%w: word %q has %d letters, want %d", ErrMalformedInput, word, len(letters), WordLength)
	}
	if len(statusCodes) != len(letters) {
		return Iteration{}, fmt.Errorf("%w: %d status codes for %d letters", ErrMalformedInput, len(statusCodes), len(letters))
	}

	cells := make([]Cell, WordLength)
	for i, r := range letters {
		status, err := ParseStatus(statusCodes[i])
		if err != nil {
			return Iteration{}, fmt.Errorf("slot %d: %w", i+1, err)
		}
		cells[i] = Cell{Letter: Letter(r), Status: status}
	}
	return NewIteration(cells...)
}

// Cells returns the cells in slot order.
func (it Iteration) Cells() []Cell {
	out := make([]Cell, WordLength)
	copy(out, it.cells[:])
	return out
}

// Word returns the guessed word.
func (it Iteration) Word() string {
	var b strings.Builder
	for _, c := range it.cells {
		b.WriteRune(rune(c.Letter))
	}
	return b.String()
}

// Codes returns the status codes, one per slot.
func (it Iteration) Codes() string {
	var b strings.Builder
	for _, c := range it.cells {
		b.WriteRune(c.Status.Code())
	}
	return b.String()
}
