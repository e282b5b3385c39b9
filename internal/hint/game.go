package hint

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Feedback is one guessed word with its status codes, e.g. {"ветка", "BYYYB"}.
type Feedback struct {
	Word  string
	Codes string
}

// Game folds the feedback of every guess so far into constraints on the
// answer. It only ever accumulates; nothing is rolled back.
type Game struct {
	positions [WordLength]*Position
	absent    *LetterSet
}

// NewGame returns a Game with no constraints.
func NewGame() *Game {
	g := &Game{absent: NewLetterSet()}
	for i := range g.positions {
		g.positions[i] = NewPosition()
	}
	return g
}

// Positions returns the slots in order.
func (g *Game) Positions() []*Position {
	return g.positions[:]
}

// AbsentChars returns the letters known not to occur in the answer.
func (g *Game) AbsentChars() []Letter {
	return g.absent.Letters()
}

// PresentChars returns every letter known to occur in the answer: the defined
// and forbidden letters of all slots, deduplicated, in alphabet order.
func (g *Game) PresentChars() []Letter {
	return g.present().Letters()
}

func (g *Game) present() *LetterSet {
	set := NewLetterSet()
	for _, p := range g.positions {
		set.Merge(p.forbidden)
		if l, ok := p.DefinedChar(); ok {
			set.Add(l)
		}
	}
	return set
}

// Pattern renders the slot constraints as an anchored regular expression,
// e.g. "^л[^ос]с[^р][^т]$".
func (g *Game) Pattern() string {
	var b strings.Builder
	b.WriteByte('^')
	for _, p := range g.positions {
		b.WriteString(p.Pattern())
	}
	b.WriteByte('$')
	return b.String()
}

// AddAbsentChar marks l as absent from the answer. It is ignored when l is
// already known to be present: a repeated letter can be green in one slot and
// black in another, and presence wins.
func (g *Game) AddAbsentChar(l Letter) {
	if g.absent.Has(rune(l)) || g.present().Has(rune(l)) {
		return
	}
	g.absent.Add(l)
}

// AddIteration applies one guess. Cells are applied in slot order. If any
// cell contradicts what is already known the Game is left unchanged.
func (g *Game) AddIteration(it Iteration) error {
	for i, c := range it.cells {
		if c.Status == CorrectHere {
			if err := g.positions[i].checkDefine(c.Letter); err != nil {
				return fmt.Errorf("slot %d: %w", i+1, err)
			}
		}
	}

	for i, c := range it.cells {
		pos := g.positions[i]
		switch c.Status {
		case Absent:
			g.AddAbsentChar(c.Letter)
		case PresentElsewhere:
			pos.AddForbiddenChar(c.Letter)
			g.absent.Remove(c.Letter)
		case CorrectHere:
			if err := pos.SetDefinedChar(c.Letter); err != nil {
				return fmt.Errorf("slot %d: %w", i+1, err)
			}
			g.absent.Remove(c.Letter)
		}
	}
	return nil
}

// ImportUserData applies a mapping of guessed word to status codes, as posted
// by the board. Every entry is decoded before anything is applied, so
// malformed input leaves the Game unchanged. Entries are applied in word
// order; the resulting constraints do not depend on it.
func (g *Game) ImportUserData(data map[string]string) error {
	words := lo.Keys(data)
	slices.Sort(words)
	return g.ImportFeedback(lo.Map(words, func(w string, _ int) Feedback {
		return Feedback{Word: w, Codes: data[w]}
	}))
}

// ImportFeedback applies guesses in the given order. Every entry is decoded
// before anything is applied.
func (g *Game) ImportFeedback(entries []Feedback) error {
	iterations := make([]Iteration, 0, len(entries))
	for _, e := range entries {
		it, err := ParseIteration(e.Word, e.Codes)
		if err != nil {
			return fmt.Errorf("guess %q: %w", e.Word, err)
		}
		iterations = append(iterations, it)
	}
	for _, it := range iterations {
		if err := g.AddIteration(it); err != nil {
			return fmt.Errorf("guess %q: %w", it.Word(), err)
		}
	}
	return nil
}

// Matches reports whether word satisfies every constraint: it fits the slot
// pattern as a whole, contains every present letter and no absent one.
func (g *Game) Matches(word string) bool {
	return g.matches(word, g.PresentChars())
}

func (g *Game) matches(word string, present []Letter) bool {
	runes := []rune(word)
	if len(runes) != WordLength {
		return false
	}
	for i, r := range runes {
		if !g.positions[i].Allows(r) || g.absent.Has(r) {
			return false
		}
	}
	return lo.EveryBy(present, func(l Letter) bool {
		return slices.Contains(runes, rune(l))
	})
}

// Suggestions returns the words of src that match, in src order. A nil src
// means the bundled dictionary.
func (g *Game) Suggestions(src *Source) []string {
	if src == nil {
		src = DefaultSource()
	}
	present := g.PresentChars()
	return lo.Filter(src.words, func(w string, _ int) bool {
		return g.matches(w, present)
	})
}
