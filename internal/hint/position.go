package hint

import "fmt"

// Position accumulates what is known about a single slot: the letter it is
// pinned to, if any, and the letters ruled out for it.
//
// A slot starts open, narrows as letters are forbidden and is solved once a
// letter is defined. Forbidden letters may still be added after that; they no
// longer affect the pattern.
type Position struct {
	defined   Letter
	forbidden *LetterSet
}

// NewPosition returns an open slot.
func NewPosition() *Position {
	return &Position{forbidden: NewLetterSet()}
}

// DefinedChar returns the letter the slot is pinned to.
func (p *Position) DefinedChar() (Letter, bool) {
	return p.defined, p.defined != 0
}

// ForbiddenChars returns the letters ruled out for the slot, in alphabet order.
func (p *Position) ForbiddenChars() []Letter {
	return p.forbidden.Letters()
}

// Pattern renders the slot as a regular expression fragment.
func (p *Position) Pattern() string {
	switch {
	case p.defined != 0:
		return p.defined.String()
	case p.forbidden.Len() > 0:
		return "[^" + p.forbidden.String() + "]"
	default:
		return AnyLetterPattern
	}
}

// Allows reports whether r may occupy the slot. It agrees with Pattern.
func (p *Position) Allows(r rune) bool {
	if p.defined != 0 {
		return r == rune(p.defined)
	}
	return IsLetter(r) && !p.forbidden.Has(r)
}

// SetDefinedChar pins the slot to l. It fails, leaving the slot untouched,
// when l is already forbidden here.
func (p *Position) SetDefinedChar(l Letter) error {
	if err := p.checkDefine(l); err != nil {
		return err
	}
	p.defined = l
	return nil
}

// AddForbiddenChar rules l out for the slot. Adding a letter twice is a no-op,
// as is adding a letter outside the alphabet.
func (p *Position) AddForbiddenChar(l Letter) {
	p.forbidden.Add(l)
}

func (p *Position) checkDefine(l Letter) error {
	if !l.Valid() {
		return fmt.Errorf("%w: letter %q is not in the alphabet", ErrMalformedInput, l)
	}
	if p.forbidden.Has(rune(l)) {
		return fmt.Errorf("%w: letter %q is forbidden in this slot", ErrContradictoryConstraint, l)
	}
	return nil
}
