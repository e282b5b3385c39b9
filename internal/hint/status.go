package hint

import "fmt"

// Status is the feedback a single letter of a guess received.
type Status int

const (
	// Absent means the letter does not occur in the answer.
	Absent Status = iota + 1
	// PresentElsewhere means the letter occurs in the answer, in another slot.
	PresentElsewhere
	// CorrectHere means the letter occupies this slot in the answer.
	CorrectHere
)

// Status codes as sent by the board: black, yellow and green tiles.
const (
	CodeAbsent           = 'B'
	CodePresentElsewhere = 'Y'
	CodeCorrectHere      = 'G'
)

var statusByCode = map[rune]Status{
	CodeAbsent:           Absent,
	CodePresentElsewhere: PresentElsewhere,
	CodeCorrectHere:      CorrectHere,
}

// ParseStatus decodes a one-character status code.
func ParseStatus(code rune) (Status, error) {
	s, ok := statusByCode[code]
	if !ok {
		return 0, fmt.Errorf("%w: unknown status code %q", ErrMalformedInput, code)
	}
	return s, nil
}

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	return s >= Absent && s <= CorrectHere
}

// Code returns the board code for s, or 0 for an invalid status.
func (s Status) Code() rune {
	switch s {
	case Absent:
		return CodeAbsent
	case PresentElsewhere:
		return CodePresentElsewhere
	case CorrectHere:
		return CodeCorrectHere
	}
	return 0
}

func (s Status) String() string {
	switch s {
	case Absent:
		return "absent"
	case PresentElsewhere:
		return "present"
	case CorrectHere:
		return "correct"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}
