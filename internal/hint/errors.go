package hint

import "errors"

var (
	// ErrContradictoryConstraint is returned when feedback would pin a slot
	// to a letter already ruled out for that slot.
	ErrContradictoryConstraint = errors.New("contradictory constraint")

	// ErrMalformedInput is returned when raw feedback cannot be decoded.
	ErrMalformedInput = errors.New("malformed input")
)
