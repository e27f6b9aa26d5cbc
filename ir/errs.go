package ir

import "errors"

var (
	// ErrTypeMismatch is returned when an operation expects a Map and finds
	// a Leaf, or the other way around.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrConversion is returned when leaf text does not convert to the
	// requested type.
	ErrConversion = errors.New("conversion failure")
	// ErrMalformedInput is returned by the parser on any grammar violation.
	ErrMalformedInput = errors.New("malformed input")

	ErrCycle    = errors.New("cycle")
	ErrNotFound = errors.New("not found")
	ErrBadPath  = errors.New("bad path")
)
