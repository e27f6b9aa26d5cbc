package libdiff

import (
	"errors"
	"fmt"
)

type Kind int

const (
	Added Kind = iota
	Removed
	Changed
)

var (
	ErrConflict  = errors.New("patch conflict")
	ErrBadChange = errors.New("bad change")
)

func (k Kind) String() string {
	switch k {
	case Added:
		return "insert"
	case Removed:
		return "delete"
	case Changed:
		return "replace"
	default:
		return fmt.Sprintf("<kind %d>", int(k))
	}
}

func parseKind(s string) (Kind, error) {
	switch s {
	case "insert":
		return Added, nil
	case "delete":
		return Removed, nil
	case "replace":
		return Changed, nil
	}
	return 0, fmt.Errorf("%w: unknown kind %q", ErrBadChange, s)
}

// Sign is the one character marker used when printing a change.
func (k Kind) Sign() string {
	switch k {
	case Added:
		return "+"
	case Removed:
		return "-"
	default:
		return "~"
	}
}
