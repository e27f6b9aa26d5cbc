package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/rmap/ir"
	"github.com/signadot/rmap/token"
)

var (
	// ErrDepth is returned, along with ir.ErrMalformedInput, for input
	// nested past MaxDepth.
	ErrDepth = errors.New("nesting too deep")
)

// SyntaxError reports a grammar violation. It wraps ir.ErrMalformedInput.
type SyntaxError struct {
	Expected string
	Found    string
	Pos      *token.Pos
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: expected %s, found %s %s", ir.ErrMalformedInput, e.Expected, e.Found, e.Pos)
}

func (e *SyntaxError) Unwrap() error {
	return ir.ErrMalformedInput
}
