package parse

import (
	"github.com/signadot/rmap/ir"
	"github.com/signadot/rmap/token"
)

// DefaultMaxDepth bounds map nesting accepted by Parse.
const DefaultMaxDepth = 10000

type parseOpts struct {
	maxDepth  int
	positions map[*ir.Node]*token.Pos
}

type ParseOption func(*parseOpts)

// MaxDepth sets the deepest map nesting Parse accepts.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// ParsePositions records, for every parsed node, the position of its key,
// and for the top level node the position of its first byte.
func ParsePositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}
