package rmap

import (
	"math"

	"github.com/cespare/xxhash"

	"github.com/signadot/rmap/encode"
	"github.com/signadot/rmap/ir"
	"github.com/signadot/rmap/parse"
)

// New returns an empty map.
func New() *ir.Node {
	return ir.NewMap()
}

// Parse parses text in the canonical format. Failures wrap
// ir.ErrMalformedInput and no partial tree is returned.
func Parse(text string, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.ParseString(text, opts...)
}

// Serialize returns the canonical text of n. It fails with
// encode.ErrDepth when n nests deeper than encode.DefaultMaxDepth.
func Serialize(n *ir.Node) (string, error) {
	return encode.String(n)
}

// Equal reports whether a and b have the same canonical text. This costs
// time proportional to the size of both trees. Depth is not bounded.
func Equal(a, b *ir.Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return encode.Canonical(a) == encode.Canonical(b)
}

// Hash returns a 64 bit hash of the canonical text of n, so that Equal
// trees hash equally. Depth is not bounded.
func Hash(n *ir.Node) uint64 {
	h := xxhash.New()
	// writes to a hash.Hash never fail and depth is unbounded.
	_ = encode.Encode(n, h, encode.MaxDepth(math.MaxInt))
	return h.Sum64()
}
