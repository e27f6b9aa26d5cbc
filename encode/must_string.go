package encode

import (
	"math"
	"strings"

	"github.com/signadot/rmap/ir"
)

// String returns the text of node under opts.
func String(node *ir.Node, opts ...EncodeOption) (string, error) {
	var b strings.Builder
	if err := Encode(node, &b, opts...); err != nil {
		return "", err
	}
	return b.String(), nil
}

// MustString returns the canonical text of node. It panics if node is
// deeper than DefaultMaxDepth.
func MustString(node *ir.Node) string {
	s, err := String(node)
	if err != nil {
		panic(err)
	}
	return s
}

// Canonical returns the canonical text of node without a depth bound, so
// it never fails.
func Canonical(node *ir.Node) string {
	s, _ := String(node, MaxDepth(math.MaxInt))
	return s
}
