package libdiff

import (
	"fmt"
	"slices"

	"github.com/signadot/rmap/encode"
	"github.com/signadot/rmap/ir"
)

// Change records one differing slot. From is nil for Added and To is nil
// for Removed. Delta is set when both sides are leaves.
type Change struct {
	Path  []string
	Kind  Kind
	From  *ir.Node
	To    *ir.Node
	Delta string
}

func MakeChange(path []string, from, to *ir.Node) Change {
	c := Change{Path: slices.Clone(path)}
	switch {
	case from == nil:
		c.Kind = Added
		c.To = to.Clone()
	case to == nil:
		c.Kind = Removed
		c.From = from.Clone()
	default:
		c.Kind = Changed
		c.From = from.Clone()
		c.To = to.Clone()
		if from.Type == ir.LeafType && to.Type == ir.LeafType {
			c.Delta = Delta(from.Text, to.Text)
		}
	}
	return c
}

func (c Change) PathString() string {
	return ir.FormatPath(c.Path)
}

// String renders c on one line, with leaf replacements shown as an inline
// text diff.
func (c Change) String() string {
	switch c.Kind {
	case Added:
		return fmt.Sprintf("%s %s %s", c.Kind.Sign(), c.PathString(), encode.Canonical(c.To))
	case Removed:
		return fmt.Sprintf("%s %s %s", c.Kind.Sign(), c.PathString(), encode.Canonical(c.From))
	}
	return fmt.Sprintf("%s %s %s", c.Kind.Sign(), c.PathString(), c.TextDiff())
}

// TextDiff shows the replacement of a leaf as [-removed-]{+inserted+}
// within the common text. Other replacements show both sides whole.
func (c Change) TextDiff() string {
	if c.Kind == Changed && c.From.Type == ir.LeafType && c.To.Type == ir.LeafType {
		return TextDiff(c.From.Text, c.To.Text)
	}
	return fmt.Sprintf("[-%s-]{+%s+}", side(c.From), side(c.To))
}

func side(n *ir.Node) string {
	if n == nil {
		return ""
	}
	return encode.Canonical(n)
}
