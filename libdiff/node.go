package libdiff

import (
	"fmt"

	"github.com/signadot/rmap/ir"
)

// AsNode stores changes as a tree keyed by path, each entry holding
// "kind" and whichever of "from", "to" and "delta" apply.
func AsNode(changes []Change) *ir.Node {
	res := ir.NewMap()
	for _, c := range changes {
		e := ir.NewMap()
		e.Set("kind", ir.NewLeaf(c.Kind.String()))
		if c.From != nil {
			e.Set("from", c.From.Clone())
		}
		if c.To != nil {
			e.Set("to", c.To.Clone())
		}
		if c.Delta != "" {
			e.Set("delta", ir.NewLeaf(c.Delta))
		}
		res.Set(c.PathString(), e)
	}
	return res
}

// FromNode is the inverse of AsNode. A leaf replacement may omit "to"
// when it carries a "delta".
func FromNode(n *ir.Node) ([]Change, error) {
	if n.Type != ir.MapType {
		return nil, fmt.Errorf("%w: changes must be a map", ErrBadChange)
	}
	var res []Change
	for p, e := range n.Entries() {
		path, err := ir.ParsePath(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadChange, err)
		}
		kindNode := e.Get("kind")
		if kindNode == nil || kindNode.Type != ir.LeafType {
			return nil, fmt.Errorf("%w: missing kind at %s", ErrBadChange, p)
		}
		kind, err := parseKind(kindNode.Text)
		if err != nil {
			return nil, err
		}
		c := Change{Path: path, Kind: kind, From: e.Get("from"), To: e.Get("to")}
		if d := e.Get("delta"); d != nil {
			c.Delta = d.Text
		}
		if kind == Changed && c.To == nil && c.Delta != "" && c.From != nil && c.From.Type == ir.LeafType {
			txt, err := ApplyDelta(c.From.Text, c.Delta)
			if err != nil {
				return nil, fmt.Errorf("%w: at %s: %w", ErrBadChange, p, err)
			}
			c.To = ir.NewLeaf(txt)
		}
		if (c.From == nil) != (kind == Added) || (c.To == nil) != (kind == Removed) {
			return nil, fmt.Errorf("%w: %s at %s has wrong sides", ErrBadChange, kind, p)
		}
		if c.From != nil {
			c.From = c.From.Clone()
		}
		if c.To != nil {
			c.To = c.To.Clone()
		}
		res = append(res, c)
	}
	sortChanges(res)
	return res, nil
}
