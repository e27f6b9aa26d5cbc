package libdiff

import (
	"fmt"

	"github.com/signadot/rmap/debug"
	"github.com/signadot/rmap/encode"
	"github.com/signadot/rmap/ir"
)

// Patch applies changes to a copy of doc. Every change must find the slot
// in the state it describes as From, otherwise Patch fails with
// ErrConflict. doc itself is never modified.
func Patch(doc *ir.Node, changes []Change) (*ir.Node, error) {
	res := doc.Clone()
	for i := range changes {
		c := &changes[i]
		var err error
		res, err = apply(res, c)
		if err != nil {
			return nil, err
		}
		if debug.Diff() {
			debug.Logf("patched %s: %v\n", c.PathString(), res)
		}
	}
	return res, nil
}

func apply(doc *ir.Node, c *Change) (*ir.Node, error) {
	if len(c.Path) == 0 {
		if c.Kind != Changed {
			return nil, fmt.Errorf("%w: %s at the top level", ErrBadChange, c.Kind)
		}
		if !same(doc, c.From) {
			return nil, conflict(c, doc)
		}
		return c.To.Clone(), nil
	}
	parentKeys, key := c.Path[:len(c.Path)-1], c.Path[len(c.Path)-1]
	parent, err := doc.GetKeys(parentKeys...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConflict, err)
	}
	if parent == nil || parent.Type != ir.MapType {
		return nil, fmt.Errorf("%w: no map at %s", ErrConflict, ir.FormatPath(parentKeys))
	}
	cur := parent.Get(key)
	switch c.Kind {
	case Added:
		if cur != nil {
			return nil, conflict(c, cur)
		}
		err = parent.Set(key, c.To.Clone())
	case Removed:
		if !same(cur, c.From) {
			return nil, conflict(c, cur)
		}
		parent.Delete(key)
	case Changed:
		if !same(cur, c.From) {
			return nil, conflict(c, cur)
		}
		if c.Delta != "" {
			txt, err := ApplyDelta(cur.Text, c.Delta)
			if err != nil {
				return nil, err
			}
			if c.To.Type != ir.LeafType || txt != c.To.Text {
				return nil, fmt.Errorf("%w: delta at %s does not produce the new text", ErrBadChange, c.PathString())
			}
		}
		err = parent.Set(key, c.To.Clone())
	default:
		return nil, fmt.Errorf("%w: kind %s", ErrBadChange, c.Kind)
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func same(a, b *ir.Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	return encode.Canonical(a) == encode.Canonical(b)
}

func conflict(c *Change, found *ir.Node) error {
	return fmt.Errorf("%w: %s %s found %s", ErrConflict, c.Kind, c.PathString(), side(found))
}
