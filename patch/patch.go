package patch

import (
	"errors"
	"fmt"

	"github.com/signadot/rmap/convert"
	"github.com/signadot/rmap/debug"
	"github.com/signadot/rmap/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

var ErrPatch = errors.New("patch failed")

type Patch struct {
	ops jsonpatch.Patch
}

// Decode reads a JSON Patch document, a JSON array of operations.
func Decode(d []byte) (*Patch, error) {
	ops, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ir.ErrMalformedInput, err)
	}
	return &Patch{ops: ops}, nil
}

func (p *Patch) Len() int { return len(p.ops) }

// Apply returns the result of applying p to doc. doc is not modified.
func (p *Patch) Apply(doc *ir.Node) (*ir.Node, error) {
	if debug.Patch() {
		debug.Logf("json patch called on %s\n", doc.Path())
	}
	d, err := convert.ToJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := p.ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return convert.FromJSON(out)
}

// Apply decodes patchJSON and applies it to doc.
func Apply(doc *ir.Node, patchJSON []byte) (*ir.Node, error) {
	p, err := Decode(patchJSON)
	if err != nil {
		return nil, err
	}
	return p.Apply(doc)
}

// Merge applies a JSON Merge Patch to doc. Keys set to null in the patch
// are removed.
func Merge(doc *ir.Node, mergeJSON []byte) (*ir.Node, error) {
	d, err := convert.ToJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, mergeJSON)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	if debug.Patch() {
		debug.Logf("merge patch result %s\n", out)
	}
	return convert.FromJSON(out)
}

// CreateMerge returns the JSON Merge Patch turning from into to.
func CreateMerge(from, to *ir.Node) ([]byte, error) {
	f, err := convert.ToJSON(from)
	if err != nil {
		return nil, err
	}
	t, err := convert.ToJSON(to)
	if err != nil {
		return nil, err
	}
	return jsonpatch.CreateMergePatch(f, t)
}
