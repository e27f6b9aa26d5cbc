package rmap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/rmap/encode"
	"github.com/signadot/rmap/ir"
)

var (
	ErrUnbound      = errors.New("unbound accessor")
	ErrDivideByZero = errors.New("division by zero")
)

// Accessor addresses the slot under one key of a map. It does not own
// anything: every operation looks the slot up again, so an Accessor may
// be kept across mutations of its parent, and it continues to address
// the same parent node even after that node is detached from its tree.
//
// The zero Accessor is unbound and all of its operations fail with
// ErrUnbound.
type Accessor struct {
	parent *ir.Node
	key    string
}

// At returns the accessor for key in m. The key need not exist; it is
// materialized by the first assignment.
func At(m *ir.Node, key string) Accessor {
	return Accessor{parent: m, key: key}
}

func (a Accessor) Key() string { return a.key }

func (a Accessor) Parent() *ir.Node { return a.parent }

func (a Accessor) String() string {
	if a.parent == nil {
		return "<unbound>"
	}
	return ir.FormatPath(append(a.parent.PathKeys(), a.key))
}

func (a Accessor) container() (*ir.Node, error) {
	if a.parent == nil {
		return nil, ErrUnbound
	}
	if a.parent.Type != ir.MapType {
		return nil, fmt.Errorf("%w: parent of %s is a %s", ir.ErrTypeMismatch, a, a.parent.Type)
	}
	return a.parent, nil
}

// Node returns the node in the slot, or nil if the slot is empty.
func (a Accessor) Node() (*ir.Node, error) {
	p, err := a.container()
	if err != nil {
		return nil, err
	}
	return p.Get(a.key), nil
}

func (a Accessor) Exists() bool {
	n, err := a.Node()
	return err == nil && n != nil
}

// Index returns the accessor for key inside the map held in this slot.
// It fails with ir.ErrTypeMismatch if the slot is empty or holds a leaf.
func (a Accessor) Index(key string) (Accessor, error) {
	n, err := a.Node()
	if err != nil {
		return Accessor{}, err
	}
	if n == nil {
		return Accessor{}, fmt.Errorf("%w: no container at %s", ir.ErrTypeMismatch, a)
	}
	if n.Type != ir.MapType {
		return Accessor{}, fmt.Errorf("%w: %s is not a container", ir.ErrTypeMismatch, a)
	}
	return At(n, key), nil
}

// Path applies Index for each key in turn.
func (a Accessor) Path(keys ...string) (Accessor, error) {
	res := a
	for _, k := range keys {
		next, err := res.Index(k)
		if err != nil {
			return Accessor{}, err
		}
		res = next
	}
	return res, nil
}

func (a Accessor) leaf() (*ir.Node, error) {
	n, err := a.Node()
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, fmt.Errorf("%w: %s", ir.ErrNotFound, a)
	}
	if n.Type != ir.LeafType {
		return nil, fmt.Errorf("%w: %s is a %s, not a leaf", ir.ErrTypeMismatch, a, n.Type)
	}
	return n, nil
}

// Text returns the text of the leaf in the slot, or the encoding of the
// map in the slot.
func (a Accessor) Text() (string, error) {
	n, err := a.Node()
	if err != nil {
		return "", err
	}
	if n == nil {
		return "", fmt.Errorf("%w: %s", ir.ErrNotFound, a)
	}
	if n.Type == ir.LeafType {
		return n.Text, nil
	}
	var b strings.Builder
	if err := encode.Encode(n, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Map returns the map in the slot.
func (a Accessor) Map() (*ir.Node, error) {
	n, err := a.Node()
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, fmt.Errorf("%w: %s", ir.ErrNotFound, a)
	}
	if n.Type != ir.MapType {
		return nil, fmt.Errorf("%w: %s is a %s, not a map", ir.ErrTypeMismatch, a, n.Type)
	}
	return n, nil
}

// AssignMap moves sub into the slot, replacing what was there. sub is
// detached from its previous parent. Assigning the parent or one of its
// ancestors fails with ir.ErrCycle.
func (a Accessor) AssignMap(sub *ir.Node) error {
	p, err := a.container()
	if err != nil {
		return err
	}
	if sub == nil || sub.Type != ir.MapType {
		return fmt.Errorf("%w: AssignMap needs a map", ir.ErrTypeMismatch)
	}
	return p.Set(a.key, sub)
}

// NewMap places a fresh empty map in the slot and returns it.
func (a Accessor) NewMap() (*ir.Node, error) {
	m := ir.NewMap()
	if err := a.AssignMap(m); err != nil {
		return nil, err
	}
	return m, nil
}

// Delete empties the slot, returning what was in it.
func (a Accessor) Delete() (*ir.Node, error) {
	p, err := a.container()
	if err != nil {
		return nil, err
	}
	return p.Delete(a.key), nil
}

func (a Accessor) SetText(s string) error {
	_, err := Assign(a, s)
	return err
}

func (a Accessor) SetInt(i int64) error {
	_, err := Assign(a, i)
	return err
}

func (a Accessor) SetFloat(f float64) error {
	_, err := Assign(a, f)
	return err
}

func (a Accessor) SetBool(b bool) error {
	_, err := Assign(a, b)
	return err
}

func (a Accessor) Int() (int64, error) {
	return Read[int64](a)
}

func (a Accessor) Float() (float64, error) {
	return Read[float64](a)
}

func (a Accessor) Bool() (bool, error) {
	return Read[bool](a)
}

// Read converts the text of the leaf in the slot to a T.
func Read[T Scalar](a Accessor) (T, error) {
	var zero T
	n, err := a.leaf()
	if err != nil {
		return zero, err
	}
	return FromText[T](n.Text)
}

// Assign stores the canonical text of v as a leaf in the slot, replacing
// what was there, and returns v.
func Assign[T Scalar](a Accessor, v T) (T, error) {
	var zero T
	p, err := a.container()
	if err != nil {
		return zero, err
	}
	if err := p.Set(a.key, ir.NewLeaf(ToText(v))); err != nil {
		return zero, err
	}
	return v, nil
}
