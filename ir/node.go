package ir

import (
	"fmt"
	"iter"
	"slices"
	"sort"
)

// NoChildren is the Size of a leaf.
const NoChildren = -1

type Node struct {
	Type Type

	// parent and parentField change only through the map methods, which
	// keep the tree acyclic.
	parent      *Node
	parentField string

	// Text is the canonical text of a leaf.
	Text string

	// fields is sorted; values[i] is the child under fields[i].
	fields []string
	values []*Node
}

// Parent returns the map holding y, or nil for a root.
func (y *Node) Parent() *Node { return y.parent }

// ParentField returns the key under which y is held, or "" for a root.
func (y *Node) ParentField() string { return y.parentField }

func NewMap() *Node {
	return &Node{Type: MapType}
}

func NewLeaf(text string) *Node {
	return &Node{Type: LeafType, Text: text}
}

// FromMap builds a map node owning every value of m. Values which already
// have a parent are detached from it.
func FromMap(m map[string]*Node) *Node {
	res := NewMap()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := m[k]
		v.Detach()
		v.parent = res
		v.parentField = k
		res.fields = append(res.fields, k)
		res.values = append(res.values, v)
	}
	return res
}

// Size returns the number of direct children of a map and NoChildren for
// a leaf.
func (y *Node) Size() int {
	if y.Type != MapType {
		return NoChildren
	}
	return len(y.fields)
}

func (y *Node) IsEmpty() bool {
	return y.Type == MapType && len(y.fields) == 0
}

// Clear detaches all children of a map.
func (y *Node) Clear() {
	for _, v := range y.values {
		v.parent = nil
		v.parentField = ""
	}
	y.fields = nil
	y.values = nil
}

func (y *Node) find(key string) (int, bool) {
	return slices.BinarySearch(y.fields, key)
}

// Get returns the child under key, or nil if there is none or y is a leaf.
func (y *Node) Get(key string) *Node {
	if y.Type != MapType {
		return nil
	}
	i, ok := y.find(key)
	if !ok {
		return nil
	}
	return y.values[i]
}

func (y *Node) Has(key string) bool {
	return y.Get(key) != nil
}

// Set places child under key, replacing and detaching any previous child.
// The child is first detached from its current parent, if any. Attaching
// y itself or one of its ancestors fails with ErrCycle and leaves both
// trees unchanged.
func (y *Node) Set(key string, child *Node) error {
	if y.Type != MapType {
		return fmt.Errorf("%w: cannot set %q in %s", ErrTypeMismatch, key, y.Type)
	}
	if child == nil {
		return fmt.Errorf("%w: nil child for %q", ErrTypeMismatch, key)
	}
	if child.IsAncestorOf(y) {
		return fmt.Errorf("%w: %s is an ancestor of %s", ErrCycle, child.Path(), y.Path())
	}
	i, ok := y.find(key)
	if ok && y.values[i] == child {
		return nil
	}
	child.Detach()
	// detaching may have shifted our own entries if child was a sibling.
	i, ok = y.find(key)
	child.parent = y
	child.parentField = key
	if ok {
		old := y.values[i]
		old.parent = nil
		old.parentField = ""
		y.values[i] = child
		return nil
	}
	y.fields = slices.Insert(y.fields, i, key)
	y.values = slices.Insert(y.values, i, child)
	return nil
}

// Delete removes and returns the child under key, or nil if absent.
func (y *Node) Delete(key string) *Node {
	if y.Type != MapType {
		return nil
	}
	i, ok := y.find(key)
	if !ok {
		return nil
	}
	old := y.values[i]
	y.fields = slices.Delete(y.fields, i, i+1)
	y.values = slices.Delete(y.values, i, i+1)
	old.parent = nil
	old.parentField = ""
	return old
}

// Detach removes y from its parent, if any.
func (y *Node) Detach() {
	if y.parent == nil {
		return
	}
	p := y.parent
	i, ok := p.find(y.parentField)
	if ok && p.values[i] == y {
		p.fields = slices.Delete(p.fields, i, i+1)
		p.values = slices.Delete(p.values, i, i+1)
	}
	y.parent = nil
	y.parentField = ""
}

// IsAncestorOf reports whether y is n or lies on the parent chain of n.
func (y *Node) IsAncestorOf(n *Node) bool {
	for x := n; x != nil; x = x.parent {
		if x == y {
			return true
		}
	}
	return false
}

func (y *Node) Root() *Node {
	x := y
	for x.parent != nil {
		x = x.parent
	}
	return x
}

// Keys returns a copy of the keys of a map in ascending order.
func (y *Node) Keys() []string {
	return slices.Clone(y.fields)
}

// Entries iterates the children of a map in ascending key order. The map
// must not be modified during iteration.
func (y *Node) Entries() iter.Seq2[string, *Node] {
	return func(yield func(string, *Node) bool) {
		for i, f := range y.fields {
			if !yield(f, y.values[i]) {
				return
			}
		}
	}
}

// Clone returns a deep copy of y without a parent.
func (y *Node) Clone() *Node {
	res := &Node{Type: y.Type, Text: y.Text}
	if y.Type != MapType {
		return res
	}
	res.fields = slices.Clone(y.fields)
	res.values = make([]*Node, len(y.values))
	for i, v := range y.values {
		c := v.Clone()
		c.parent = res
		c.parentField = y.fields[i]
		res.values[i] = c
	}
	return res
}

// Visit walks y depth first calling f before (isPost false) and after
// (isPost true) the children of each map. Children are skipped when the
// pre-order call returns false.
func (y *Node) Visit(f func(node *Node, isPost bool) (bool, error)) error {
	descend, err := f(y, false)
	if err != nil {
		return err
	}
	if !descend || y.Type != MapType {
		return nil
	}
	for _, v := range slices.Clone(y.values) {
		if err := v.Visit(f); err != nil {
			return err
		}
	}
	_, err = f(y, true)
	return err
}

// Depth returns the number of nested maps below and including y.
func (y *Node) Depth() int {
	if y.Type != MapType {
		return 0
	}
	d := 0
	for _, v := range y.values {
		d = max(d, v.Depth())
	}
	return d + 1
}
