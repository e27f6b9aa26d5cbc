// Package ir provides the in-memory tree for rmap documents.
//
// # Overview
//
// An rmap document is a tree of Nodes. A Node is either a leaf holding
// the canonical text of some scalar value, or a map from string keys to
// child nodes. The tree carries no type information beyond this: a leaf
// holding "50" can be read back as an integer, a float or a string by
// the accessor layer in package rmap.
//
// The IR works as a tagged union: Type selects which fields are in use.
//
//   - LeafType: Text holds the canonical text.
//   - MapType: children are held in ascending key order.
//
// # Creating Nodes
//
//	m := ir.NewMap()
//	m.Set("hi", ir.NewLeaf("50"))
//	sub := ir.FromMap(map[string]*ir.Node{
//	    "hohoho": ir.NewLeaf("4560"),
//	})
//	m.Set("screw this", sub)
//
// # Ownership
//
// A map owns its children. Each child records its parent and the key
// under which it is held, readable through Parent and ParentField and
// changed only by the map methods. Setting a node under a new key
// detaches it from wherever it was before, so a node has at most one
// owner. Replacing a key detaches the previous child.
//
// Set refuses to attach a node under itself or under one of its own
// descendants and returns ErrCycle instead, so every tree is finite and
// acyclic.
//
// # Iteration
//
// Entries yields children in ascending key order regardless of insertion
// order. Iteration is restartable and yields the same order as long as
// the map is not modified.
//
// # Paths
//
// Path and ParsePath use a dotted notation rooted at '$'. Keys that are
// empty or contain any of the characters ' . $ \ are single quoted, with
// backslash escapes inside the quotes:
//
//	$.a.'b.c'.d
//
// # Thread Safety
//
// Node structures are not thread-safe. If you need to access nodes from
// multiple goroutines, you must synchronize access yourself, for example
// with one lock per top-level tree.
//
// # Related Packages
//
//   - github.com/signadot/rmap - accessors, conversions and equality
//   - github.com/signadot/rmap/parse - parses text into IR nodes
//   - github.com/signadot/rmap/encode - encodes IR nodes to text
package ir
