// Package rmap provides typed access to rmap trees.
//
// An rmap tree (see package ir) is a map from string keys to either
// nested maps or leaves holding text. Leaves carry no type: the type is
// chosen when a value is read or combined with an operator.
//
// # Accessors
//
// At(m, key) returns an Accessor for a slot of a map. Assign stores the
// canonical text of a Go scalar at the slot and Read converts the text
// back, so a leaf written as an int can be read as a float or a string:
//
//	m := rmap.New()
//	hi := rmap.At(m, "hi")
//	rmap.Assign(hi, 50)
//	rmap.AddAssign(hi, 50)   // 100
//	rmap.AddAssign(hi, "50") // "10050"
//	v, err := rmap.Read[int](hi) // 10050
//
// Index and Path walk into nested maps. AssignMap moves an existing map
// under the slot, detaching it from where it was; assigning a map under
// itself or one of its descendants fails with ir.ErrCycle.
//
// An Accessor resolves its slot on every call and is safe to keep while
// the tree changes. The zero Accessor is unbound.
//
// # Text
//
// Serialize and Parse convert between trees and the canonical text form
// implemented by packages encode and parse. Serialize reports trees nested
// past encode.DefaultMaxDepth. Equal and Hash are defined on the canonical
// text and do not bound depth.
//
// # Concurrency
//
// Nothing here locks. Trees must not be used from more than one goroutine
// without external synchronization.
package rmap
