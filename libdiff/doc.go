// Package libdiff computes and applies differences between rmap trees.
//
// # Usage
//
//	// Compute the changes turning one tree into another
//	changes := libdiff.Diff(oldNode, newNode)
//
//	// Apply them
//	patched, err := libdiff.Patch(oldNode, changes)
//
// A Change names the path of a slot together with what was there before
// and after. Map keys are matched with a sequence diff over the sorted
// key lists, and leaf texts are compared with diffmatchpatch, which also
// provides the compact Delta carried by leaf changes.
//
// Changes can be stored as rmap trees with AsNode and read back with
// FromNode.
//
// # Related Packages
//
//   - github.com/signadot/rmap/ir - IR representation
//   - github.com/signadot/rmap/patch - JSON Patch over rmap trees
package libdiff
