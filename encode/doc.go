// Package encode encodes IR nodes to rmap text.
//
// # Usage
//
//	m := ir.NewMap()
//	m.Set("hi", ir.NewLeaf("50"))
//	err := encode.Encode(m, os.Stdout) // { "hi" : "50" }
//
//	// Encode with options
//	err := encode.Encode(m, w, encode.EncodePretty(2), encode.EncodeColors(encode.NewColors()))
//
// The canonical form puts a map on one line as
//
//	{ "k1" : v1, "k2" : v2 }
//
// with keys in ascending order, leaf values quoted and nested maps
// inline. An empty map is "{  }". The canonical form is what equality and
// hashing are defined on; colours and pretty printing are for display and
// still parse back to the same tree.
//
// # Related Packages
//
//   - github.com/signadot/rmap/ir - IR representation
//   - github.com/signadot/rmap/parse - Parse text to IR
package encode
