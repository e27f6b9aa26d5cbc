// Package format names the text formats rmap trees can be read from and
// written to.
//
// # Usage
//
//	f, err := format.ParseFormat("json")
//	path := "doc" + f.Suffix() // doc.json
//
// # Related Packages
//
//   - github.com/signadot/rmap/convert - converts trees to and from JSON and YAML
//   - github.com/signadot/rmap/encode - encodes trees in the rmap format
package format
