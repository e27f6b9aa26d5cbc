// Package gomap binds rmap trees to Go values.
//
// Structs map to rmap maps with one key per exported field. The key is
// the field name unless a tag overrides it:
//
//	type Server struct {
//		Host  string            `rmap:"host"`
//		Port  int               `rmap:"port"`
//		Debug bool              `rmap:"debug,omitempty"`
//		Env   map[string]string `rmap:"env,omitempty"`
//		Extra *ir.Node          `rmap:"extra,omitempty"`
//		skip  int
//	}
//
// Scalars are stored as leaves in their canonical text and parsed back
// strictly, as rmap.FromText does. Fields of type *ir.Node hold subtrees
// unchanged and fields of type any hold the convert.ToAny form. Slices are
// not supported since rmap trees have no lists.
package gomap
