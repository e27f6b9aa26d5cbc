// Package eval evaluates expr-lang expressions against rmap trees.
//
// # Environment
//
// The environment of an expression is the tree as nested map[string]any
// with string leaves, so top level keys are variables and deeper keys
// are reached with member access or $env:
//
//	hi + "!"
//	int(hi) * 2
//	$env["screw this"].hohoho
//
// Leaves are text, use the expr builtins int and float to compute with
// them. The functions below are also available:
//
//   - getpath(p): the value at path p from the root, nil if absent
//   - whereami(): the path of the node being expanded
//   - getenv(name): an environment variable
//   - text(v): the canonical text of v
//
// # Expansion
//
// Expand rewrites leaves holding expressions. Within a leaf, each
// $[expr] is replaced by the text of its result; \] and \\ escape inside
// the brackets. A leaf consisting only of .[expr] is replaced by the
// result itself, which may be a map.
//
// # Related Packages
//
//   - github.com/signadot/rmap/convert - conversion of results to trees
package eval
