// Package convert translates rmap trees to and from JSON and YAML.
//
// Only objects and scalars have an rmap counterpart. Scalars become leaves
// holding their literal text, so the JSON number 1.50 becomes the leaf
// "1.50" and true becomes "true". Arrays and null fail with
// ErrUnsupported.
//
// In the other direction every leaf is written as a string.
package convert
