// Package patch applies JSON Patch (RFC 6902) and JSON Merge Patch
// (RFC 7386) documents to rmap trees.
//
// The tree is converted to JSON with package convert, patched, and read
// back. Leaves are JSON strings during patching, so a "test" operation
// must compare against a string. Numbers and booleans introduced by a
// patch become leaves holding their literal text.
package patch
