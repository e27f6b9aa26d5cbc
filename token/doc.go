// Package token provides the lexical pieces of the rmap text format:
// string quoting and input positions.
//
// [Quote] and [Unquote] are inverse functions for any string. The
// order of their replacements matters: Quote escapes backslashes before
// double quotes, Unquote restores double quotes before backslashes.
package token
