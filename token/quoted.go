package token

import (
	"fmt"
	"strings"
)

// Quote escapes every '\' as `\\`, then every '"' as `\"`, and wraps the
// result in double quotes.
func Quote(v string) string {
	n := strings.Count(v, `\`) + strings.Count(v, `"`)
	var b strings.Builder
	b.Grow(len(v) + n + 2)
	b.WriteByte('"')
	for i := 0; i < len(v); i++ {
		switch c := v[i]; c {
		case '\\', '"':
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// Unquote reverses Quote. It requires q to begin and end with a double
// quote, then replaces `\"` with '"' and `\\` with '\'.
func Unquote(q string) (string, error) {
	if len(q) < 2 || q[0] != '"' || q[len(q)-1] != '"' {
		return "", fmt.Errorf("%w: expected '\"' around %q", ErrNotQuoted, q)
	}
	s := q[1 : len(q)-1]
	s = replaceEscape(s, '"')
	s = replaceEscape(s, '\\')
	return s, nil
}

// replaceEscape replaces each non-overlapping `\c` with c, scanning left
// to right and resuming after each replacement.
func replaceEscape(s string, c byte) string {
	if strings.IndexByte(s, '\\') == -1 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && s[i+1] == c {
			b.WriteByte(c)
			i++
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
