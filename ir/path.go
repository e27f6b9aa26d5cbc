package ir

import (
	"fmt"
	"slices"
	"strings"
)

// Path returns the path of y from its root, such as "$.a.'b.c'".
func (y *Node) Path() string {
	return FormatPath(y.PathKeys())
}

// PathKeys returns the keys leading from the root of y to y.
func (y *Node) PathKeys() []string {
	var keys []string
	for x := y; x.parent != nil; x = x.parent {
		keys = append(keys, x.parentField)
	}
	slices.Reverse(keys)
	return keys
}

// FormatPath renders keys as a path string. Keys which are empty or
// contain any of "'.$\\" are single quoted.
func FormatPath(keys []string) string {
	var b strings.Builder
	b.WriteByte('$')
	for _, k := range keys {
		b.WriteByte('.')
		b.WriteString(pathField(k))
	}
	return b.String()
}

func pathField(f string) string {
	if f != "" && strings.IndexAny(f, "'.$\\") == -1 {
		return f
	}
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(f) + "'"
}

// ParsePath parses a path as produced by FormatPath. The leading '$' is
// optional, so "a.b" and "$.a.b" are the same path. "$" and "" denote the
// root.
func ParsePath(p string) ([]string, error) {
	p = strings.TrimPrefix(p, "$")
	if p == "" {
		return nil, nil
	}
	if p[0] == '.' {
		p = p[1:]
	}
	var keys []string
	for {
		field, rest, err := parseField(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrBadPath, p, err)
		}
		keys = append(keys, field)
		if rest == "" {
			return keys, nil
		}
		if rest[0] != '.' {
			return nil, fmt.Errorf("%w: expected '.' at %q", ErrBadPath, rest)
		}
		p = rest[1:]
	}
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexByte(frag, '.')
		if i == -1 {
			return frag, "", nil
		}
		if i == 0 {
			return "", "", fmt.Errorf("empty field")
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch {
		case escaped:
			escaped = false
			res = append(res, c)
		case c == '\\':
			escaped = true
		case c == '\'':
			return string(res), frag[i+1:], nil
		default:
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

// GetPath returns the node at path p below y, or nil if some key along
// the way is absent. Walking through a leaf is ErrTypeMismatch.
func (y *Node) GetPath(p string) (*Node, error) {
	keys, err := ParsePath(p)
	if err != nil {
		return nil, err
	}
	return y.GetKeys(keys...)
}

func (y *Node) GetKeys(keys ...string) (*Node, error) {
	res := y
	for i, k := range keys {
		if res.Type != MapType {
			return nil, fmt.Errorf("%w: %s is a %s", ErrTypeMismatch, FormatPath(keys[:i]), res.Type)
		}
		res = res.Get(k)
		if res == nil {
			return nil, nil
		}
	}
	return res, nil
}
