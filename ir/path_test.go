package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormatParsePath(t *testing.T) {
	tests := []struct {
		keys []string
		path string
	}{
		{nil, "$"},
		{[]string{"a"}, "$.a"},
		{[]string{"a", "b"}, "$.a.b"},
		{[]string{"a.b", "c"}, "$.'a.b'.c"},
		{[]string{""}, "$.''"},
		{[]string{"it's"}, `$.'it\'s'`},
		{[]string{`back\slash`, "$"}, `$.'back\\slash'.'$'`},
		{[]string{"screw this"}, "$.screw this"},
	}
	for _, tc := range tests {
		if got := FormatPath(tc.keys); got != tc.path {
			t.Errorf("FormatPath(%q) = %s want %s", tc.keys, got, tc.path)
		}
		keys, err := ParsePath(tc.path)
		if err != nil {
			t.Errorf("ParsePath(%s): %v", tc.path, err)
			continue
		}
		if diff := cmp.Diff(tc.keys, keys); diff != "" {
			t.Errorf("ParsePath(%s): %s", tc.path, diff)
		}
	}
}

func TestParsePathNoDollar(t *testing.T) {
	keys, err := ParsePath("a.'b.c'")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b.c"}, keys); diff != "" {
		t.Error(diff)
	}
}

func TestParsePathErrors(t *testing.T) {
	for _, p := range []string{"$.a..b", "$.'a", "$.'a'b", "$.a."} {
		if _, err := ParsePath(p); !errors.Is(err, ErrBadPath) {
			t.Errorf("%s: got %v", p, err)
		}
	}
}

func TestGetPath(t *testing.T) {
	m := NewMap()
	sub := NewMap()
	sub.Set("b.c", NewLeaf("1"))
	m.Set("a", sub)
	m.Set("l", NewLeaf("2"))

	n, err := m.GetPath("$.a.'b.c'")
	if err != nil || n == nil || n.Text != "1" {
		t.Fatalf("got %v %v", n, err)
	}
	if n.Path() != "$.a.'b.c'" {
		t.Errorf("path %s", n.Path())
	}
	if n, err := m.GetPath("a.x"); n != nil || err != nil {
		t.Errorf("absent: got %v %v", n, err)
	}
	if _, err := m.GetPath("l.x"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("through leaf: got %v", err)
	}
	if n, _ := m.GetPath("$"); n != m {
		t.Errorf("root path")
	}
}
