package patch

import (
	"errors"
	"testing"

	"github.com/signadot/rmap/encode"
	"github.com/signadot/rmap/ir"
	"github.com/signadot/rmap/parse"
)

const doc = `{ "a" : { "b" : "1" }, "c" : "x" }`

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	n, err := parse.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestApply(t *testing.T) {
	in := mustParse(t, doc)
	ops := `[
		{"op": "test", "path": "/c", "value": "x"},
		{"op": "replace", "path": "/a/b", "value": 2},
		{"op": "add", "path": "/a/d", "value": {"e": true}},
		{"op": "remove", "path": "/c"},
		{"op": "copy", "from": "/a/b", "path": "/f"}
	]`
	out, err := Apply(in, []byte(ops))
	if err != nil {
		t.Fatal(err)
	}
	want := `{ "a" : { "b" : "2", "d" : { "e" : "true" } }, "f" : "2" }`
	if got := encode.MustString(out); got != want {
		t.Errorf("got %s", got)
	}
	if encode.MustString(in) != doc {
		t.Errorf("input modified")
	}
}

func TestApplyErrors(t *testing.T) {
	in := mustParse(t, doc)
	if _, err := Apply(in, []byte(`{"op": "add"}`)); !errors.Is(err, ir.ErrMalformedInput) {
		t.Errorf("decode: %v", err)
	}
	if _, err := Apply(in, []byte(`[{"op": "test", "path": "/c", "value": "y"}]`)); !errors.Is(err, ErrPatch) {
		t.Errorf("failed test: %v", err)
	}
	if _, err := Apply(in, []byte(`[{"op": "remove", "path": "/zz"}]`)); !errors.Is(err, ErrPatch) {
		t.Errorf("missing path: %v", err)
	}
}

func TestMerge(t *testing.T) {
	from := mustParse(t, doc)
	to := mustParse(t, `{ "a" : { "b" : "1", "g" : "h" } }`)
	m, err := CreateMerge(from, to)
	if err != nil {
		t.Fatal(err)
	}
	out, err := Merge(from, m)
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.MustString(out); got != encode.MustString(to) {
		t.Errorf("got %s from merge %s", got, m)
	}
}
