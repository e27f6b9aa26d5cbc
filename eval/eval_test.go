package eval

import (
	"testing"

	"github.com/signadot/rmap/encode"
	"github.com/signadot/rmap/ir"
	"github.com/signadot/rmap/parse"
)

const doc = `{ "bye" : "90.8", "hi" : "50", "screw this" : { "hohoho" : "4560" } }`

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	n, err := parse.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestEval(t *testing.T) {
	root := mustParse(t, doc)
	tests := []struct {
		src  string
		want string
	}{
		{`hi + hi`, "5050"},
		{`int(hi) + 50`, "100"},
		{`float(bye) * 2`, "181.6"},
		{`$env["screw this"].hohoho`, "4560"},
		{`getpath("$.'screw this'.hohoho")`, "4560"},
		{`getpath("$.nope")`, ""},
		{`getpath("$.'screw this'")`, `{ "hohoho" : "4560" }`},
		{`whereami()`, "$"},
		{`int(hi) > 10`, "true"},
		{`text(1.5)`, "1.5"},
		{`{"a": hi}`, `{ "a" : "50" }`},
	}
	for _, tc := range tests {
		v, err := Eval(root, tc.src)
		if err != nil {
			t.Errorf("%s: %v", tc.src, err)
			continue
		}
		got, err := Text(v)
		if err != nil {
			t.Errorf("%s: %v", tc.src, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: got %q want %q", tc.src, got, tc.want)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	root := mustParse(t, doc)
	for _, src := range []string{`hi +`, `int("x" + hi)`} {
		if _, err := Eval(root, src); err == nil {
			t.Errorf("%s: no error", src)
		}
	}
	if _, err := Text([]any{1}); err == nil {
		t.Errorf("array text: no error")
	}
}

func TestExpandString(t *testing.T) {
	env := NewEnv(mustParse(t, doc))
	tests := map[string]string{
		`no exprs`:             `no exprs`,
		`hi=$[hi]!`:            `hi=50!`,
		`$[int(hi)+1]$[bye]`:   `5190.8`,
		`$[ "a\]b" ]`:          `a]b`,
		`unclosed $[hi`:        `unclosed $[hi`,
		`dollar $ and [ alone`: `dollar $ and [ alone`,
	}
	for in, want := range tests {
		got, err := ExpandString(in, env)
		if err != nil {
			t.Errorf("%s: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("%s: got %q want %q", in, got, want)
		}
	}
}

func TestExpand(t *testing.T) {
	root := mustParse(t, `{ "a" : "5", "b" : "$[int(a) * 2]", "c" : { "d" : "at $[whereami()]" }, "e" : ".[{\"x\": a}]" }`)
	if err := Expand(root); err != nil {
		t.Fatal(err)
	}
	want := `{ "a" : "5", "b" : "10", "c" : { "d" : "at $.c.d" }, "e" : { "x" : "5" } }`
	if got := encode.MustString(root); got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
	if root.Get("e").Parent() != root {
		t.Errorf("replacement not attached")
	}
}

func TestGetRaw(t *testing.T) {
	if GetRaw(".[x]") != "x" || GetRaw("x") != "" || GetRaw(".[") != "" {
		t.Errorf("GetRaw")
	}
}

func TestLoadMergeEnv(t *testing.T) {
	t.Setenv(EnvEnv, `{ "region" : "eu", "limits" : { "cpu" : "2" } }`)
	extra, err := LoadEnv()
	if err != nil {
		t.Fatal(err)
	}
	root := mustParse(t, `{ "limits" : { "cpu" : "1", "mem" : "4" }, "where" : "$[region]-$[limits.cpu]", "mem" : ".[limits.mem]" }`)
	if err := ExpandWith(root, extra); err != nil {
		t.Fatal(err)
	}
	want := `{ "limits" : { "cpu" : "1", "mem" : "4" }, "mem" : "4", "where" : "eu-2" }`
	if got := encode.MustString(root); got != want {
		t.Errorf("got %s", got)
	}
	t.Setenv(EnvEnv, `{ "bad" `)
	if _, err := LoadEnv(); err == nil {
		t.Error("expected parse error")
	}
	t.Setenv(EnvEnv, "")
	if env, err := LoadEnv(); env != nil || err != nil {
		t.Errorf("unset: %v %v", env, err)
	}
}
