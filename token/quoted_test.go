package token

import (
	"strings"
	"testing"
)

func TestQuoted(t *testing.T) {
	for _, s := range []string{
		``,
		`"`,
		`\`,
		`\"`,
		`"\`,
		`\\\`,
		`a\\\`,
		`\\\a`,
		`"""`,
		`a"""a`,
		`\"\"\\""\`,
		"\t\n\v\r\b",
		"∞∞",
		`f**"k you`,
	} {
		do(s, t)
	}
}

func TestQuotedCombinations(t *testing.T) {
	alphabet := []string{`\`, `"`, `a`}
	var gen func(prefix string, n int)
	gen = func(prefix string, n int) {
		do(prefix, t)
		if n == 0 {
			return
		}
		for _, c := range alphabet {
			gen(prefix+c, n-1)
		}
	}
	gen("", 6)
}

func do(v string, t *testing.T) {
	t.Helper()
	q := Quote(v)
	uq, err := Unquote(q)
	if err != nil {
		t.Errorf("error unquoting %q (from %q): %v", q, v, err)
		return
	}
	if uq != v {
		t.Errorf("unquote(quote(%q)) = %q", v, uq)
	}
}

func TestQuote(t *testing.T) {
	tests := []struct{ in, out string }{
		{``, `""`},
		{`abc`, `"abc"`},
		{`\`, `"\\"`},
		{`"`, `"\""`},
		{`\"`, `"\\\""`},
	}
	for _, tt := range tests {
		if got := Quote(tt.in); got != tt.out {
			t.Errorf("Quote(%q) = %q, want %q", tt.in, got, tt.out)
		}
	}
}

func TestUnquoteErrors(t *testing.T) {
	for _, in := range []string{``, `"`, `abc`, `"abc`, `abc"`} {
		_, err := Unquote(in)
		if err == nil {
			t.Errorf("Unquote(%q): expected error", in)
			continue
		}
		if !strings.Contains(err.Error(), ErrNotQuoted.Error()) {
			t.Errorf("Unquote(%q): unexpected error %v", in, err)
		}
	}
}

func TestPosDoc(t *testing.T) {
	d := []byte("{ \"a\" :\n  \"b\"\n}")
	p := NewPosDoc(d)
	tests := []struct {
		off, line, col int
	}{
		{0, 0, 0},
		{7, 0, 7},
		{8, 1, 0},
		{10, 1, 2},
		{14, 2, 0},
	}
	for _, tt := range tests {
		l, c := p.LineCol(tt.off)
		if l != tt.line || c != tt.col {
			t.Errorf("LineCol(%d) = %d,%d want %d,%d", tt.off, l, c, tt.line, tt.col)
		}
		if off := p.Offset(tt.line, tt.col); off != tt.off {
			t.Errorf("Offset(%d, %d) = %d want %d", tt.line, tt.col, off, tt.off)
		}
	}
}
