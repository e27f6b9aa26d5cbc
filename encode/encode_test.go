package encode

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/signadot/rmap/ir"
)

func sample() *ir.Node {
	m := ir.NewMap()
	m.Set("hi", ir.NewLeaf("50"))
	m.Set("ho", ir.NewLeaf("90.8"))
	sub := ir.NewMap()
	sub.Set("hohoho", ir.NewLeaf("4560"))
	m.Set("screw this", sub)
	m.Set("x", ir.NewMap())
	return m
}

func TestEncodeCanonical(t *testing.T) {
	tests := []struct {
		node *ir.Node
		want string
	}{
		{ir.NewMap(), `{  }`},
		{ir.NewLeaf(`a"b\c`), `"a\"b\\c"`},
		{
			sample(),
			`{ "hi" : "50", "ho" : "90.8", "screw this" : { "hohoho" : "4560" }, "x" : {  } }`,
		},
	}
	for _, tc := range tests {
		buf := bytes.NewBuffer(nil)
		if err := Encode(tc.node, buf); err != nil {
			t.Fatal(err)
		}
		if buf.String() != tc.want {
			t.Errorf("got %s\nwant %s", buf.String(), tc.want)
		}
		if got := MustString(tc.node); got != tc.want {
			t.Errorf("MustString: got %s", got)
		}
	}
}

func TestEncodePretty(t *testing.T) {
	want := `{
  "hi" : "50",
  "ho" : "90.8",
  "screw this" : {
    "hohoho" : "4560"
  },
  "x" : {  }
}`
	buf := bytes.NewBuffer(nil)
	if err := Encode(sample(), buf, EncodePretty(2)); err != nil {
		t.Fatal(err)
	}
	if buf.String() != want {
		t.Errorf("got\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestEncodeColors(t *testing.T) {
	saved := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = saved }()

	buf := bytes.NewBuffer(nil)
	if err := Encode(sample(), buf, EncodeColors(NewColors())); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "\x1b[") {
		t.Errorf("no escape codes in %q", out)
	}
	c := &Colors{Default: colorDefault}
	buf.Reset()
	if err := Encode(sample(), buf, EncodeColors(c)); err != nil {
		t.Fatal(err)
	}
	if buf.String() != MustString(sample()) {
		t.Errorf("default colors changed output: %s", buf.String())
	}
}

func TestEncodeColorsPercent(t *testing.T) {
	c := NewColors()
	if got := c.Color(LeafColor, `"100%"`); !strings.Contains(got, `"100%"`) {
		t.Errorf("got %q", got)
	}
}

func TestEncodeMaxDepth(t *testing.T) {
	root := ir.NewMap()
	x := root
	for range 5 {
		y := ir.NewMap()
		x.Set("k", y)
		x = y
	}
	if err := Encode(root, bytes.NewBuffer(nil), MaxDepth(6)); err != nil {
		t.Fatal(err)
	}
	err := Encode(root, bytes.NewBuffer(nil), MaxDepth(5))
	if !errors.Is(err, ErrDepth) {
		t.Errorf("got %v", err)
	}
}

func TestDepthErrorPath(t *testing.T) {
	root := ir.NewMap()
	x := root
	for range 100 {
		y := ir.NewMap()
		x.Set("key", y)
		x = y
	}
	_, err := String(root, MaxDepth(90))
	if !errors.Is(err, ErrDepth) {
		t.Fatalf("got %v", err)
	}
	if !strings.HasSuffix(err.Error(), "...") || len(err.Error()) > 128 {
		t.Errorf("path not shortened: %s", err)
	}
	if _, err := String(root); err != nil {
		t.Fatal(err)
	}
	want := strings.Repeat(`{ "key" : `, 100) + "{  }" + strings.Repeat(" }", 100)
	if got := Canonical(root); got != want {
		t.Errorf("got %s", got)
	}
}
