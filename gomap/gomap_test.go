package gomap

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/rmap/convert"
	"github.com/signadot/rmap/encode"
	"github.com/signadot/rmap/ir"
)

type limits struct {
	CPU    float64 `rmap:"cpu"`
	Memory uint32  `rmap:"memory"`
}

type server struct {
	Host   string            `rmap:"host"`
	Port   int               `rmap:"port"`
	Debug  bool              `rmap:"debug,omitempty"`
	Env    map[string]string `rmap:"env,omitempty"`
	Limits *limits           `rmap:"limits,omitempty"`
	Extra  *ir.Node          `rmap:"extra,omitempty"`
	Any    any               `rmap:"any,omitempty"`
	Skip   int               `rmap:"-"`
	Name   string
	hidden int
}

const serverDoc = `{ "Name" : "web", "any" : { "k" : "v" }, "env" : { "A" : "1", "B" : "two" }, "extra" : { "x" : "y" }, "host" : "localhost", "limits" : { "cpu" : "0.5", "memory" : "512" }, "port" : "8080" }`

func TestLoad(t *testing.T) {
	var s server
	if err := Load([]byte(serverDoc), &s); err != nil {
		t.Fatal(err)
	}
	want := server{
		Host:   "localhost",
		Port:   8080,
		Env:    map[string]string{"A": "1", "B": "two"},
		Limits: &limits{CPU: 0.5, Memory: 512},
		Any:    map[string]any{"k": "v"},
		Name:   "web",
	}
	if encode.MustString(s.Extra) != `{ "x" : "y" }` {
		t.Errorf("extra: %s", encode.MustString(s.Extra))
	}
	s.Extra = nil
	if diff := cmp.Diff(want, s, cmp.AllowUnexported(server{})); diff != "" {
		t.Error(diff)
	}
}

func TestDumpRoundTrip(t *testing.T) {
	var s server
	if err := Load([]byte(serverDoc), &s); err != nil {
		t.Fatal(err)
	}
	d, err := Dump(&s)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != serverDoc {
		t.Errorf("got %s", d)
	}
}

func TestDumpOmitEmpty(t *testing.T) {
	d, err := Dump(server{Host: "h", Skip: 3})
	if err != nil {
		t.Fatal(err)
	}
	if want := `{ "Name" : "", "host" : "h", "port" : "0" }`; string(d) != want {
		t.Errorf("got %s", d)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		doc  string
		want error
	}{
		{`{ "port" : "80x" }`, ir.ErrConversion},
		{`{ "port" : { } }`, ir.ErrTypeMismatch},
		{`{ "limits" : "1" }`, ir.ErrTypeMismatch},
		{`{ "env" : { "A" : { } } }`, ir.ErrTypeMismatch},
	}
	for _, tc := range tests {
		var s server
		if err := Load([]byte(tc.doc), &s); !errors.Is(err, tc.want) {
			t.Errorf("%s: got %v", tc.doc, err)
		}
	}
	var s server
	if err := FromIR(ir.NewMap(), s); !errors.Is(err, ir.ErrTypeMismatch) {
		t.Errorf("non pointer: %v", err)
	}
	var list struct {
		L []string `rmap:"l"`
	}
	if err := Load([]byte(`{ "l" : "x" }`), &list); !errors.Is(err, convert.ErrUnsupported) {
		t.Errorf("slice: %v", err)
	}
	if _, err := ToIR(3); !errors.Is(err, ir.ErrTypeMismatch) {
		t.Errorf("scalar top level: %v", err)
	}
}

type celsius float64

func (c *celsius) FromIR(n *ir.Node) error {
	if n.Type != ir.LeafType || len(n.Text) < 2 || n.Text[len(n.Text)-1] != 'C' {
		return ir.ErrConversion
	}
	*c = 21
	return nil
}

func TestFromer(t *testing.T) {
	var v struct {
		T celsius `rmap:"t"`
	}
	if err := Load([]byte(`{ "t" : "21C" }`), &v); err != nil {
		t.Fatal(err)
	}
	if v.T != 21 {
		t.Errorf("got %v", v.T)
	}
}
