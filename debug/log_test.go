package debug

import (
	"io"
	"os"
	"testing"

	"github.com/signadot/rmap/ir"
)

func captureStderr(t *testing.T, f func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	orig := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = orig }()
	f()
	w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return string(out)
}

func TestLogfNode(t *testing.T) {
	n := ir.NewMap()
	if err := n.Set("k", ir.NewLeaf(`a"b`)); err != nil {
		t.Fatal(err)
	}
	got := captureStderr(t, func() {
		Logf("patched %s: %v\n", n.Path(), n)
	})
	want := "patched $: { \"k\" : \"a\\\"b\" }\n"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
	var nilNode *ir.Node
	if got := captureStderr(t, func() { Logf("%v\n", nilNode) }); got != "<nil>\n" {
		t.Errorf("nil node: got %q", got)
	}
}
