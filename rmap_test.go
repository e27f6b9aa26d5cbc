package rmap

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/go-cmp/cmp"
	"github.com/signadot/rmap/encode"
	"github.com/signadot/rmap/ir"
	"github.com/signadot/rmap/token"
)

const expectedStr = `{ "bye" : "90.8", "f**\"k you" : "jaetlkuretio65", "hi" : "50", "screw this" : { "hohoho" : "4560" } }`

func must[T any](t *testing.T) func(T, error) T {
	return func(v T, err error) T {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
		return v
	}
}

func serialized(t *testing.T, n *ir.Node) string {
	t.Helper()
	s, err := Serialize(n)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func buildSample(t *testing.T) *ir.Node {
	a := New()
	must[int](t)(Assign(At(a, "hi"), 50))
	must[float64](t)(Assign(At(a, "bye"), 90.8))
	must[string](t)(Assign(At(a, `f**"k you`), "jaetlkuretio65"))
	sub := must[*ir.Node](t)(At(a, "screw this").NewMap())
	must[int](t)(Assign(At(sub, "hohoho"), 4560))
	return a
}

func TestStorage(t *testing.T) {
	a := buildSample(t)
	checks := []struct {
		path []string
		ok   func(Accessor) (bool, error)
	}{
		{[]string{"hi"}, func(x Accessor) (bool, error) { return Eq(x, 50) }},
		{[]string{"bye"}, func(x Accessor) (bool, error) { return Eq(x, 90.8) }},
		{[]string{`f**"k you`}, func(x Accessor) (bool, error) { return Eq(x, "jaetlkuretio65") }},
		{[]string{"screw this", "hohoho"}, func(x Accessor) (bool, error) { return Eq(x, 4560) }},
	}
	for _, c := range checks {
		x, err := At(a, c.path[0]).Path(c.path[1:]...)
		if err != nil {
			t.Fatal(err)
		}
		ok, err := c.ok(x)
		if err != nil || !ok {
			t.Errorf("%s: %v %v", x, ok, err)
		}
	}
	if got := serialized(t, a); got != expectedStr {
		t.Errorf("got  %s\nwant %s", got, expectedStr)
	}
}

func TestParseRoundTrip(t *testing.T) {
	a := buildSample(t)
	b, err := Parse(expectedStr)
	if err != nil {
		t.Fatal(err)
	}
	if serialized(t, b) != expectedStr || !Equal(a, b) {
		t.Fatalf("parsed tree differs: %s", serialized(t, b))
	}
	if Hash(a) != Hash(b) {
		t.Errorf("equal trees hash differently")
	}
	hohoho, err := At(b, "screw this").Index("hohoho")
	if err != nil {
		t.Fatal(err)
	}
	if v, err := hohoho.Int(); v != 4560 || err != nil {
		t.Errorf("got %d %v", v, err)
	}

	kukuku, _ := At(b, "screw this").Index("kukuku")
	if err := kukuku.SetFloat(200.37); err != nil {
		t.Fatal(err)
	}
	if serialized(t, b) == expectedStr || Equal(a, b) {
		t.Errorf("insert did not change tree")
	}
	if Hash(a) == Hash(b) {
		t.Errorf("hash did not change")
	}
	if v, _ := kukuku.Float(); v != 200.37 {
		t.Errorf("got %v", v)
	}
}

func TestWeakTyping(t *testing.T) {
	m := New()
	hi := At(m, "hi")
	if err := hi.SetInt(50); err != nil {
		t.Fatal(err)
	}
	if v, err := AddAssign(hi, 50); v != 100 || err != nil {
		t.Fatalf("got %d %v", v, err)
	}
	hi.SetInt(50)
	if v, err := AddAssign(hi, "50"); v != "5050" || err != nil {
		t.Fatalf("got %q %v", v, err)
	}
	if v, _ := Read[int](hi); v != 5050 {
		t.Errorf("got %d", v)
	}
	if ok, _ := Eq(hi, 5050.0); !ok {
		t.Errorf("float read")
	}
	if v, _ := AddAssign(hi, 50); v != 5100 {
		t.Errorf("got %d", v)
	}
	if ok, _ := Eq(hi, "5100"); !ok {
		t.Errorf("text read")
	}
	if _, err := Read[int](At(m, "hi")); err != nil {
		t.Error(err)
	}
	hi.SetFloat(2.5)
	if _, err := Read[int](hi); !errors.Is(err, ir.ErrConversion) {
		t.Errorf("strict int read: %v", err)
	}
}

func TestOperators(t *testing.T) {
	m := New()
	x := At(m, "x")
	step := func(name string, got int, err error, want int) {
		t.Helper()
		if err != nil || got != want {
			t.Errorf("%s: got %d %v want %d", name, got, err, want)
		}
	}
	x.SetInt(12)
	v, err := SubAssign(x, 2)
	step("sub", v, err, 10)
	v, err = MulAssign(x, 3)
	step("mul", v, err, 30)
	v, err = DivAssign(x, 4)
	step("div", v, err, 7)
	v, err = RemAssign(x, 4)
	step("rem", v, err, 3)
	v, err = ShlAssign[int](x, 2)
	step("shl", v, err, 12)
	v, err = ShrAssign[int](x, 1)
	step("shr", v, err, 6)
	v, err = AndAssign(x, 3)
	step("and", v, err, 2)
	v, err = OrAssign(x, 5)
	step("or", v, err, 7)
	v, err = XorAssign(x, 1)
	step("xor", v, err, 6)
	v, err = Inc[int](x)
	step("inc", v, err, 7)
	v, err = Dec[int](x)
	step("dec", v, err, 6)
	v, err = AndNot(x, 2)
	step("andnot", v, err, 4)
	if got, _ := x.Text(); got != "6" {
		t.Errorf("non-assigning operator stored: %s", got)
	}

	if c, _ := Complement(x); c != ^int64(6) {
		t.Errorf("complement %d", c)
	}
	if n, _ := Neg(x); n != -6 {
		t.Errorf("neg %v", n)
	}
	if p, _ := Pos(x); p != 6 {
		t.Errorf("pos %v", p)
	}
	if not, _ := Not(x); not {
		t.Errorf("not 6")
	}
	z := At(m, "z")
	z.SetText("0.0")
	if not, _ := Not(z); !not {
		t.Errorf("not 0.0")
	}

	cmps := []struct {
		name string
		f    func(Accessor, int) (bool, error)
		arg  int
		want bool
	}{
		{"lt", Lt[int], 7, true},
		{"le", Le[int], 6, true},
		{"gt", Gt[int], 6, false},
		{"ge", Ge[int], 6, true},
		{"ne", Ne[int], 6, false},
		{"eq", Eq[int], 6, true},
	}
	for _, c := range cmps {
		got, err := c.f(x, c.arg)
		if err != nil || got != c.want {
			t.Errorf("%s: got %v %v", c.name, got, err)
		}
	}
	// strings compare as text
	if lt, _ := Lt(x, "10"); lt {
		t.Errorf(`"6" < "10" as text`)
	}
}

func TestDivideByZero(t *testing.T) {
	m := New()
	x := At(m, "x")
	x.SetInt(5)
	if _, err := DivAssign(x, 0); !errors.Is(err, ErrDivideByZero) {
		t.Errorf("div: %v", err)
	}
	if _, err := Rem(x, 0); !errors.Is(err, ErrDivideByZero) {
		t.Errorf("rem: %v", err)
	}
	if v, _ := x.Int(); v != 5 {
		t.Errorf("failed op stored %d", v)
	}
	if f, err := Div(x, 0.0); err != nil || f <= 1e308 {
		t.Errorf("float div: %v %v", f, err)
	}
}

func TestAccessorErrors(t *testing.T) {
	m := New()
	At(m, "leaf").SetText("x")

	var unbound Accessor
	if _, err := unbound.Text(); !errors.Is(err, ErrUnbound) {
		t.Errorf("unbound text: %v", err)
	}
	if err := unbound.SetInt(1); !errors.Is(err, ErrUnbound) {
		t.Errorf("unbound set: %v", err)
	}
	if _, err := unbound.Index("k"); !errors.Is(err, ErrUnbound) {
		t.Errorf("unbound index: %v", err)
	}
	if unbound.Exists() {
		t.Errorf("unbound exists")
	}

	if _, err := At(m, "leaf").Index("k"); !errors.Is(err, ir.ErrTypeMismatch) {
		t.Errorf("index leaf: %v", err)
	}
	if _, err := At(m, "missing").Index("k"); !errors.Is(err, ir.ErrTypeMismatch) {
		t.Errorf("index missing: %v", err)
	}
	if _, err := At(m, "missing").Int(); !errors.Is(err, ir.ErrNotFound) {
		t.Errorf("read missing: %v", err)
	}
	if _, err := At(m, "leaf").Int(); !errors.Is(err, ir.ErrConversion) {
		t.Errorf("read bad int: %v", err)
	}
	At(m, "sub").NewMap()
	if _, err := At(m, "sub").Int(); !errors.Is(err, ir.ErrTypeMismatch) {
		t.Errorf("read map: %v", err)
	}
	if _, err := At(m, "leaf").Map(); !errors.Is(err, ir.ErrTypeMismatch) {
		t.Errorf("map of leaf: %v", err)
	}
	if err := At(m, "x").AssignMap(ir.NewLeaf("v")); !errors.Is(err, ir.ErrTypeMismatch) {
		t.Errorf("assign leaf as map: %v", err)
	}
	if err := At(ir.NewLeaf("p"), "k").SetText("v"); !errors.Is(err, ir.ErrTypeMismatch) {
		t.Errorf("parent leaf: %v", err)
	}
	if At(m, "missing").Exists() {
		t.Errorf("missing exists")
	}
	if got := serialized(t, m); got != `{ "leaf" : "x", "sub" : {  } }` {
		t.Errorf("failed operations mutated tree: %s", got)
	}
}

func TestAssignMapCycle(t *testing.T) {
	root := New()
	child := must[*ir.Node](t)(At(root, "child").NewMap())
	if err := At(child, "loop").AssignMap(root); !errors.Is(err, ir.ErrCycle) {
		t.Errorf("got %v", err)
	}
	if err := At(child, "self").AssignMap(child); !errors.Is(err, ir.ErrCycle) {
		t.Errorf("self: got %v", err)
	}
	if got := serialized(t, root); got != `{ "child" : {  } }` {
		t.Errorf("got %s", got)
	}
}

func TestAssignMapOwnership(t *testing.T) {
	a, b := New(), New()
	sub := must[*ir.Node](t)(At(a, "s").NewMap())
	At(sub, "k").SetText("v")
	if err := At(b, "t").AssignMap(sub); err != nil {
		t.Fatal(err)
	}
	if serialized(t, a) != `{  }` || serialized(t, b) != `{ "t" : { "k" : "v" } }` {
		t.Errorf("got %s and %s", serialized(t, a), serialized(t, b))
	}
	// the accessor keeps addressing sub after it moved
	k := At(sub, "k")
	if txt, _ := k.Text(); txt != "v" {
		t.Errorf("got %q", txt)
	}
	old, err := At(b, "t").Delete()
	if err != nil || old != sub {
		t.Fatalf("delete: %v", err)
	}
	if txt, _ := k.Text(); txt != "v" {
		t.Errorf("detached: got %q", txt)
	}
	if k.String() != "$.k" {
		t.Errorf("got %s", k)
	}
}

func TestMapText(t *testing.T) {
	m := New()
	sub := must[*ir.Node](t)(At(m, "s").NewMap())
	At(sub, "a").SetBool(true)
	txt, err := At(m, "s").Text()
	if err != nil {
		t.Fatal(err)
	}
	if txt != `{ "a" : "true" }` {
		t.Errorf("got %s", txt)
	}
	if b, _ := At(sub, "a").Bool(); !b {
		t.Errorf("bool read")
	}
}

func TestEmptyMap(t *testing.T) {
	if got := serialized(t, New()); got != "{  }" {
		t.Errorf("got %q", got)
	}
}

func TestEscapeKeys(t *testing.T) {
	m := New()
	keys := []string{`\\\`, `a\\\`, `\\\a`, `a\\\a`, `"""`, `a"""`, `"""a`, `a"""a`}
	for i, k := range keys {
		At(m, k).SetInt(int64(i))
	}
	clone, err := Parse(serialized(t, m))
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(m, clone) {
		t.Errorf("got %s", serialized(t, clone))
	}
	for _, k := range keys {
		q := token.Quote(k)
		u, err := token.Unquote(q)
		if err != nil || u != k {
			t.Errorf("%q: got %q %v", k, u, err)
		}
	}
}

func TestNumericKeys(t *testing.T) {
	m := New()
	for i := range 50 {
		if err := At(m, fmt.Sprint(i)).SetInt(int64(i)); err != nil {
			t.Fatal(err)
		}
	}
	keys := m.Keys()
	entries := make([]string, len(keys))
	for i, k := range keys {
		entries[i] = fmt.Sprintf("%q : %q", k, k)
	}
	want := "{ " + strings.Join(entries, ", ") + " }"
	if got := serialized(t, m); got != want {
		t.Errorf("got %s", got)
	}
	if !strings.HasPrefix(serialized(t, m), `{ "0" : "0", "1" : "1", "10" : "10", "11" : "11"`) {
		t.Errorf("keys not in byte order")
	}
}

func TestRecursion(t *testing.T) {
	root := New()
	x := root
	for range 128 {
		x = must[*ir.Node](t)(At(x, "recursion").NewMap())
	}
	want := strings.Repeat(`{ "recursion" : `, 128) + "{  }" + strings.Repeat(" }", 128)
	got := serialized(t, root)
	if got != want {
		t.Fatalf("got %s", got)
	}
	back, err := Parse(got)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(root, back) {
		t.Errorf("parsed tree differs")
	}
}

func TestTooDeep(t *testing.T) {
	root := New()
	cur := root
	for range encode.DefaultMaxDepth + 1 {
		cur = must[*ir.Node](t)(At(cur, "r").NewMap())
	}
	_, err := Serialize(root)
	if !errors.Is(err, encode.ErrDepth) {
		t.Fatalf("expected ErrDepth, got %v", err)
	}
	if len(err.Error()) > 200 {
		t.Errorf("error message has %d bytes", len(err.Error()))
	}
	if !Equal(root, root.Clone()) {
		t.Errorf("deep clone compares unequal")
	}
	if Hash(root) != Hash(root.Clone()) {
		t.Errorf("deep clone hashes differently")
	}
	At(cur, "leaf").SetText("x")
	if Equal(root, New()) {
		t.Errorf("deep tree equals empty map")
	}
}

func TestEqualClone(t *testing.T) {
	a := buildSample(t)
	b := New()
	// different construction order
	sub := must[*ir.Node](t)(At(b, "screw this").NewMap())
	At(sub, "hohoho").SetText("4560")
	At(b, "hi").SetText("50")
	At(b, `f**"k you`).SetText("jaetlkuretio65")
	At(b, "bye").SetText("90.8")
	if !Equal(a, b) {
		t.Fatalf("got %s", serialized(t, b))
	}
	c := a.Clone()
	At(c, "extra").SetText("1")
	if Equal(a, c) {
		t.Errorf("clone with extra key compares equal")
	}
}

func randomTree(f *gofakeit.Faker, depth int) *ir.Node {
	m := New()
	n := f.IntRange(0, 5)
	for range n {
		a := At(m, f.Word()+f.RandomString([]string{"", `"`, `\`, " ", ".", `\"`}))
		switch {
		case depth > 0 && f.Bool():
			a.AssignMap(randomTree(f, depth-1))
		case f.Bool():
			a.SetInt(int64(f.IntRange(-1000000, 1000000)))
		case f.Bool():
			a.SetFloat(f.Float64Range(-1e6, 1e6))
		default:
			a.SetText(f.Sentence(3))
		}
	}
	return m
}

func TestRandomRoundTrip(t *testing.T) {
	f := gofakeit.New(17)
	for i := range 100 {
		tree := randomTree(f, 4)
		text := serialized(t, tree)
		back, err := Parse(text)
		if err != nil {
			t.Fatalf("%d: %v\n%s", i, err, text)
		}
		if diff := cmp.Diff(text, serialized(t, back)); diff != "" {
			t.Fatalf("%d: %s", i, diff)
		}
	}
}
