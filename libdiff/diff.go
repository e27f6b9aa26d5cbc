package libdiff

import (
	"github.com/signadot/rmap/debug"
	"github.com/signadot/rmap/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns the changes turning from into to, in path order.
func Diff(from, to *ir.Node) []Change {
	res := diffNode(nil, from, to, nil)
	sortChanges(res)
	if debug.Diff() {
		for _, c := range res {
			debug.Logf("diff %s\n", c)
		}
	}
	return res
}

func diffNode(path []string, from, to *ir.Node, res []Change) []Change {
	if from.Type != to.Type {
		return append(res, MakeChange(path, from, to))
	}
	if from.Type == ir.LeafType {
		if from.Text == to.Text {
			return res
		}
		return append(res, MakeChange(path, from, to))
	}
	return diffMap(path, from, to, res)
}

// diffMap matches keys by running a sequence diff over the key lists,
// each distinct key mapped to one rune. Keys common to both sides are
// compared recursively.
func diffMap(path []string, from, to *ir.Node, res []Change) []Change {
	fieldMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromKeys, toKeys := from.Keys(), to.Keys()
	fromRunes := mapFieldsTo(fieldMap, runeMap, fromKeys)
	toRunes := mapFieldsTo(fieldMap, runeMap, toKeys)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)
	for i := range diffs {
		d := &diffs[i]
		for _, r := range d.Text {
			k := runeMap[r]
			p := append(path, k)
			switch d.Type {
			case diffpatch.DiffDelete:
				res = append(res, MakeChange(p, from.Get(k), nil))
			case diffpatch.DiffInsert:
				res = append(res, MakeChange(p, nil, to.Get(k)))
			case diffpatch.DiffEqual:
				res = diffNode(p, from.Get(k), to.Get(k), res)
			}
		}
	}
	return res
}

func mapFieldsTo(m map[string]rune, im map[rune]string, keys []string) []rune {
	rs := make([]rune, len(keys))
	for i, f := range keys {
		r, ok := m[f]
		if !ok {
			r = keyRune(len(m))
			m[f] = r
			im[r] = f
		}
		rs[i] = r
	}
	return rs
}

// keyRune maps i to a rune which survives conversion to a string,
// skipping the surrogate range.
func keyRune(i int) rune {
	r := rune(i)
	if r >= 0xD800 {
		r += 0x800
	}
	return r
}
