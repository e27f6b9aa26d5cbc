package libdiff

import (
	"slices"
)

// Reverse returns the changes undoing changes, so that patching with the
// result of Diff(a, b) and then its reverse gives back a.
func Reverse(changes []Change) []Change {
	res := make([]Change, len(changes))
	for i, c := range changes {
		r := Change{Path: slices.Clone(c.Path), From: c.To, To: c.From}
		switch c.Kind {
		case Added:
			r.Kind = Removed
		case Removed:
			r.Kind = Added
		default:
			r.Kind = Changed
			if c.Delta != "" {
				r.Delta = Delta(c.To.Text, c.From.Text)
			}
		}
		res[i] = r
	}
	slices.Reverse(res)
	return res
}

func sortChanges(cs []Change) {
	slices.SortStableFunc(cs, func(a, b Change) int {
		return slices.Compare(a.Path, b.Path)
	})
}
