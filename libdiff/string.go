package libdiff

import (
	"fmt"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diffStrings(from, to string) []diffpatch.Diff {
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffMain(from, to, doMultiLine)
	return diffCfg.DiffCleanupSemantic(diffs)
}

// TextDiff renders the edit from one text to another, marking deletions
// [-like this-] and insertions {+like this+}.
func TextDiff(from, to string) string {
	var b strings.Builder
	for _, d := range diffStrings(from, to) {
		switch d.Type {
		case diffpatch.DiffDelete:
			b.WriteString("[-" + d.Text + "-]")
		case diffpatch.DiffInsert:
			b.WriteString("{+" + d.Text + "+}")
		case diffpatch.DiffEqual:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}

// Delta encodes the edit from one text to another compactly. It can only
// be applied to the same source text.
func Delta(from, to string) string {
	return diffpatch.New().DiffToDelta(diffStrings(from, to))
}

// ApplyDelta reconstructs the target text of delta from its source text.
func ApplyDelta(from, delta string) (string, error) {
	diffCfg := diffpatch.New()
	diffs, err := diffCfg.DiffFromDelta(from, delta)
	if err != nil {
		return "", fmt.Errorf("%w: delta does not apply: %w", ErrConflict, err)
	}
	return diffCfg.DiffText2(diffs), nil
}
