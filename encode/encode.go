package encode

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/rmap/ir"
	"github.com/signadot/rmap/token"
)

var ErrDepth = errors.New("nesting too deep")

type EncState struct {
	depth    int
	maxDepth int
	indent   int

	Color func(ColorAttr, string) string
}

// Encode writes node to w. A map is written in the form described in the
// package documentation; a leaf is written as its quoted text.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.MapType:
		return encodeMap(node, w, es)
	case ir.LeafType:
		return writeString(w, applyColor(es, LeafColor, token.Quote(node.Text)))
	default:
		return fmt.Errorf("cannot encode node of %s", node.Type)
	}
}

func encodeMap(node *ir.Node, w io.Writer, es *EncState) error {
	if es.depth >= es.maxDepth {
		return fmt.Errorf("%w: more than %d levels at %s", ErrDepth, es.maxDepth, shortPath(node))
	}
	es.depth++
	defer func() { es.depth-- }()

	if node.IsEmpty() {
		return writeString(w, applyColor(es, BraceColor, "{")+"  "+applyColor(es, BraceColor, "}"))
	}
	if err := writeString(w, applyColor(es, BraceColor, "{")); err != nil {
		return err
	}
	i := 0
	for k, v := range node.Entries() {
		if i > 0 {
			if err := writeString(w, applyColor(es, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := writeNL(w, es, es.depth); err != nil {
			return err
		}
		key := applyColor(es, KeyColor, token.Quote(k))
		if err := writeString(w, key+" "+applyColor(es, SepColor, ":")+" "); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
		i++
	}
	if err := writeNL(w, es, es.depth-1); err != nil {
		return err
	}
	return writeString(w, applyColor(es, BraceColor, "}"))
}

// writeNL writes the break between tokens: a single space in the
// canonical form, or a newline and indentation when pretty printing.
func writeNL(w io.Writer, es *EncState, depth int) error {
	if es.indent <= 0 {
		return writeString(w, " ")
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*depth))
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func applyColor(es *EncState, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(attr, v)
}

// maxErrPath bounds how much of a path goes into an error message.
const maxErrPath = 64

func shortPath(node *ir.Node) string {
	p := node.Path()
	if len(p) <= maxErrPath {
		return p
	}
	return p[:maxErrPath] + "..."
}
