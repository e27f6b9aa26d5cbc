package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/signadot/rmap/ir"
	"github.com/signadot/rmap/token"
	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return nil, nil
	}
	pos := params.Position
	target := findNodeAtPosition(doc.node, doc.positions, int(pos.Line), int(pos.Character))
	if target == nil {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: buildHoverText(target),
		},
	}, nil
}

// findNodeAtPosition returns the node whose key starts closest before
// line and col, on the same line.
func findNodeAtPosition(root *ir.Node, positions map[*ir.Node]*token.Pos, line, col int) *ir.Node {
	var (
		best    *ir.Node
		bestCol = -1
	)
	root.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		pos := positions[n]
		if pos == nil || n == root {
			return true, nil
		}
		l, c := pos.LineCol()
		if l == line && c <= col && c > bestCol {
			best, bestCol = n, c
		}
		return true, nil
	})
	return best
}

func buildHoverText(node *ir.Node) string {
	parts := []string{fmt.Sprintf("**Path:** `%s`", node.Path())}
	switch node.Type {
	case ir.LeafType:
		val := node.Text
		if len(val) > 50 {
			val = val[:50] + "..."
		}
		parts = append(parts, fmt.Sprintf("**Value:** `%s`", val))
	case ir.MapType:
		parts = append(parts, fmt.Sprintf("map with %d keys", node.Size()))
	}
	return strings.Join(parts, "\n\n")
}
