package main

import (
	"bytes"
	"context"

	"github.com/signadot/rmap/encode"
	"go.lsp.dev/protocol"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return nil, nil
	}
	return formatDocument(doc, int(params.Options.TabSize))
}

// formatDocument returns a single edit replacing the whole document with
// its pretty encoding, or no edits when it is already formatted.
func formatDocument(doc *document, indent int) ([]protocol.TextEdit, error) {
	if indent <= 0 {
		indent = 2
	}
	var buf bytes.Buffer
	if err := encode.Encode(doc.node, &buf, encode.EncodePretty(indent)); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	formatted := buf.String()
	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}

	lines := bytes.Count([]byte(doc.content), []byte("\n"))
	if len(doc.content) > 0 && doc.content[len(doc.content)-1] != '\n' {
		lines++
	}
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End: protocol.Position{
					Line:      uint32(lines),
					Character: 0,
				},
			},
			NewText: formatted,
		},
	}, nil
}
