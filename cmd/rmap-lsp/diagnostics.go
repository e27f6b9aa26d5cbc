package main

import (
	"context"
	"errors"
	"sync"

	"github.com/signadot/rmap/ir"
	"github.com/signadot/rmap/parse"
	"github.com/signadot/rmap/token"
	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

// document is an open text document. node is nil when content does not
// parse, and err holds the parse error.
type document struct {
	uri       string
	content   string
	version   int32
	node      *ir.Node
	positions map[*ir.Node]*token.Pos
	err       error
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) *document {
	positions := make(map[*ir.Node]*token.Pos)
	node, err := parse.ParseValue([]byte(content), parse.ParsePositions(positions))
	doc := &document{
		uri:       uri,
		content:   content,
		version:   version,
		node:      node,
		positions: positions,
		err:       err,
	}
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string, diagnostics []protocol.Diagnostic) {
	if s.conn == nil {
		return
	}
	s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(uri),
		Diagnostics: diagnostics,
	})
}

func validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if doc.err == nil {
		return diagnostics
	}
	diagnostic := protocol.Diagnostic{
		Severity: protocol.DiagnosticSeverityError,
		Message:  doc.err.Error(),
		Source:   "rmap",
	}
	var se *parse.SyntaxError
	if errors.As(doc.err, &se) && se.Pos != nil {
		line, col := se.Pos.LineCol()
		diagnostic.Range = protocol.Range{
			Start: protocol.Position{Line: uint32(line), Character: uint32(col)},
			End:   protocol.Position{Line: uint32(line), Character: uint32(col + 1)},
		}
	}
	return append(diagnostics, diagnostic)
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	doc := s.docs.put(uri, params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, uri, validateDocument(doc))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	old := s.docs.get(uri)
	if old == nil {
		return nil
	}
	content := applyChanges(old.content, params.ContentChanges)
	doc := s.docs.put(uri, content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, uri, validateDocument(doc))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	s.docs.remove(uri)
	s.publishDiagnostics(ctx, uri, []protocol.Diagnostic{})
	return nil
}

// applyChanges applies content changes in order. A change with an empty
// range and no range length replaces the whole text.
func applyChanges(content string, changes []protocol.TextDocumentContentChangeEvent) string {
	for _, change := range changes {
		r := change.Range
		if r == (protocol.Range{}) && change.RangeLength == 0 {
			content = change.Text
			continue
		}
		pd := token.NewPosDoc([]byte(content))
		start := pd.Offset(int(r.Start.Line), int(r.Start.Character))
		end := pd.Offset(int(r.End.Line), int(r.End.Character))
		if start > end {
			continue
		}
		content = content[:start] + change.Text + content[end:]
	}
	return content
}
