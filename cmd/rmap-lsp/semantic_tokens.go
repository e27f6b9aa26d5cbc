package main

import (
	"context"

	"github.com/signadot/rmap/token"
	"go.lsp.dev/protocol"
)

// tokenTypes is the semantic token legend. Token data refers to it by
// index.
var tokenTypes = []protocol.SemanticTokenTypes{
	protocol.SemanticTokenString,
	protocol.SemanticTokenOperator,
	protocol.SemanticTokenProperty,
}

const (
	stringToken uint32 = iota
	operatorToken
	propertyToken
)

type tokenInfo struct {
	line, char, length uint32
	kind               uint32
}

// scanTokens lexes content into keys, values and punctuation. It does not
// need content to parse, so highlighting survives syntax errors. Strings
// spanning lines are skipped.
func scanTokens(content string) []tokenInfo {
	d := []byte(content)
	pd := token.NewPosDoc(d)
	var res []tokenInfo
	add := func(start, end int, kind uint32) {
		l0, c0 := pd.LineCol(start)
		l1, _ := pd.LineCol(end - 1)
		if l0 != l1 {
			return
		}
		res = append(res, tokenInfo{line: uint32(l0), char: uint32(c0), length: uint32(end - start), kind: kind})
	}
	for i := 0; i < len(d); {
		switch d[i] {
		case '{', '}', ':', ',':
			add(i, i+1, operatorToken)
			i++
		case '"':
			start := i
			i++
			for i < len(d) && d[i] != '"' {
				if d[i] == '\\' {
					i++
				}
				i++
			}
			i = min(i+1, len(d))
			kind := stringToken
			j := i
			for j < len(d) && isSpace(d[j]) {
				j++
			}
			if j < len(d) && d[j] == ':' {
				kind = propertyToken
			}
			add(start, i, kind)
		default:
			i++
		}
	}
	return res
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// encodeTokens delta encodes tokens sorted by position.
func encodeTokens(tokens []tokenInfo) []uint32 {
	data := make([]uint32, 0, 5*len(tokens))
	var prevLine, prevChar uint32
	for _, ti := range tokens {
		deltaLine := ti.line - prevLine
		deltaChar := ti.char
		if deltaLine == 0 {
			deltaChar = ti.char - prevChar
		}
		data = append(data, deltaLine, deltaChar, ti.length, ti.kind, 0)
		prevLine, prevChar = ti.line, ti.char
	}
	return data
}

func inRange(ti tokenInfo, r protocol.Range) bool {
	if ti.line < r.Start.Line || ti.line > r.End.Line {
		return false
	}
	if ti.line == r.Start.Line && ti.char < r.Start.Character {
		return false
	}
	if ti.line == r.End.Line && ti.char >= r.End.Character {
		return false
	}
	return true
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{Data: encodeTokens(scanTokens(doc.content))}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	var tokens []tokenInfo
	for _, ti := range scanTokens(doc.content) {
		if inRange(ti, params.Range) {
			tokens = append(tokens, ti)
		}
	}
	return &protocol.SemanticTokens{Data: encodeTokens(tokens)}, nil
}
