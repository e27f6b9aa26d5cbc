package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/rmap/debug"
	"github.com/signadot/rmap/ir"
	"github.com/signadot/rmap/token"
)

// eof is returned by peek once the input is exhausted.
const eof = 0

type parser struct {
	d    []byte
	i    int
	doc  *token.PosDoc
	opts *parseOpts
}

func newParser(d []byte, opts []ParseOption) *parser {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	return &parser{d: d, doc: token.NewPosDoc(d), opts: pOpts}
}

// Parse parses a complete document holding one map, optionally surrounded
// by whitespace.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	p := newParser(d, opts)
	p.skipWS()
	start := p.i
	res, err := p.parseMap(1)
	if err == nil {
		err = p.end()
	}
	if err != nil {
		if debug.Parse() {
			debug.Logf("parse failed: %v\n", err)
		}
		return nil, err
	}
	p.trackPos(res, start)
	return res, nil
}

// ParseString is Parse for string input.
func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

// ParseValue parses a document holding either a map or a single quoted
// leaf, the inverse of encoding an arbitrary node.
func ParseValue(d []byte, opts ...ParseOption) (*ir.Node, error) {
	p := newParser(d, opts)
	p.skipWS()
	start := p.i
	res, err := p.parseValue(1)
	if err == nil {
		err = p.end()
	}
	if err != nil {
		return nil, err
	}
	p.trackPos(res, start)
	return res, nil
}

// ParseLeaf parses a single quoted string into a leaf.
func ParseLeaf(d []byte) (*ir.Node, error) {
	p := newParser(d, nil)
	p.skipWS()
	s, err := p.parseString("'\"'")
	if err == nil {
		err = p.end()
	}
	if err != nil {
		return nil, err
	}
	return ir.NewLeaf(s), nil
}

func (p *parser) peek() byte {
	if p.i >= len(p.d) {
		return eof
	}
	return p.d[p.i]
}

func (p *parser) skipWS() {
	for p.i < len(p.d) {
		switch p.d[p.i] {
		case ' ', '\t', '\r', '\n':
			p.i++
		default:
			return
		}
	}
}

func (p *parser) end() error {
	p.skipWS()
	if p.i != len(p.d) {
		return p.unexpected("end of input")
	}
	return nil
}

func (p *parser) unexpected(expected string) error {
	found := "end of input"
	if p.i < len(p.d) {
		found = strconv.QuoteRune(rune(p.d[p.i]))
	}
	return &SyntaxError{Expected: expected, Found: found, Pos: p.doc.Pos(p.i)}
}

func (p *parser) trackPos(node *ir.Node, off int) {
	if p.opts.positions != nil {
		p.opts.positions[node] = p.doc.Pos(off)
	}
}

func (p *parser) parseValue(depth int) (*ir.Node, error) {
	switch p.peek() {
	case '"':
		s, err := p.parseString("'\"'")
		if err != nil {
			return nil, err
		}
		return ir.NewLeaf(s), nil
	case '{':
		return p.parseMap(depth)
	default:
		return nil, p.unexpected("'\"' or '{'")
	}
}

func (p *parser) parseMap(depth int) (*ir.Node, error) {
	if p.peek() != '{' {
		return nil, p.unexpected("'{'")
	}
	if depth > p.opts.maxDepth {
		return nil, fmt.Errorf("%w: %w: more than %d levels %s", ir.ErrMalformedInput, ErrDepth, p.opts.maxDepth, p.doc.Pos(p.i))
	}
	p.i++
	res := ir.NewMap()
	p.skipWS()
	if p.peek() == '}' {
		p.i++
		return res, nil
	}
	for {
		p.skipWS()
		keyStart := p.i
		key, err := p.parseString("'\"' starting a key")
		if err != nil {
			return nil, err
		}
		p.skipWS()
		if p.peek() != ':' {
			return nil, p.unexpected("':'")
		}
		p.i++
		p.skipWS()
		val, err := p.parseValue(depth + 1)
		if err != nil {
			return nil, err
		}
		if err := res.Set(key, val); err != nil {
			return nil, err
		}
		p.trackPos(val, keyStart)
		p.skipWS()
		switch p.peek() {
		case ',':
			p.i++
			continue
		case '}':
			p.i++
			return res, nil
		default:
			return nil, p.unexpected("',' or '}'")
		}
	}
}

// parseString reads a quoted string, resolving each '\' escape to the byte
// following it.
func (p *parser) parseString(expected string) (string, error) {
	if p.peek() != '"' {
		return "", p.unexpected(expected)
	}
	p.i++
	start := p.i
	for p.i < len(p.d) {
		switch p.d[p.i] {
		case '"':
			s := string(p.d[start:p.i])
			p.i++
			return s, nil
		case '\\':
			return p.parseEscaped(start)
		}
		p.i++
	}
	return "", &SyntaxError{Expected: "closing '\"'", Found: "end of input", Pos: p.doc.Pos(start - 1)}
}

func (p *parser) parseEscaped(start int) (string, error) {
	var b strings.Builder
	b.Write(p.d[start:p.i])
	for p.i < len(p.d) {
		c := p.d[p.i]
		switch c {
		case '"':
			p.i++
			return b.String(), nil
		case '\\':
			p.i++
			if p.i >= len(p.d) {
				return "", p.unexpected("escaped character")
			}
			c = p.d[p.i]
		}
		b.WriteByte(c)
		p.i++
	}
	return "", &SyntaxError{Expected: "closing '\"'", Found: "end of input", Pos: p.doc.Pos(start - 1)}
}
