// Package parse parses rmap text into IR nodes.
//
// # Usage
//
//	node, err := parse.Parse([]byte(`{ "name" : "alice", "age" : "30" }`))
//	if err != nil {
//	    return err
//	}
//
// The grammar is
//
//	Map          := '{' ws Pair (',' ws Pair)* '}' | '{' ws '}'
//	Pair         := ws Key ws ':' ws Value
//	Key          := QuotedString
//	Value        := QuotedString | Map
//	QuotedString := '"' ( UnescapedChar | '\' AnyChar )* '"'
//
// where ws is any run of spaces, tabs, carriage returns and newlines. Leaf
// text is stored verbatim; no numeric or boolean interpretation happens
// at parse time.
//
// Any violation yields a *SyntaxError wrapping ir.ErrMalformedInput and
// no tree.
//
// # Related Packages
//
//   - github.com/signadot/rmap/ir - IR representation
//   - github.com/signadot/rmap/encode - Encode IR to text
//   - github.com/signadot/rmap/token - Quoting and positions
package parse
