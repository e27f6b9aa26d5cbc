package eval

import (
	"fmt"
	"strings"

	"github.com/signadot/rmap/ir"
)

// Expand rewrites the leaves of root which hold expressions, evaluating
// them against the tree as it was before expansion.
func Expand(root *ir.Node) error {
	return ExpandEnv(root, NewEnv(root))
}

// ExpandEnv is Expand with an explicit environment.
func ExpandEnv(node *ir.Node, env Env) error {
	if node.Type == ir.LeafType {
		return expandLeaf(node, env)
	}
	type repl struct {
		key string
		to  *ir.Node
	}
	var repls []repl
	for k, c := range node.Entries() {
		if c.Type == ir.MapType {
			if err := ExpandEnv(c, env); err != nil {
				return err
			}
			continue
		}
		raw := GetRaw(c.Text)
		if raw == "" {
			if err := expandLeaf(c, env); err != nil {
				return err
			}
			continue
		}
		val, err := evalAt(raw, env, c)
		if err != nil {
			return fmt.Errorf("error evaluating %q at %s: %w", raw, c.Path(), err)
		}
		to, err := ToNode(val)
		if err != nil {
			return fmt.Errorf("could not translate evaluation result at %s: %w", c.Path(), err)
		}
		repls = append(repls, repl{k, to})
	}
	for _, r := range repls {
		if err := node.Set(r.key, r.to); err != nil {
			return err
		}
	}
	return nil
}

func expandLeaf(node *ir.Node, env Env) error {
	xs, err := expandString(node.Text, env, node)
	if err != nil {
		return fmt.Errorf("at %s: %w", node.Path(), err)
	}
	node.Text = xs
	return nil
}

// GetRaw extracts expr from a string of the form .[expr], returning ""
// for anything else.
func GetRaw(v string) string {
	if !strings.HasPrefix(v, ".[") || !strings.HasSuffix(v, "]") || len(v) < 3 {
		return ""
	}
	return v[2 : len(v)-1]
}

// ExpandString replaces each $[expr] in v by the text of its result.
func ExpandString(v string, env Env) (string, error) {
	return expandString(v, env, nil)
}

func expandString(v string, env Env, node *ir.Node) (string, error) {
	if len(v) < 3 {
		return v, nil
	}
	exprStart := -1
	var outBuf []byte
	var keyBuf []byte
	n := len(v)
	for i := 0; i < n; i++ {
		c := v[i]
		if exprStart == -1 {
			if c == '$' && i+1 < n && v[i+1] == '[' {
				exprStart = i
				keyBuf = keyBuf[:0]
				i++
				continue
			}
			outBuf = append(outBuf, c)
			continue
		}
		switch c {
		case '\\':
			if i+1 < n {
				i++
				keyBuf = append(keyBuf, v[i])
			}
		case ']':
			key := strings.TrimSpace(string(keyBuf))
			x, err := evalAt(key, env, node)
			if err != nil {
				return "", fmt.Errorf("error evaluating %q: %w", key, err)
			}
			s, err := Text(x)
			if err != nil {
				return "", fmt.Errorf("could not render evaluation results for %s: %w", key, err)
			}
			outBuf = append(outBuf, s...)
			exprStart = -1
		default:
			keyBuf = append(keyBuf, c)
		}
	}
	if exprStart != -1 {
		// no closing ']', keep the text as it was
		outBuf = append(outBuf, v[exprStart:]...)
	}
	return string(outBuf), nil
}
