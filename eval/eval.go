package eval

import (
	"fmt"
	"strconv"

	"github.com/signadot/rmap/convert"
	"github.com/signadot/rmap/debug"
	"github.com/signadot/rmap/encode"
	"github.com/signadot/rmap/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

type Env = map[string]any

// NewEnv returns the environment for evaluating expressions over root.
func NewEnv(root *ir.Node) Env {
	if root == nil || root.Type != ir.MapType {
		return Env{}
	}
	return convert.ToAny(root).(map[string]any)
}

// Eval evaluates src with the environment of root.
func Eval(root *ir.Node, src string) (any, error) {
	return evalAt(src, NewEnv(root), root)
}

// EvalEnv evaluates src with env, resolving paths against root.
func EvalEnv(root *ir.Node, src string, env Env) (any, error) {
	return evalAt(src, env, root)
}

func evalAt(src string, env Env, node *ir.Node) (any, error) {
	var opts []expr.Option
	if node != nil {
		opts = exprOpts(node)
	}
	program, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, err
	}
	res, err := vm.Run(program, env)
	if err != nil {
		return nil, err
	}
	if debug.Eval() {
		debug.Logf("eval %q gave %#v\n", src, res)
	}
	return res, nil
}

// Text returns the canonical rmap text of an evaluation result. Maps are
// encoded, nil is the empty string.
func Text(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), nil
	case *ir.Node:
		return encode.String(x)
	case map[string]any:
		n, err := convert.FromAny(x)
		if err != nil {
			return "", err
		}
		return encode.String(n)
	default:
		n, err := convert.FromAny(v)
		if err != nil {
			return "", fmt.Errorf("could not convert evaluation result: %w", err)
		}
		return encode.String(n)
	}
}

// ToNode converts an evaluation result to a tree. Scalars become leaves
// holding their text.
func ToNode(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case *ir.Node:
		return x.Clone(), nil
	case map[string]any:
		return convert.FromAny(x)
	}
	s, err := Text(v)
	if err != nil {
		return nil, err
	}
	return ir.NewLeaf(s), nil
}
