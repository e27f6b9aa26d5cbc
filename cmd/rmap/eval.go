package main

import (
	"fmt"
	"io"

	"github.com/signadot/rmap/eval"
	"github.com/signadot/rmap/ir"

	"github.com/scott-cotton/cli"
)

func evalCmd(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	extra, err := eval.LoadEnv()
	if err != nil {
		return err
	}
	if cfg.Expand {
		return forEachInput(cfg.MainConfig, cc, args, func(i int, _ string, n *ir.Node) error {
			if err := eval.ExpandWith(n, extra); err != nil {
				return err
			}
			return viewNode(cfg.MainConfig, cc.Out, i, n)
		})
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	src := args[0]
	return forEachInput(cfg.MainConfig, cc, args[1:], func(_ int, _ string, n *ir.Node) error {
		return evalNode(cfg, cc.Out, n, src, extra)
	})
}

// evalNode prints the value of src evaluated against doc with extra
// merged over its environment. Map results are written as documents,
// anything else as text.
func evalNode(cfg *EvalConfig, w io.Writer, doc *ir.Node, src string, extra eval.Env) error {
	env, err := eval.MergeEnv(eval.NewEnv(doc), extra)
	if err != nil {
		return err
	}
	v, err := eval.EvalEnv(doc, src, env)
	if err != nil {
		return err
	}
	if n, ok := v.(*ir.Node); ok && n.Type == ir.MapType {
		return writeNode(cfg.MainConfig, w, n)
	}
	if m, ok := v.(map[string]any); ok {
		n, err := eval.ToNode(m)
		if err != nil {
			return err
		}
		return writeNode(cfg.MainConfig, w, n)
	}
	s, err := eval.Text(v)
	if err != nil {
		return err
	}
	return writeText(w, s)
}
