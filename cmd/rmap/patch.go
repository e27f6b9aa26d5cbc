package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/rmap/format"
	"github.com/signadot/rmap/ir"
	"github.com/signadot/rmap/libdiff"
	rpatch "github.com/signadot/rmap/patch"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	if cfg.Merge && cfg.Diff {
		return fmt.Errorf("%w: -merge and -diff exclude each other", cli.ErrUsage)
	}
	d, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	apply, err := patchFunc(cfg, d)
	if err != nil {
		return fmt.Errorf("error decoding patch %s: %w", args[0], err)
	}
	return forEachInput(cfg.MainConfig, cc, args[1:], func(i int, _ string, n *ir.Node) error {
		res, err := apply(n)
		if err != nil {
			return fmt.Errorf("error patching: %w", err)
		}
		return viewNode(cfg.MainConfig, cc.Out, i, res)
	})
}

func patchFunc(cfg *PatchConfig, d []byte) (func(*ir.Node) (*ir.Node, error), error) {
	switch {
	case cfg.Merge:
		return func(n *ir.Node) (*ir.Node, error) {
			return rpatch.Merge(n, d)
		}, nil
	case cfg.Diff:
		n, err := readNode(bytes.NewReader(d), "patch", format.RMapFormat)
		if err != nil {
			return nil, err
		}
		changes, err := libdiff.FromNode(n)
		if err != nil {
			return nil, err
		}
		return func(n *ir.Node) (*ir.Node, error) {
			return libdiff.Patch(n, changes)
		}, nil
	default:
		p, err := rpatch.Decode(d)
		if err != nil {
			return nil, err
		}
		return p.Apply, nil
	}
}
