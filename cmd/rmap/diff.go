package main

import (
	"fmt"
	"io"

	"github.com/signadot/rmap/ir"
	"github.com/signadot/rmap/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	y1, err := getObjFile(cc, args[0], cfg.inFormatFor(args[0]))
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	y2, err := getObjFile(cc, args[1], cfg.inFormatFor(args[1]))
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	differs, err := diffInputs(cfg, cc.Out, y1, y2)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffInputs(do *DiffConfig, w io.Writer, a, b *ir.Node) (bool, error) {
	d := libdiff.Diff(a, b)
	if len(d) == 0 {
		return false, nil
	}
	if do.Reverse {
		d = libdiff.Reverse(d)
	}
	if do.Tree {
		if err := writeNode(do.MainConfig, w, libdiff.AsNode(d)); err != nil {
			return false, err
		}
		return true, nil
	}
	for _, c := range d {
		if err := writeText(w, c.String()); err != nil {
			return false, err
		}
	}
	return true, nil
}
