package main

import (
	"fmt"
	"io"

	"github.com/signadot/rmap/ir"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return forEachInput(cfg.MainConfig, cc, args, func(i int, _ string, n *ir.Node) error {
		return viewNode(cfg.MainConfig, cc.Out, i, n)
	})
}

func viewNode(cfg *MainConfig, w io.Writer, i int, n *ir.Node) error {
	if i > 0 {
		if _, err := w.Write([]byte("---\n")); err != nil {
			return fmt.Errorf("error writing document %d: %w", i, err)
		}
	}
	if err := writeNode(cfg, w, n); err != nil {
		return fmt.Errorf("error encoding result %d: %w", i, err)
	}
	return nil
}
