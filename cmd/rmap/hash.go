package main

import (
	"fmt"
	"io"

	"github.com/signadot/rmap"
	"github.com/signadot/rmap/ir"

	"github.com/scott-cotton/cli"
)

func hash(cfg *HashConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Hash.Parse(cc, args)
	if err != nil {
		return err
	}
	return forEachInput(cfg.MainConfig, cc, args, func(_ int, name string, n *ir.Node) error {
		return writeHash(cc.Out, name, n)
	})
}

func writeHash(w io.Writer, name string, n *ir.Node) error {
	_, err := fmt.Fprintf(w, "%016x  %s\n", rmap.Hash(n), name)
	return err
}
