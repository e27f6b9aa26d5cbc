package main

import (
	"fmt"
	"io"

	"github.com/signadot/rmap/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	return forEachInput(cfg.MainConfig, cc, args[1:], func(_ int, _ string, n *ir.Node) error {
		return getPath(cfg, cc.Out, n, path)
	})
}

func getPath(cfg *GetConfig, w io.Writer, doc *ir.Node, path string) error {
	res, err := doc.GetPath(path)
	if err != nil {
		return err
	}
	if res == nil {
		return fmt.Errorf("%w: %s", ir.ErrNotFound, path)
	}
	if cfg.Text && res.Type == ir.LeafType {
		return writeText(w, res.Text)
	}
	return writeNode(cfg.MainConfig, w, res)
}
