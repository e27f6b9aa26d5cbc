package main

import (
	"github.com/signadot/rmap/ir"

	"github.com/scott-cotton/cli"
)

func convertCmd(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.InFormat == nil && cfg.OutFormat == nil {
		theLog.Warn("convert without -I or -O copies the format given by -r, -j or -y")
	}
	return forEachInput(cfg.MainConfig, cc, args, func(i int, _ string, n *ir.Node) error {
		return viewNode(cfg.MainConfig, cc.Out, i, n)
	})
}
