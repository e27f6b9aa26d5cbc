package main

import (
	"fmt"

	"github.com/signadot/rmap"

	"github.com/scott-cotton/cli"
)

func eq(cfg *EqConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eq.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: eq requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getObjFile(cc, args[0], cfg.inFormatFor(args[0]))
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getObjFile(cc, args[1], cfg.inFormatFor(args[1]))
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	if !rmap.Equal(a, b) {
		return cli.ExitCodeErr(1)
	}
	return nil
}
