package main

import (
	"fmt"
	"io"

	"github.com/signadot/rmap"
	"github.com/signadot/rmap/ir"
	"github.com/signadot/rmap/parse"

	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("%w: set requires a path, a value and at most one file", cli.ErrUsage)
	}
	return forEachInput(cfg.MainConfig, cc, args[2:], func(_ int, _ string, n *ir.Node) error {
		if err := setPath(n, args[0], args[1], cfg.Map); err != nil {
			return err
		}
		return writeNode(cfg.MainConfig, cc.Out, n)
	})
}

// setPath stores value at path in doc, creating empty maps for missing
// keys along the way. With isMap, value is parsed as an rmap document.
func setPath(doc *ir.Node, path, value string, isMap bool) error {
	keys, err := ir.ParsePath(path)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return fmt.Errorf("%w: cannot set the root", ir.ErrBadPath)
	}
	a, err := slot(doc, keys)
	if err != nil {
		return err
	}
	if !isMap {
		return a.SetText(value)
	}
	sub, err := parse.ParseString(value)
	if err != nil {
		return err
	}
	return a.AssignMap(sub)
}

func slot(doc *ir.Node, keys []string) (rmap.Accessor, error) {
	a := rmap.At(doc, keys[0])
	for _, k := range keys[1:] {
		if !a.Exists() {
			if _, err := a.NewMap(); err != nil {
				return rmap.Accessor{}, err
			}
		}
		next, err := a.Index(k)
		if err != nil {
			return rmap.Accessor{}, err
		}
		a = next
	}
	return a, nil
}

func writeText(w io.Writer, s string) error {
	_, err := io.WriteString(w, s+"\n")
	return err
}
