package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/rmap/convert"
	"github.com/signadot/rmap/format"
	"github.com/signadot/rmap/ir"

	"github.com/scott-cotton/cli"
)

func getObjFile(cc *cli.Context, path string, f format.Format) (*ir.Node, error) {
	var (
		r io.Reader
	)
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		r = file
	} else {
		r = cc.In
	}
	return readNode(r, path, f)
}

func readNode(r io.Reader, path string, f format.Format) (*ir.Node, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return convert.Decode(d, f)
}

// writeNode writes n in the output format, ending rmap and json output
// with a newline.
func writeNode(cfg *MainConfig, w io.Writer, n *ir.Node) error {
	f := cfg.outFormat()
	if f == format.JSONFormat && cfg.Indent > 0 {
		d, err := convert.ToJSONIndent(n, strings.Repeat(" ", cfg.Indent))
		if err != nil {
			return err
		}
		_, err = w.Write(append(d, '\n'))
		return err
	}
	if err := convert.Encode(n, w, f, cfg.encOpts(w)...); err != nil {
		return err
	}
	if f != format.YAMLFormat {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}

// forEachInput calls f for every named file, or for cc.In when there are
// none.
func forEachInput(cfg *MainConfig, cc *cli.Context, files []string, f func(i int, name string, n *ir.Node) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for i, file := range files {
		n, err := getObjFile(cc, file, cfg.inFormatFor(file))
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if err := f(i, file, n); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}
