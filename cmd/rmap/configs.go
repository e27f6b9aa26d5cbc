package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/rmap/encode"
	"github.com/signadot/rmap/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Indent int  `cli:"name=indent desc='pretty print rmap output with this many spaces per level'"`

	R bool `cli:"name=r aliases=rmap desc='do i/o in rmap'"`
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) flagFormat() format.Format {
	switch {
	case cfg.J:
		return format.JSONFormat
	case cfg.Y:
		return format.YAMLFormat
	}
	return format.RMapFormat
}

func (cfg *MainConfig) inFormat() format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	return cfg.flagFormat()
}

// inFormatFor is inFormat, except that without any format flag a named
// file's extension picks the format.
func (cfg *MainConfig) inFormatFor(path string) format.Format {
	if cfg.InFormat != nil || count(cfg.R, cfg.J, cfg.Y) != 0 || path == "-" {
		return cfg.inFormat()
	}
	return format.FromPath(path)
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return cfg.flagFormat()
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodePretty(cfg.Indent),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			colorsSet = opt.Value != nil
			break
		}
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type GetConfig struct {
	*MainConfig
	Text bool `cli:"name=t desc='print leaf text unquoted'"`

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig
	Map bool `cli:"name=m desc='parse the value as an rmap document'"`

	Set *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Tree    bool `cli:"name=tree desc='print the diff as an rmap document'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=merge desc='patch is a JSON merge patch'"`
	Diff  bool `cli:"name=diff desc='patch is a diff written by diff -tree'"`

	Patch *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Expand bool `cli:"name=x desc='expand expressions in leaves instead of evaluating an expression'"`

	Eval *cli.Command
}

type ConvertConfig struct {
	*MainConfig
	Convert *cli.Command
}

type EqConfig struct {
	*MainConfig
	Eq *cli.Command
}

type HashConfig struct {
	*MainConfig
	Hash *cli.Command
}

type ReplConfig struct {
	*MainConfig
	History string `cli:"name=history desc='history file'"`

	Repl *cli.Command
}
