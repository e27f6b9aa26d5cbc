package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/rmap"
	"github.com/signadot/rmap/ir"

	"github.com/ergochat/readline"
	"github.com/scott-cotton/cli"
)

var completer = readline.NewPrefixCompleter(
	readline.PcItem("help"),
	readline.PcItem("show"),
	readline.PcItem("get"),
	readline.PcItem("set"),
	readline.PcItem("setmap"),
	readline.PcItem("add"),
	readline.PcItem("sub"),
	readline.PcItem("mul"),
	readline.PcItem("div"),
	readline.PcItem("inc"),
	readline.PcItem("dec"),
	readline.PcItem("del"),
	readline.PcItem("eval"),
	readline.PcItem("hash"),
	readline.PcItem("quit"),
	readline.PcItem("exit"),
)

const replHelp = `commands:
  show                  print the document
  get <path>            print the value at path
  set <path> <text>     store text at path
  setmap <path> <rmap>  store a parsed map at path
  add|sub|mul|div <path> <value>
                        combine the leaf at path with value and store it
  inc|dec <path>        add or subtract one
  del <path>            delete the value at path
  eval <expr>           evaluate an expression against the document
  hash                  print the document hash
  quit                  leave, printing the document
`

func repl(cfg *ReplConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Repl.Parse(cc, args)
	if err != nil {
		cfg.Repl.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	doc := rmap.New()
	if len(args) > 1 {
		return fmt.Errorf("%w: repl takes at most one file", cli.ErrUsage)
	}
	if len(args) == 1 {
		doc, err = getObjFile(cc, args[0], cfg.inFormatFor(args[0]))
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", args[0], err)
		}
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "rmap> ",
		HistoryFile:     cfg.History,
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) != 0 {
				continue
			}
			break
		}
		if err != nil {
			break
		}
		err = replExec(cfg, cc.Out, doc, line)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			theLog.Error("repl", "line", line, "error", err)
		}
	}
	return writeNode(cfg.MainConfig, cc.Out, doc)
}

// replExec runs one repl line against doc. It returns io.EOF on quit.
func replExec(cfg *ReplConfig, w io.Writer, doc *ir.Node, line string) error {
	cmd, rest := splitWord(strings.TrimSpace(line))
	switch cmd {
	case "":
		return nil
	case "quit", "exit":
		return io.EOF
	case "help":
		_, err := io.WriteString(w, replHelp)
		return err
	case "show":
		return writeNode(cfg.MainConfig, w, doc)
	case "hash":
		return writeHash(w, "-", doc)
	case "eval":
		return evalNode(&EvalConfig{MainConfig: cfg.MainConfig}, w, doc, rest, nil)
	}
	path, value := splitWord(rest)
	if path == "" {
		return fmt.Errorf("%s: missing path", cmd)
	}
	switch cmd {
	case "get":
		return getPath(&GetConfig{MainConfig: cfg.MainConfig, Text: true}, w, doc, path)
	case "set":
		return setPath(doc, path, value, false)
	case "setmap":
		return setPath(doc, path, value, true)
	case "del":
		keys, err := ir.ParsePath(path)
		if err != nil {
			return err
		}
		if len(keys) == 0 {
			return fmt.Errorf("%w: cannot delete the root", ir.ErrBadPath)
		}
		a, err := slot(doc, keys)
		if err != nil {
			return err
		}
		_, err = a.Delete()
		return err
	case "add", "sub", "mul", "div", "inc", "dec":
		keys, err := ir.ParsePath(path)
		if err != nil {
			return err
		}
		if len(keys) == 0 {
			return fmt.Errorf("%w: cannot assign to the root", ir.ErrBadPath)
		}
		a, err := slot(doc, keys)
		if err != nil {
			return err
		}
		res, err := arith(a, cmd, value)
		if err != nil {
			return err
		}
		return writeText(w, res)
	}
	return fmt.Errorf("unknown command %q, try help", cmd)
}

// arith applies op to the slot. The operand picks the arithmetic: integer
// text gives integer arithmetic, other numbers give floating point, and
// anything else is appended to the leaf text by add.
func arith(a rmap.Accessor, op, operand string) (string, error) {
	switch op {
	case "inc":
		v, err := rmap.Inc[int64](a)
		return rmap.ToText(v), err
	case "dec":
		v, err := rmap.Dec[int64](a)
		return rmap.ToText(v), err
	}
	if i, err := strconv.ParseInt(operand, 10, 64); err == nil {
		return numOp(a, op, i)
	}
	if f, err := strconv.ParseFloat(operand, 64); err == nil {
		return numOp(a, op, f)
	}
	if op != "add" {
		return "", fmt.Errorf("%w: %s needs a number, got %q", ir.ErrConversion, op, operand)
	}
	return rmap.AddAssign(a, operand)
}

func numOp[T int64 | float64](a rmap.Accessor, op string, v T) (string, error) {
	var (
		res T
		err error
	)
	switch op {
	case "add":
		res, err = rmap.AddAssign(a, v)
	case "sub":
		res, err = rmap.SubAssign(a, v)
	case "mul":
		res, err = rmap.MulAssign(a, v)
	case "div":
		res, err = rmap.DivAssign(a, v)
	}
	if err != nil {
		return "", err
	}
	return rmap.ToText(res), nil
}

func splitWord(s string) (string, string) {
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i+1:])
}
