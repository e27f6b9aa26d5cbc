package debug

import (
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-json"
)

type debug struct {
	Parse bool
	Eval  bool
	Patch bool
	Diff  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("RMAP_DEBUG_PARSE")
	d.Eval = boolEnv("RMAP_DEBUG_EVAL")
	d.Patch = boolEnv("RMAP_DEBUG_PATCH")
	d.Diff = boolEnv("RMAP_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Eval() bool {
	return d.Eval
}
func Patch() bool {
	return d.Patch
}
func Diff() bool {
	return d.Diff
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(append(d, '\n'))
}
