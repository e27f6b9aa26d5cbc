package eval

import (
	"fmt"
	"os"

	"github.com/signadot/rmap/convert"
	"github.com/signadot/rmap/debug"
	"github.com/signadot/rmap/ir"
	"github.com/signadot/rmap/parse"
	"github.com/signadot/rmap/patch"

	"github.com/goccy/go-json"
)

const (
	EnvEnv = "RMAP_ENV"
)

// LoadEnv reads the rmap document in $RMAP_ENV. It returns a nil Env when
// the variable is unset.
func LoadEnv() (Env, error) {
	envEnv := os.Getenv(EnvEnv)
	if envEnv == "" {
		return nil, nil
	}
	n, err := parse.ParseString(envEnv)
	if err != nil {
		return nil, fmt.Errorf("error decoding env $%s: %w", EnvEnv, err)
	}
	env := NewEnv(n)
	if debug.Eval() {
		debug.Logf("loaded env from $%s: ", EnvEnv)
		debug.LogAny(env)
	}
	return env, nil
}

// MergeEnv merges p over dst as a JSON merge patch. Nested maps merge key
// by key.
func MergeEnv(dst, p Env) (Env, error) {
	if len(p) == 0 {
		return dst, nil
	}
	doc, err := convert.FromAny(map[string]any(dst))
	if err != nil {
		return nil, err
	}
	d, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	merged, err := patch.Merge(doc, d)
	if err != nil {
		return nil, err
	}
	return NewEnv(merged), nil
}

// ExpandWith expands root with the document bound in its environment and
// extra merged over it.
func ExpandWith(root *ir.Node, extra Env) error {
	env, err := MergeEnv(NewEnv(root), extra)
	if err != nil {
		return err
	}
	return ExpandEnv(root, env)
}
