package convert

import (
	"fmt"
	"io"

	"github.com/signadot/rmap/encode"
	"github.com/signadot/rmap/format"
	"github.com/signadot/rmap/ir"
	"github.com/signadot/rmap/parse"
)

// Decode reads d in format f.
func Decode(d []byte, f format.Format) (*ir.Node, error) {
	switch f {
	case format.RMapFormat:
		return parse.ParseValue(d)
	case format.JSONFormat:
		return FromJSON(d)
	case format.YAMLFormat:
		return FromYAML(d)
	default:
		return nil, fmt.Errorf("%w: %s", format.ErrBadFormat, f)
	}
}

// Encode writes n to w in format f. opts apply to the rmap format only.
func Encode(n *ir.Node, w io.Writer, f format.Format, opts ...encode.EncodeOption) error {
	var (
		d   []byte
		err error
	)
	switch f {
	case format.RMapFormat:
		return encode.Encode(n, w, opts...)
	case format.JSONFormat:
		d, err = ToJSON(n)
	case format.YAMLFormat:
		d, err = ToYAML(n)
	default:
		return fmt.Errorf("%w: %s", format.ErrBadFormat, f)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}
