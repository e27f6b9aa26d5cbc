package debug

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/rmap/encode"
	"github.com/signadot/rmap/ir"
)

type RMap struct{ *ir.Node }

func (y RMap) String() string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(y.Node, buf); err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", y.Node)
	}
	return buf.String()
}

// Logf writes to stderr, rendering *ir.Node arguments in rmap text.
func Logf(msg string, args ...any) {
	for i := range args {
		if x, ok := args[i].(*ir.Node); ok && x != nil {
			args[i] = RMap{x}.String()
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
