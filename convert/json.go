package convert

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/signadot/rmap/ir"
)

// FromJSON decodes a JSON object or scalar into a tree.
func FromJSON(d []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %w", ir.ErrMalformedInput, err)
	}
	var extra any
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after JSON value", ir.ErrMalformedInput)
	}
	return FromAny(v)
}

// FromAny converts the result of decoding JSON or YAML into a generic
// value.
func FromAny(v any) (*ir.Node, error) {
	return fromAny(v, nil)
}

func fromAny(v any, path []string) (*ir.Node, error) {
	switch x := v.(type) {
	case map[string]any:
		res := ir.NewMap()
		for k, c := range x {
			cn, err := fromAny(c, append(path, k))
			if err != nil {
				return nil, err
			}
			if err := res.Set(k, cn); err != nil {
				return nil, err
			}
		}
		return res, nil
	case string:
		return ir.NewLeaf(x), nil
	case json.Number:
		return ir.NewLeaf(x.String()), nil
	case bool:
		return ir.NewLeaf(strconv.FormatBool(x)), nil
	case float64:
		return ir.NewLeaf(strconv.FormatFloat(x, 'g', -1, 64)), nil
	case float32:
		return ir.NewLeaf(strconv.FormatFloat(float64(x), 'g', -1, 32)), nil
	case int, int64, uint64, int32, uint32:
		return ir.NewLeaf(fmt.Sprint(x)), nil
	case nil:
		return nil, fmt.Errorf("%w: null at %s", ErrUnsupported, ir.FormatPath(path))
	case []any:
		return nil, fmt.Errorf("%w: array at %s", ErrUnsupported, ir.FormatPath(path))
	default:
		if m, ok := orderedMap(x); ok {
			return fromOrdered(m, path)
		}
		return nil, fmt.Errorf("%w: %T at %s", ErrUnsupported, v, ir.FormatPath(path))
	}
}

// ToAny converts n into nested map[string]any whose leaves are strings.
func ToAny(n *ir.Node) any {
	if n.Type == ir.LeafType {
		return n.Text
	}
	res := make(map[string]any, n.Size())
	for k, c := range n.Entries() {
		res[k] = ToAny(c)
	}
	return res
}

// ToJSON encodes n as JSON. Object keys come out sorted, matching the
// rmap key order.
func ToJSON(n *ir.Node) ([]byte, error) {
	return json.Marshal(ToAny(n))
}

// ToJSONIndent is ToJSON with each level indented by indent.
func ToJSONIndent(n *ir.Node, indent string) ([]byte, error) {
	return json.MarshalIndent(ToAny(n), "", indent)
}
