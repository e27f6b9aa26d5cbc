package convert

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/signadot/rmap/ir"
)

// FromYAML decodes a YAML mapping or scalar into a tree. Mapping keys
// which are not strings use their printed form.
func FromYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ir.ErrMalformedInput, err)
	}
	return FromAny(v)
}

func orderedMap(v any) (yaml.MapSlice, bool) {
	m, ok := v.(yaml.MapSlice)
	return m, ok
}

func fromOrdered(m yaml.MapSlice, path []string) (*ir.Node, error) {
	res := ir.NewMap()
	for _, item := range m {
		k, ok := item.Key.(string)
		if !ok {
			k = fmt.Sprint(item.Key)
		}
		c, err := fromAny(item.Value, append(path, k))
		if err != nil {
			return nil, err
		}
		if err := res.Set(k, c); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func toMapSlice(n *ir.Node) any {
	if n.Type == ir.LeafType {
		return n.Text
	}
	res := make(yaml.MapSlice, 0, n.Size())
	for k, c := range n.Entries() {
		res = append(res, yaml.MapItem{Key: k, Value: toMapSlice(c)})
	}
	return res
}

// ToYAML encodes n as YAML with keys in rmap order.
func ToYAML(n *ir.Node) ([]byte, error) {
	return yaml.Marshal(toMapSlice(n))
}
