package gomap

import (
	"fmt"
	"reflect"

	"github.com/signadot/rmap"
	"github.com/signadot/rmap/convert"
	"github.com/signadot/rmap/encode"
	"github.com/signadot/rmap/ir"
)

// IRToer is implemented by values which encode themselves.
type IRToer interface {
	ToIR() (*ir.Node, error)
}

var toerTy = reflect.TypeOf((*IRToer)(nil)).Elem()

// Dump returns the canonical text of v.
func Dump(v any) ([]byte, error) {
	node, err := ToIR(v)
	if err != nil {
		return nil, err
	}
	s, err := encode.String(node)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// ToIR converts v, which must be a struct, a map with string keys or a
// pointer to one of these, to a tree.
func ToIR(v any) (*ir.Node, error) {
	node, err := toIR(reflect.ValueOf(v))
	if err != nil {
		return nil, err
	}
	if node == nil || node.Type != ir.MapType {
		return nil, fmt.Errorf("%w: %T does not encode to a map", ir.ErrTypeMismatch, v)
	}
	return node, nil
}

// toIR returns a nil node for nil pointers, maps and interfaces.
func toIR(rv reflect.Value) (*ir.Node, error) {
	if !rv.IsValid() {
		return nil, nil
	}
	if rv.Type().Implements(toerTy) {
		if rv.Kind() == reflect.Pointer && rv.IsNil() {
			return nil, nil
		}
		return rv.Interface().(IRToer).ToIR()
	}
	if rv.Type() == nodeType {
		if rv.IsNil() {
			return nil, nil
		}
		return rv.Interface().(*ir.Node).Clone(), nil
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}
		return toIR(rv.Elem())
	case reflect.Struct:
		res := ir.NewMap()
		for _, f := range fieldOpts(rv.Type()) {
			fv := rv.Field(f.index)
			if f.omitEmpty && fv.IsZero() {
				continue
			}
			child, err := toIR(fv)
			if err != nil {
				return nil, err
			}
			if child == nil {
				continue
			}
			if err := res.Set(f.name, child); err != nil {
				return nil, err
			}
		}
		return res, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: map key type %s", convert.ErrUnsupported, rv.Type().Key())
		}
		if rv.IsNil() {
			return nil, nil
		}
		res := ir.NewMap()
		iter := rv.MapRange()
		for iter.Next() {
			child, err := toIR(iter.Value())
			if err != nil {
				return nil, err
			}
			if child == nil {
				continue
			}
			if err := res.Set(iter.Key().String(), child); err != nil {
				return nil, err
			}
		}
		return res, nil
	}
	s, ok := rmap.FormatValue(rv)
	if !ok {
		return nil, fmt.Errorf("%w: %s", convert.ErrUnsupported, rv.Type())
	}
	return ir.NewLeaf(s), nil
}
