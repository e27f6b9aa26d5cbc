package gomap

import (
	"fmt"
	"reflect"

	"github.com/signadot/rmap"
	"github.com/signadot/rmap/convert"
	"github.com/signadot/rmap/ir"
	"github.com/signadot/rmap/parse"
)

// IRFromer is implemented by values which decode themselves.
type IRFromer interface {
	FromIR(*ir.Node) error
}

var (
	nodeType = reflect.TypeOf((*ir.Node)(nil))
	fromerTy = reflect.TypeOf((*IRFromer)(nil)).Elem()
)

// Load parses d as an rmap document and stores it in the value p points
// to.
func Load(d []byte, p any, opts ...parse.ParseOption) error {
	node, err := parse.Parse(d, opts...)
	if err != nil {
		return err
	}
	return FromIR(node, p)
}

// FromIR stores node in the value p points to. Keys without a matching
// field are ignored and fields without a matching key keep their value.
func FromIR(node *ir.Node, p any) error {
	rv := reflect.ValueOf(p)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: FromIR needs a non nil pointer, got %T", ir.ErrTypeMismatch, p)
	}
	return decode(node, rv.Elem())
}

func decode(node *ir.Node, rv reflect.Value) error {
	if rv.CanAddr() && rv.Addr().Type().Implements(fromerTy) {
		return rv.Addr().Interface().(IRFromer).FromIR(node)
	}
	if rv.Type() == nodeType {
		rv.Set(reflect.ValueOf(node.Clone()))
		return nil
	}
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		return decode(node, rv.Elem())
	case reflect.Interface:
		if rv.NumMethod() != 0 {
			return fmt.Errorf("%w: cannot decode into %s", ir.ErrTypeMismatch, rv.Type())
		}
		rv.Set(reflect.ValueOf(convert.ToAny(node)))
		return nil
	case reflect.Struct:
		if node.Type != ir.MapType {
			return fmt.Errorf("%w: %s is a leaf, want a map for %s", ir.ErrTypeMismatch, node.Path(), rv.Type())
		}
		for _, f := range fieldOpts(rv.Type()) {
			child := node.Get(f.name)
			if child == nil {
				continue
			}
			if err := decode(child, rv.Field(f.index)); err != nil {
				return err
			}
		}
		return nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return fmt.Errorf("%w: map key type %s", convert.ErrUnsupported, rv.Type().Key())
		}
		if node.Type != ir.MapType {
			return fmt.Errorf("%w: %s is a leaf, want a map for %s", ir.ErrTypeMismatch, node.Path(), rv.Type())
		}
		if rv.IsNil() {
			rv.Set(reflect.MakeMapWithSize(rv.Type(), node.Size()))
		}
		elemTy := rv.Type().Elem()
		for k, child := range node.Entries() {
			ev := reflect.New(elemTy).Elem()
			if err := decode(child, ev); err != nil {
				return err
			}
			rv.SetMapIndex(reflect.ValueOf(k).Convert(rv.Type().Key()), ev)
		}
		return nil
	case reflect.Slice, reflect.Array:
		return fmt.Errorf("%w: %s at %s", convert.ErrUnsupported, rv.Type(), node.Path())
	}
	if node.Type != ir.LeafType {
		return fmt.Errorf("%w: %s is a map, want a leaf for %s", ir.ErrTypeMismatch, node.Path(), rv.Type())
	}
	if err := rmap.ParseValue(node.Text, rv); err != nil {
		return fmt.Errorf("at %s: %w", node.Path(), err)
	}
	return nil
}
