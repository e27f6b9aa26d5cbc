package rmap

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/signadot/rmap/ir"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of types which have a canonical text form.
type Scalar interface {
	constraints.Integer | constraints.Float | ~string | ~bool
}

// Number is the set of types arithmetic operators read leaves as.
type Number interface {
	constraints.Integer | constraints.Float
}

// Addable is Number plus strings, for which Add concatenates.
type Addable interface {
	Number | ~string
}

// ToText returns the canonical text of v: base 10 for integers, the
// shortest representation that round trips for floats, "true" or
// "false" for bools, and strings unchanged.
func ToText[T Scalar](v T) string {
	s, ok := FormatValue(reflect.ValueOf(v))
	if !ok {
		panic(fmt.Sprintf("rmap: no text form for %T", v))
	}
	return s
}

// FormatValue is ToText for a reflect.Value. It reports false when the
// kind of rv has no text form.
func FormatValue(rv reflect.Value) (string, bool) {
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64), true
	}
	return "", false
}

// FromText parses canonical text into a T. Integers must be plain base 10
// without surrounding space; bools accept whatever strconv.ParseBool
// accepts. Failures wrap ir.ErrConversion.
func FromText[T Scalar](s string) (T, error) {
	var res T
	if err := ParseValue(s, reflect.ValueOf(&res).Elem()); err != nil {
		var zero T
		return zero, err
	}
	return res, nil
}

// ParseValue is FromText into the settable rv. Kinds without a text form
// fail with ir.ErrTypeMismatch.
func ParseValue(s string, rv reflect.Value) error {
	var err error
	switch rv.Kind() {
	case reflect.String:
		rv.SetString(s)
	case reflect.Bool:
		var b bool
		b, err = strconv.ParseBool(s)
		rv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var i int64
		i, err = strconv.ParseInt(s, 10, rv.Type().Bits())
		rv.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		var u uint64
		u, err = strconv.ParseUint(s, 10, rv.Type().Bits())
		rv.SetUint(u)
	case reflect.Float32, reflect.Float64:
		var f float64
		f, err = strconv.ParseFloat(s, rv.Type().Bits())
		rv.SetFloat(f)
	default:
		return fmt.Errorf("%w: no text form for %s", ir.ErrTypeMismatch, rv.Type())
	}
	if err != nil {
		return fmt.Errorf("%w: %q as %s: %w", ir.ErrConversion, s, rv.Type(), err)
	}
	return nil
}

func isInteger[T Number]() bool {
	var zero T
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Float32, reflect.Float64:
		return false
	}
	return true
}
