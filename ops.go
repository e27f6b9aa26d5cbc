package rmap

import (
	"golang.org/x/exp/constraints"
)

// The operators below read the slot as the type of their operand, apply
// the Go operator, and for the Assign forms store the result back. The
// operand type selects the behaviour: on a leaf "50", Add(a, 50) is 100
// while Add(a, "50") is "5050".

func Add[T Addable](a Accessor, v T) (T, error) {
	x, err := Read[T](a)
	if err != nil {
		return x, err
	}
	return x + v, nil
}

func Sub[T Number](a Accessor, v T) (T, error) {
	x, err := Read[T](a)
	if err != nil {
		return x, err
	}
	return x - v, nil
}

func Mul[T Number](a Accessor, v T) (T, error) {
	x, err := Read[T](a)
	if err != nil {
		return x, err
	}
	return x * v, nil
}

// Div fails with ErrDivideByZero for an integer zero divisor. Float
// division by zero follows IEEE 754.
func Div[T Number](a Accessor, v T) (T, error) {
	x, err := Read[T](a)
	if err != nil {
		return x, err
	}
	if v == 0 && isInteger[T]() {
		var zero T
		return zero, ErrDivideByZero
	}
	return x / v, nil
}

func Rem[T constraints.Integer](a Accessor, v T) (T, error) {
	x, err := Read[T](a)
	if err != nil {
		return x, err
	}
	if v == 0 {
		var zero T
		return zero, ErrDivideByZero
	}
	return x % v, nil
}

func And[T constraints.Integer](a Accessor, v T) (T, error) {
	return intOp(a, v, func(x, y T) T { return x & y })
}

func Or[T constraints.Integer](a Accessor, v T) (T, error) {
	return intOp(a, v, func(x, y T) T { return x | y })
}

func Xor[T constraints.Integer](a Accessor, v T) (T, error) {
	return intOp(a, v, func(x, y T) T { return x ^ y })
}

func AndNot[T constraints.Integer](a Accessor, v T) (T, error) {
	return intOp(a, v, func(x, y T) T { return x &^ y })
}

func Shl[T constraints.Integer](a Accessor, n uint) (T, error) {
	x, err := Read[T](a)
	if err != nil {
		return x, err
	}
	return x << n, nil
}

func Shr[T constraints.Integer](a Accessor, n uint) (T, error) {
	x, err := Read[T](a)
	if err != nil {
		return x, err
	}
	return x >> n, nil
}

func intOp[T constraints.Integer](a Accessor, v T, f func(x, y T) T) (T, error) {
	x, err := Read[T](a)
	if err != nil {
		return x, err
	}
	return f(x, v), nil
}

// store assigns the result of a binary operator, passing errors through.
func store[T Scalar](a Accessor, v T, err error) (T, error) {
	if err != nil {
		var zero T
		return zero, err
	}
	return Assign(a, v)
}

func AddAssign[T Addable](a Accessor, v T) (T, error) {
	r, err := Add(a, v)
	return store(a, r, err)
}

func SubAssign[T Number](a Accessor, v T) (T, error) {
	r, err := Sub(a, v)
	return store(a, r, err)
}

func MulAssign[T Number](a Accessor, v T) (T, error) {
	r, err := Mul(a, v)
	return store(a, r, err)
}

func DivAssign[T Number](a Accessor, v T) (T, error) {
	r, err := Div(a, v)
	return store(a, r, err)
}

func RemAssign[T constraints.Integer](a Accessor, v T) (T, error) {
	r, err := Rem(a, v)
	return store(a, r, err)
}

func AndAssign[T constraints.Integer](a Accessor, v T) (T, error) {
	r, err := And(a, v)
	return store(a, r, err)
}

func OrAssign[T constraints.Integer](a Accessor, v T) (T, error) {
	r, err := Or(a, v)
	return store(a, r, err)
}

func XorAssign[T constraints.Integer](a Accessor, v T) (T, error) {
	r, err := Xor(a, v)
	return store(a, r, err)
}

func ShlAssign[T constraints.Integer](a Accessor, n uint) (T, error) {
	r, err := Shl[T](a, n)
	return store(a, r, err)
}

func ShrAssign[T constraints.Integer](a Accessor, n uint) (T, error) {
	r, err := Shr[T](a, n)
	return store(a, r, err)
}

// Inc adds one to the slot and returns the new value.
func Inc[T Number](a Accessor) (T, error) {
	return AddAssign(a, T(1))
}

// Dec subtracts one from the slot and returns the new value.
func Dec[T Number](a Accessor) (T, error) {
	return SubAssign(a, T(1))
}

func Neg(a Accessor) (float64, error) {
	x, err := a.Float()
	return -x, err
}

func Pos(a Accessor) (float64, error) {
	return a.Float()
}

func Complement(a Accessor) (int64, error) {
	x, err := a.Int()
	return ^x, err
}

// Not reports whether the slot reads as the number zero.
func Not(a Accessor) (bool, error) {
	x, err := a.Float()
	if err != nil {
		return false, err
	}
	return x == 0, nil
}

func Eq[T Scalar](a Accessor, v T) (bool, error) {
	x, err := Read[T](a)
	if err != nil {
		return false, err
	}
	return x == v, nil
}

func Ne[T Scalar](a Accessor, v T) (bool, error) {
	eq, err := Eq(a, v)
	return !eq && err == nil, err
}

func Lt[T constraints.Ordered](a Accessor, v T) (bool, error) {
	return cmpOp(a, v, func(x, y T) bool { return x < y })
}

func Le[T constraints.Ordered](a Accessor, v T) (bool, error) {
	return cmpOp(a, v, func(x, y T) bool { return x <= y })
}

func Gt[T constraints.Ordered](a Accessor, v T) (bool, error) {
	return cmpOp(a, v, func(x, y T) bool { return x > y })
}

func Ge[T constraints.Ordered](a Accessor, v T) (bool, error) {
	return cmpOp(a, v, func(x, y T) bool { return x >= y })
}

func cmpOp[T constraints.Ordered](a Accessor, v T, f func(x, y T) bool) (bool, error) {
	x, err := Read[T](a)
	if err != nil {
		return false, err
	}
	return f(x, v), nil
}
