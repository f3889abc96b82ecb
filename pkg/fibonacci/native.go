// This file instantiates the bounded domains for Go's native integer widths.
// One generic arithmetic implementation per signedness covers every width;
// no per-width logic is duplicated.
package fibonacci

import "strconv"

// signedInteger is the type set of Go's signed fixed-width integers,
// including the platform word.
type signedInteger interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// unsignedInteger is the type set of Go's unsigned fixed-width integers,
// including the platform word.
type unsignedInteger interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// signedArith implements Arith for any signed native width. Overflow is
// detected from the sign of the wrapped sum: in two's complement, adding a
// positive operand can only overflow downward past the operand, and a
// negative operand upward.
type signedArith[T signedInteger] struct{}

func (signedArith[T]) Zero() T { return 0 }
func (signedArith[T]) One() T  { return 1 }

func (signedArith[T]) CheckedAdd(a, b T) (T, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}

func (signedArith[T]) Negate(v T) (T, bool) {
	neg := -v
	if v != 0 && neg == v {
		// The minimum value is its own wrapped negation.
		return 0, false
	}
	return neg, true
}

func (signedArith[T]) Compare(a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (signedArith[T]) Signed() bool { return true }

func (signedArith[T]) Format(v T) string {
	return strconv.FormatInt(int64(v), 10)
}

// unsignedArith implements Arith for any unsigned native width. A wrapped
// sum is strictly smaller than either operand, so overflow is a single
// comparison.
type unsignedArith[T unsignedInteger] struct{}

func (unsignedArith[T]) Zero() T { return 0 }
func (unsignedArith[T]) One() T  { return 1 }

func (unsignedArith[T]) CheckedAdd(a, b T) (T, bool) {
	sum := a + b
	if sum < a {
		return 0, false
	}
	return sum, true
}

func (unsignedArith[T]) Negate(v T) (T, bool) {
	if v == 0 {
		return 0, true
	}
	return 0, false
}

func (unsignedArith[T]) Compare(a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (unsignedArith[T]) Signed() bool { return false }

func (unsignedArith[T]) Format(v T) string {
	return strconv.FormatUint(uint64(v), 10)
}

// The native fixed-width domains. Each owns exactly one table, built on
// first use and immutable thereafter.
var (
	Int8   = NewBounded[int8]("int8", signedArith[int8]{})
	Int16  = NewBounded[int16]("int16", signedArith[int16]{})
	Int32  = NewBounded[int32]("int32", signedArith[int32]{})
	Int64  = NewBounded[int64]("int64", signedArith[int64]{})
	Int    = NewBounded[int]("int", signedArith[int]{})
	Uint8  = NewBounded[uint8]("uint8", unsignedArith[uint8]{})
	Uint16 = NewBounded[uint16]("uint16", unsignedArith[uint16]{})
	Uint32 = NewBounded[uint32]("uint32", unsignedArith[uint32]{})
	Uint64 = NewBounded[uint64]("uint64", unsignedArith[uint64]{})
	Uint   = NewBounded[uint]("uint", unsignedArith[uint]{})
)
