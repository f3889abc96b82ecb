// This file instantiates the 128-bit bounded domains. Go has no native
// 128-bit integers, so these are built on github.com/shabbyrobe/go-num,
// whose I128 wraps on overflow exactly like int64 and whose U128 wraps like
// uint64. That makes the same sign- and ordering-based overflow tests used
// for the native widths applicable here.
package fibonacci

import num "github.com/shabbyrobe/go-num"

type i128Arith struct{}

func (i128Arith) Zero() num.I128 { return num.I128{} }
func (i128Arith) One() num.I128  { return num.I128From64(1) }

func (i128Arith) CheckedAdd(a, b num.I128) (num.I128, bool) {
	var zero num.I128
	sum := a.Add(b)
	if (b.Cmp(zero) > 0 && sum.Cmp(a) < 0) || (b.Cmp(zero) < 0 && sum.Cmp(a) > 0) {
		return zero, false
	}
	return sum, true
}

func (i128Arith) Negate(v num.I128) (num.I128, bool) {
	var zero num.I128
	neg := v.Neg()
	if v.Cmp(zero) != 0 && neg.Cmp(v) == 0 {
		// The minimum value is its own wrapped negation.
		return zero, false
	}
	return neg, true
}

func (i128Arith) Compare(a, b num.I128) int { return a.Cmp(b) }

func (i128Arith) Signed() bool { return true }

func (i128Arith) Format(v num.I128) string { return v.String() }

type u128Arith struct{}

func (u128Arith) Zero() num.U128 { return num.U128{} }
func (u128Arith) One() num.U128  { return num.U128From64(1) }

func (u128Arith) CheckedAdd(a, b num.U128) (num.U128, bool) {
	sum := a.Add(b)
	if sum.Cmp(a) < 0 {
		return num.U128{}, false
	}
	return sum, true
}

func (u128Arith) Negate(v num.U128) (num.U128, bool) {
	var zero num.U128
	if v.Cmp(zero) == 0 {
		return zero, true
	}
	return zero, false
}

func (u128Arith) Compare(a, b num.U128) int { return a.Cmp(b) }

func (u128Arith) Signed() bool { return false }

func (u128Arith) Format(v num.U128) string { return v.String() }

// The 128-bit fixed-width domains.
var (
	Int128  = NewBounded[num.I128]("int128", i128Arith{})
	Uint128 = NewBounded[num.U128]("uint128", u128Arith{})
)
