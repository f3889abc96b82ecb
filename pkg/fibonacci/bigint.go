// This file provides the default math/big backing for the
// arbitrary-precision domain. A GMP backing is available behind the "gmp"
// build tag (see gmp.go).
package fibonacci

import "math/big"

// MathBigArith backs BigInt values with the standard library's math/big.
// It is the default arithmetic for the Big domain.
type MathBigArith struct{}

// Zero returns a fresh math/big-backed 0.
func (MathBigArith) Zero() BigInt { return &mathBigInt{v: new(big.Int)} }

// One returns a fresh math/big-backed 1.
func (MathBigArith) One() BigInt { return &mathBigInt{v: big.NewInt(1)} }

// mathBigInt adapts *big.Int to the BigInt capability.
type mathBigInt struct {
	v *big.Int
}

func (x *mathBigInt) Clone() BigInt {
	return &mathBigInt{v: new(big.Int).Set(x.v)}
}

func (x *mathBigInt) AddAssign(other BigInt) {
	x.v.Add(x.v, other.(*mathBigInt).v)
}

func (x *mathBigInt) Negated() BigInt {
	return &mathBigInt{v: new(big.Int).Neg(x.v)}
}

func (x *mathBigInt) Sign() int { return x.v.Sign() }

func (x *mathBigInt) Index() (uint64, bool) {
	if x.v.Sign() < 0 || !x.v.IsUint64() {
		return 0, false
	}
	return x.v.Uint64(), true
}

func (x *mathBigInt) String() string { return x.v.String() }

// Big is the arbitrary-precision domain backed by math/big.
var Big = NewUnbounded("big", MathBigArith{})
