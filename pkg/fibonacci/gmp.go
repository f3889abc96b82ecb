//go:build gmp

// This file provides a GMP backing for the arbitrary-precision domain,
// conditionally compiled with the "gmp" build tag. The build tag
// architecture ensures that:
//   - The module builds without GMP by default, using math/big
//   - GMP support is opt-in, requiring: go build -tags=gmp
//   - The codebase remains portable across systems without libgmp installed
//
// System requirements for GMP:
//   - Linux: sudo apt-get install libgmp-dev (Debian/Ubuntu)
//   - macOS: brew install gmp
//   - Windows: requires MinGW or WSL with libgmp

package fibonacci

import "github.com/ncw/gmp"

func init() {
	Register(BigGMP)
}

// GMPArith backs BigInt values with GMP's assembly-optimized arithmetic via
// github.com/ncw/gmp. For the additions this domain performs, GMP only pays
// off on very deep enumerations; it is offered for parity with environments
// that standardize on libgmp.
type GMPArith struct{}

// Zero returns a fresh GMP-backed 0.
func (GMPArith) Zero() BigInt { return &gmpInt{v: new(gmp.Int)} }

// One returns a fresh GMP-backed 1.
func (GMPArith) One() BigInt { return &gmpInt{v: gmp.NewInt(1)} }

// gmpInt adapts *gmp.Int to the BigInt capability.
type gmpInt struct {
	v *gmp.Int
}

func (x *gmpInt) Clone() BigInt {
	return &gmpInt{v: new(gmp.Int).Set(x.v)}
}

func (x *gmpInt) AddAssign(other BigInt) {
	x.v.Add(x.v, other.(*gmpInt).v)
}

func (x *gmpInt) Negated() BigInt {
	return &gmpInt{v: new(gmp.Int).Neg(x.v)}
}

func (x *gmpInt) Sign() int { return x.v.Sign() }

func (x *gmpInt) Index() (uint64, bool) {
	if x.v.Sign() < 0 || x.v.BitLen() > 63 {
		return 0, false
	}
	return uint64(x.v.Int64()), true
}

func (x *gmpInt) String() string { return x.v.String() }

// BigGMP is the arbitrary-precision domain backed by GMP. It is registered
// alongside the default math/big domain when the gmp tag is enabled.
var BigGMP = NewUnbounded("big-gmp", GMPArith{})
