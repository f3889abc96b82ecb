package fibonacci

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestSignRule_PropertyBased verifies the bidirectional extension
// F(-n) = (-1)^(n+1) * F(n) over randomly drawn representable indices of
// the int64 domain.
func TestSignRule_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	maxIndex := int64(Int64.Len() - 1)

	properties.Property("negative lookup follows the parity rule", prop.ForAll(
		func(n int64) bool {
			pos, ok := Int64.Nth(n)
			if !ok {
				return false
			}
			neg, ok := Int64.Nth(-n)
			if !ok {
				return false
			}
			if n%2 == 0 {
				return neg == -pos
			}
			return neg == pos
		},
		gen.Int64Range(1, maxIndex),
	))

	properties.Property("out of range is symmetric", prop.ForAll(
		func(n int64) bool {
			_, posOK := Int64.Nth(n)
			_, negOK := Int64.Nth(-n)
			return !posOK && !negOK
		},
		gen.Int64Range(maxIndex+1, maxIndex*1000),
	))

	properties.TestingRun(t)
}

// TestDomainsAgreeWithBig_PropertyBased verifies that every fixed-width
// domain is a strict prefix of the arbitrary-precision sequence: wherever a
// width represents an index, its value printed in decimal matches the
// math/big rendering.
func TestDomainsAgreeWithBig_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 150
	properties := gopter.NewProperties(parameters)

	domains := []Enumerator{Int8, Uint8, Int16, Uint16, Int32, Uint32, Int64, Uint64, Int, Uint, Int128, Uint128}

	for _, domain := range domains {
		domain := domain
		length, _ := domain.Length()
		properties.Property(domain.Name()+" agrees with the arbitrary-precision domain", prop.ForAll(
			func(n int64) bool {
				want, ok := Big.NthText(n)
				if !ok {
					return false
				}
				got, ok := domain.NthText(n)
				if !ok {
					return false
				}
				return got == want
			},
			gen.Int64Range(0, int64(length-1)),
		))
	}

	properties.TestingRun(t)
}

// TestRecurrence_PropertyBased verifies table[i] = table[i-1] + table[i-2]
// through the public lookup surface, using the arbitrary-precision domain
// so the addition cannot overflow.
func TestRecurrence_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("F(n) = F(n-1) + F(n-2)", prop.ForAll(
		func(n int64) bool {
			fn, _ := Big.Nth(n)
			fn1, _ := Big.Nth(n - 1)
			fn2, _ := Big.Nth(n - 2)
			sum := fn2.Clone()
			sum.AddAssign(fn1)
			return sum.String() == fn.String()
		},
		gen.Int64Range(2, 500),
	))

	properties.TestingRun(t)
}
