// Package fibonacci provides overflow-bounded Fibonacci sequences over a
// family of integer domains: every fixed-width Go integer type (8 through
// 128 bits, signed and unsigned, plus the platform word), and an unbounded
// arbitrary-precision domain.
//
// For each fixed-width domain the package materializes, exactly once, the
// longest prefix of the Fibonacci sequence whose every term is representable
// in that domain. The prefix is derived purely from a checked-addition
// capability, never from transcribed numeric literals, so its length is exact
// by construction. Enumeration and indexed lookup are guaranteed to agree
// term for term.
//
// Indexed lookup accepts negative indices on signed domains via the standard
// bidirectional extension F(-n) = (-1)^(n+1) * F(n). An index outside the
// representable range yields an explicit absent result, never a wrapped
// value and never a panic.
package fibonacci

import "iter"

// Sequence is the uniform enumerate/lookup contract exposed by every domain.
// Calling code can be generic over the element type T while treating bounded
// and unbounded domains identically.
type Sequence[T any] interface {
	// Name returns the domain identifier (e.g. "int32", "big").
	Name() string

	// Values returns a restartable sequence of Fibonacci terms starting at
	// F(0). The sequence is finite for fixed-width domains and infinite for
	// the arbitrary-precision domain; each call starts over from index 0.
	Values() iter.Seq[T]

	// Nth returns F(n), or ok=false when no representable value exists for
	// that index in this domain. Negative indices follow the bidirectional
	// extension on signed domains and are rejected on unsigned ones.
	Nth(n int64) (T, bool)
}

// Arith describes the checked-arithmetic capability a fixed-width domain is
// built from. The table generator consumes exactly this surface: zero and
// one seeds, an addition that reports unrepresentable sums instead of
// wrapping, plus ordering and negation for verification and the
// negative-index path.
type Arith[T any] interface {
	// Zero returns the additive identity of the domain.
	Zero() T

	// One returns the multiplicative identity of the domain.
	One() T

	// CheckedAdd returns a+b and reports whether the exact sum is
	// representable. When ok is false the returned value is unspecified
	// and must not be used.
	CheckedAdd(a, b T) (v T, ok bool)

	// Negate returns -v. ok is false on unsigned domains for any nonzero v,
	// and on signed domains for the minimum value (whose negation does not
	// fit). Every positive Fibonacci table value negates cleanly in two's
	// complement, so the lookup path never observes ok=false for in-range
	// probes on signed domains.
	Negate(v T) (neg T, ok bool)

	// Compare returns -1, 0 or +1 as a is less than, equal to, or greater
	// than b.
	Compare(a, b T) int

	// Signed reports whether the domain admits negative values.
	Signed() bool

	// Format renders v in decimal.
	Format(v T) string
}

// Enumerator is the type-erased view of a domain used by callers that
// dispatch on domain names rather than element types (the CLI, the
// registry). Every domain in this package implements it alongside its
// typed Sequence contract.
type Enumerator interface {
	// Name returns the domain identifier.
	Name() string

	// Signed reports whether the domain accepts negative lookup indices.
	Signed() bool

	// Finite reports whether enumeration terminates.
	Finite() bool

	// Length returns the number of representable terms. ok is false for
	// the arbitrary-precision domain, whose sequence has no end.
	Length() (n int, ok bool)

	// NthText returns F(n) rendered in decimal, or ok=false when the index
	// has no representable value in this domain.
	NthText(n int64) (s string, ok bool)

	// Terms returns a restartable (index, decimal value) sequence starting
	// at index 0.
	Terms() iter.Seq2[int, string]
}
