// This file implements the sequence accessor for the arbitrary-precision
// domain. The big-integer arithmetic itself is external: the accessor only
// orchestrates it through the BigInt capability, so math/big and GMP plug in
// interchangeably.
package fibonacci

import (
	"iter"
	"math"
)

// BigInt is the arbitrary-precision integer capability consumed by the
// Unbounded accessor. It is the minimal surface the recurrence needs: clone,
// add-assign, negation, comparison against zero, a fallible conversion to a
// host-sized index, and decimal rendering.
//
// Values produced by one BigArith must not be mixed with values produced by
// another; AddAssign is only defined between values of the same backing
// implementation.
type BigInt interface {
	// Clone returns an independent copy of the value.
	Clone() BigInt

	// AddAssign sets the receiver to receiver + other.
	AddAssign(other BigInt)

	// Negated returns a new value holding the arithmetic negation.
	Negated() BigInt

	// Sign returns -1, 0 or +1 as the value is negative, zero or positive.
	Sign() int

	// Index converts the value to a host-sized sequence index. ok is false
	// when the value is negative or exceeds the host's addressable range.
	Index() (n uint64, ok bool)

	// String renders the value in decimal.
	String() string
}

// BigArith constructs the seed values of a BigInt implementation.
type BigArith interface {
	// Zero returns a fresh value holding 0.
	Zero() BigInt

	// One returns a fresh value holding 1.
	One() BigInt
}

// Unbounded is the arbitrary-precision Fibonacci domain. It owns no table;
// every cursor independently recomputes the sequence through the live
// recurrence, and indexed lookup drives a fresh accumulator pair forward.
//
// Unbounded implements Sequence[BigInt] and Enumerator.
type Unbounded struct {
	name  string
	arith BigArith
}

// NewUnbounded creates an arbitrary-precision domain over the given
// big-integer capability.
func NewUnbounded(name string, arith BigArith) *Unbounded {
	return &Unbounded{name: name, arith: arith}
}

// Name returns the domain identifier.
func (d *Unbounded) Name() string { return d.name }

// Signed reports that the domain accepts negative lookup indices.
func (d *Unbounded) Signed() bool { return true }

// Finite reports that enumeration does not terminate.
func (d *Unbounded) Finite() bool { return false }

// Length implements Enumerator; the sequence has no end, so ok is false.
func (d *Unbounded) Length() (int, bool) { return 0, false }

// Values returns an infinite, restartable sequence of Fibonacci terms
// starting at F(0). Each yielded value is caller-owned; the cursor's live
// accumulators are never exposed. The sequence is bounded only by the
// caller ceasing to advance it.
func (d *Unbounded) Values() iter.Seq[BigInt] {
	return func(yield func(BigInt) bool) {
		c := d.Cursor()
		for yield(c.Next()) {
		}
	}
}

// Cursor returns a fresh cursor positioned at index 0.
func (d *Unbounded) Cursor() *BigCursor {
	return &BigCursor{a: d.arith.Zero(), b: d.arith.One(), aNext: true}
}

// Nth returns F(n). ok is false only for the one signed index whose probe
// cannot be represented (the minimum int64); every other index has a defined
// arbitrary-precision value.
func (d *Unbounded) Nth(n int64) (BigInt, bool) {
	if n < 0 {
		neg, ok := negIndex(n)
		if !ok {
			notifyLookupOutOfRange(d.name, n)
			return nil, false
		}
		v := d.at(neg)
		if neg%2 == 0 {
			v = v.Negated()
		}
		return v, true
	}
	return d.at(uint64(n)), true
}

// NthIndex looks up F(n) for an arbitrary-precision index, mirroring Nth but
// going through the capability's fallible host-index conversion. ok is false
// when the magnitude of n exceeds the host's addressable range.
func (d *Unbounded) NthIndex(n BigInt) (BigInt, bool) {
	if n.Sign() < 0 {
		m, ok := n.Negated().Index()
		if !ok {
			notifyLookupOutOfRange(d.name, 0)
			return nil, false
		}
		v := d.at(m)
		if m%2 == 0 {
			v = v.Negated()
		}
		return v, true
	}
	m, ok := n.Index()
	if !ok {
		notifyLookupOutOfRange(d.name, 0)
		return nil, false
	}
	return d.at(m), true
}

// at computes F(m) by driving the recurrence forward from the seed pair.
func (d *Unbounded) at(m uint64) BigInt {
	a, b := d.arith.Zero(), d.arith.One()
	for i := uint64(0); i < m; i++ {
		a.AddAssign(b)
		a, b = b, a
	}
	return a
}

// NthText implements Enumerator.
func (d *Unbounded) NthText(n int64) (string, bool) {
	v, ok := d.Nth(n)
	if !ok {
		return "", false
	}
	return v.String(), true
}

// Terms implements Enumerator. The sequence is infinite; the caller bounds
// it by stopping the iteration.
func (d *Unbounded) Terms() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		c := d.Cursor()
		for i := 0; ; i++ {
			if !yield(i, c.Next().String()) {
				return
			}
		}
	}
}

// BigCursor is transient iteration state over the arbitrary-precision
// domain: the live accumulator pair plus a parity flag selecting which
// accumulator carries the next term. It is owned by a single caller and is
// never exhausted.
type BigCursor struct {
	a, b  BigInt
	aNext bool
	pos   int
}

// Next returns the next Fibonacci term, starting with F(0). The returned
// value is an independent copy owned by the caller.
func (c *BigCursor) Next() BigInt {
	c.pos++
	if c.aNext {
		c.aNext = false
		out := c.a.Clone()
		c.a.AddAssign(c.b)
		return out
	}
	c.aNext = true
	out := c.b.Clone()
	c.b.AddAssign(c.a)
	return out
}

// Index returns the index of the term the next call to Next will yield.
func (c *BigCursor) Index() int {
	return c.pos
}

// negIndex converts a negative lookup index to its positive probe. ok is
// false for the minimum int64, whose negation does not fit a signed index.
func negIndex(n int64) (uint64, bool) {
	if n == math.MinInt64 {
		return 0, false
	}
	return uint64(-n), true
}
