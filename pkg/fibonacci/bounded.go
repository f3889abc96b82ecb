// This file implements the sequence accessor for fixed-width domains: the
// enumerate/lookup contract layered over a lazily built, immutable table.
package fibonacci

import (
	"iter"
	"math"
	"sync"
)

// Bounded is a fixed-width Fibonacci domain. Its table is built exactly once,
// on first use, and shared read-only by every cursor and lookup thereafter;
// no writer exists after construction, so no locking is needed on the read
// paths.
//
// Bounded implements both Sequence[T] and Enumerator.
type Bounded[T any] struct {
	name  string
	arith Arith[T]
	table func() []T
}

// NewBounded creates a fixed-width domain over the given checked-arithmetic
// capability. The table is not built until the first enumeration or lookup.
//
// Parameters:
//   - name: The domain identifier (e.g. "int32").
//   - arith: The domain's checked-arithmetic capability.
//
// Returns:
//   - *Bounded[T]: The domain accessor.
func NewBounded[T any](name string, arith Arith[T]) *Bounded[T] {
	d := &Bounded[T]{name: name, arith: arith}
	d.table = sync.OnceValue(func() []T { return buildTable(name, arith) })
	return d
}

// Name returns the domain identifier.
func (d *Bounded[T]) Name() string { return d.name }

// Signed reports whether the domain accepts negative lookup indices.
func (d *Bounded[T]) Signed() bool { return d.arith.Signed() }

// Finite reports that enumeration terminates. Always true for a bounded
// domain.
func (d *Bounded[T]) Finite() bool { return true }

// Len returns the number of Fibonacci terms representable in this domain,
// i.e. one past the largest valid lookup index.
func (d *Bounded[T]) Len() int { return len(d.table()) }

// Length implements Enumerator.
func (d *Bounded[T]) Length() (int, bool) { return d.Len(), true }

// Values returns the domain's terms in index order, F(0) first. The sequence
// is finite and restartable; ranging over it again starts over at index 0.
func (d *Bounded[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range d.table() {
			if !yield(v) {
				return
			}
		}
	}
}

// Cursor returns a fresh cursor positioned at index 0.
func (d *Bounded[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{table: d.table()}
}

// Nth returns F(n), or ok=false when the index has no representable value in
// this domain.
//
// Negative indices are served from the same positive-only table via the
// bidirectional extension F(-m) = (-1)^(m+1) * F(m): the probe index is -n,
// and the looked-up value is negated when the probe is even. Unsigned
// domains reject every negative index.
func (d *Bounded[T]) Nth(n int64) (T, bool) {
	var zero T
	if n < 0 {
		if !d.arith.Signed() {
			notifyLookupOutOfRange(d.name, n)
			return zero, false
		}
		if n == math.MinInt64 {
			// The probe -n is not representable as an index; no table
			// reaches within 2^62 of that length anyway.
			notifyLookupOutOfRange(d.name, n)
			return zero, false
		}
		m := -n
		v, ok := d.at(m)
		if !ok {
			notifyLookupOutOfRange(d.name, n)
			return zero, false
		}
		if m%2 == 0 {
			return d.arith.Negate(v)
		}
		return v, true
	}
	v, ok := d.at(n)
	if !ok {
		notifyLookupOutOfRange(d.name, n)
		return zero, false
	}
	return v, true
}

// at serves the non-negative lookup path from the table.
func (d *Bounded[T]) at(n int64) (T, bool) {
	table := d.table()
	if n >= int64(len(table)) {
		var zero T
		return zero, false
	}
	return table[n], true
}

// NthText implements Enumerator.
func (d *Bounded[T]) NthText(n int64) (string, bool) {
	v, ok := d.Nth(n)
	if !ok {
		return "", false
	}
	return d.arith.Format(v), true
}

// Terms implements Enumerator.
func (d *Bounded[T]) Terms() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, v := range d.table() {
			if !yield(i, d.arith.Format(v)) {
				return
			}
		}
	}
}
