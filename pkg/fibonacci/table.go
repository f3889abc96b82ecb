// This file implements the bounded table generator: the construction of the
// longest representable Fibonacci prefix for a fixed-width domain, driven
// solely by the domain's checked-addition capability.
package fibonacci

import (
	"fmt"
	"time"
)

// buildTable materializes the Fibonacci table for a fixed-width domain.
//
// Starting from the (0, 1) seed pair, terms are appended until the successor
// of the last appended term is no longer representable. The resulting table
// is therefore the longest prefix of the true Fibonacci sequence that fits
// the domain: the final term is representable, its successor is not.
//
// The table is verified before being published (see verifyTable) and the
// construction is reported to registered observers.
//
// Parameters:
//   - name: The domain identifier, used in observer notifications and
//     verification failure messages.
//   - arith: The domain's checked-arithmetic capability.
//
// Returns:
//   - []T: The immutable Fibonacci table, table[0] = 0, table[1] = 1.
func buildTable[T any](name string, arith Arith[T]) []T {
	start := time.Now()

	a, b := arith.Zero(), arith.One()
	table := []T{a}
	for {
		// b is representable by induction: it is either the One seed or a
		// sum CheckedAdd previously accepted.
		table = append(table, b)
		next, ok := arith.CheckedAdd(a, b)
		if !ok {
			break
		}
		if arith.Compare(next, b) < 0 {
			// A true sum never shrinks, so a smaller "sum" means the
			// primitive wrapped instead of reporting overflow. Without this
			// check an always-succeeding CheckedAdd would cycle forever.
			panic(fmt.Sprintf("fibonacci: %s checked addition wrapped at length %d; refusing to build an invalid table", name, len(table)))
		}
		a, b = b, next
	}

	verifyTable(name, arith, table)
	notifyTableBuilt(name, len(table), time.Since(start))
	return table
}

// verifyTable re-checks the recurrence and ordering of a freshly built table.
//
// A checked-add primitive that wraps instead of reporting overflow would
// produce a table whose terms stop growing monotonically, or whose recurrence
// no longer re-validates. Publishing such a table would silently serve wrong
// values process-wide, so a verification failure is treated as an
// unrecoverable defect in the host arithmetic and panics rather than
// returning a plausible-looking table.
func verifyTable[T any](name string, arith Arith[T], table []T) {
	if len(table) < 2 {
		panic(fmt.Sprintf("fibonacci: %s table holds %d terms; the (0, 1) seed pair must always fit", name, len(table)))
	}
	if arith.Compare(table[0], arith.Zero()) != 0 || arith.Compare(table[1], arith.One()) != 0 {
		panic(fmt.Sprintf("fibonacci: %s table has a corrupted seed pair", name))
	}
	for i := 2; i < len(table); i++ {
		sum, ok := arith.CheckedAdd(table[i-2], table[i-1])
		if !ok || arith.Compare(sum, table[i]) != 0 {
			panic(fmt.Sprintf("fibonacci: %s table violates the recurrence at index %d; checked addition is unsound", name, i))
		}
		if arith.Compare(table[i], table[i-1]) < 0 {
			panic(fmt.Sprintf("fibonacci: %s table is not monotonic at index %d; checked addition wrapped", name, i))
		}
	}
}
