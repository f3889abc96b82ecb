package fibonacci

import (
	"math"
	"math/big"
	"testing"
)

// TestUnboundedPrefix verifies the first terms of the arbitrary-precision
// sequence against the int64 table, which the table tests validate
// independently.
func TestUnboundedPrefix(t *testing.T) {
	t.Parallel()
	c := Big.Cursor()
	for i := int64(0); i < int64(Int64.Len()); i++ {
		want, _ := Int64.Nth(i)
		got := c.Next()
		if got.String() != Int64.arith.Format(want) {
			t.Fatalf("term %d = %s, want %d", i, got, want)
		}
	}
	// The arbitrary-precision sequence continues past every fixed width.
	beyond := c.Next()
	if beyond.Sign() <= 0 {
		t.Errorf("term %d = %s, want a positive value", Int64.Len(), beyond)
	}
}

// TestUnboundedCursorIndependence verifies that advancing a cursor never
// mutates values already handed to the caller, and that cursors share no
// state with each other.
func TestUnboundedCursorIndependence(t *testing.T) {
	t.Parallel()
	c1 := Big.Cursor()
	first := c1.Next()
	c1.Next()
	c1.Next()
	if first.String() != "0" {
		t.Errorf("previously yielded value mutated to %s", first)
	}

	c2 := Big.Cursor()
	if v := c2.Next(); v.String() != "0" {
		t.Errorf("fresh cursor started at %s, want 0", v)
	}
	if c2.Index() != 1 {
		t.Errorf("fresh cursor index = %d after one step", c2.Index())
	}
}

func TestUnboundedNth(t *testing.T) {
	t.Parallel()
	cases := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{2, "1"},
		{10, "55"},
		{-10, "-55"},
		{-9, "34"},
		{-1, "1"},
		{-2, "-1"},
		{100, "354224848179261915075"},
		{-100, "-354224848179261915075"},
		{-101, "573147844013817084101"},
	}
	for _, tc := range cases {
		v, ok := Big.Nth(tc.n)
		if !ok {
			t.Errorf("Nth(%d) unexpectedly rejected", tc.n)
			continue
		}
		if v.String() != tc.want {
			t.Errorf("Nth(%d) = %s, want %s", tc.n, v, tc.want)
		}
	}

	if _, ok := Big.Nth(math.MinInt64); ok {
		t.Error("Nth(MinInt64) should be rejected: its probe is not representable")
	}
}

// TestNthIndex covers the arbitrary-precision index path, including the
// fallible conversion to a host-sized index.
func TestNthIndex(t *testing.T) {
	t.Parallel()
	arith := MathBigArith{}

	idx := func(n int64) BigInt {
		return &mathBigInt{v: big.NewInt(n)}
	}

	if v, ok := Big.NthIndex(idx(10)); !ok || v.String() != "55" {
		t.Errorf("NthIndex(10) = (%v, %v), want (55, true)", v, ok)
	}
	if v, ok := Big.NthIndex(idx(-10)); !ok || v.String() != "-55" {
		t.Errorf("NthIndex(-10) = (%v, %v), want (-55, true)", v, ok)
	}
	if v, ok := Big.NthIndex(arith.Zero()); !ok || v.String() != "0" {
		t.Errorf("NthIndex(0) = (%v, %v), want (0, true)", v, ok)
	}

	// An index beyond the host's addressable range must be rejected, not
	// truncated.
	huge := &mathBigInt{v: new(big.Int).Lsh(big.NewInt(1), 70)}
	if _, ok := Big.NthIndex(huge); ok {
		t.Error("NthIndex(2^70) should be rejected")
	}
	hugeNeg := &mathBigInt{v: new(big.Int).Neg(huge.v)}
	if _, ok := Big.NthIndex(hugeNeg); ok {
		t.Error("NthIndex(-2^70) should be rejected")
	}
}

// TestUnboundedValuesRestartable verifies that each range over Values
// restarts at F(0) with no shared cursor state.
func TestUnboundedValuesRestartable(t *testing.T) {
	t.Parallel()
	seq := Big.Values()
	for range 2 {
		var got []string
		for v := range seq {
			got = append(got, v.String())
			if len(got) == 6 {
				break
			}
		}
		want := []string{"0", "1", "1", "2", "3", "5"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("restarted term %d = %s, want %s", i, got[i], want[i])
			}
		}
	}
}

// TestBigIntCapability exercises the math/big adapter surface directly.
func TestBigIntCapability(t *testing.T) {
	t.Parallel()
	arith := MathBigArith{}

	one := arith.One()
	two := one.Clone()
	two.AddAssign(one)
	if two.String() != "2" || one.String() != "1" {
		t.Errorf("AddAssign leaked into its operand: one=%s two=%s", one, two)
	}

	neg := two.Negated()
	if neg.String() != "-2" || neg.Sign() != -1 {
		t.Errorf("Negated() = %s (sign %d), want -2", neg, neg.Sign())
	}
	if _, ok := neg.Index(); ok {
		t.Error("a negative value must not convert to an index")
	}
	if n, ok := two.Index(); !ok || n != 2 {
		t.Errorf("Index() = (%d, %v), want (2, true)", n, ok)
	}
	if arith.Zero().Sign() != 0 {
		t.Error("Zero() must have sign 0")
	}
}
