package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/agbru/fibseq/pkg/fibonacci"
)

func TestCollectTermsFullFiniteSequence(t *testing.T) {
	t.Parallel()
	terms, err := CollectTerms(context.Background(), fibonacci.Int8, 0, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"0", "1", "1", "2", "3", "5", "8", "13", "21", "34", "55", "89"}
	if len(terms) != len(want) {
		t.Fatalf("collected %d terms, want %d", len(terms), len(want))
	}
	for i, term := range terms {
		if term.Index != i || term.Value != want[i] {
			t.Errorf("term %d = {%d %s}, want {%d %s}", i, term.Index, term.Value, i, want[i])
		}
	}
}

func TestCollectTermsCapped(t *testing.T) {
	t.Parallel()
	terms, err := CollectTerms(context.Background(), fibonacci.Big, 10, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(terms) != 10 {
		t.Fatalf("collected %d terms, want 10", len(terms))
	}
	if terms[9].Value != "34" {
		t.Errorf("F(9) = %s, want 34", terms[9].Value)
	}
}

func TestCollectTermsCapBeyondFiniteLength(t *testing.T) {
	t.Parallel()
	// A cap larger than the table must stop at the table's end, not error.
	terms, err := CollectTerms(context.Background(), fibonacci.Uint8, 1_000, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(terms) != 14 {
		t.Errorf("collected %d terms, want 14", len(terms))
	}
}

func TestCollectTermsCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	terms, err := CollectTerms(ctx, fibonacci.Big, 100, true)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if len(terms) >= 100 {
		t.Errorf("collection did not abort: got %d terms", len(terms))
	}
}
