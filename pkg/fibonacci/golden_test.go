package fibonacci

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// goldenTerm mirrors the shape written by cmd/generate-golden.
type goldenTerm struct {
	Index int    `json:"index"`
	Value string `json:"value"`
}

func loadGolden(t *testing.T) []goldenTerm {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "fibonacci_golden.json"))
	if err != nil {
		t.Fatalf("reading golden file: %v", err)
	}
	var terms []goldenTerm
	if err := json.Unmarshal(data, &terms); err != nil {
		t.Fatalf("parsing golden file: %v", err)
	}
	if len(terms) < 188 {
		t.Fatalf("golden file holds %d terms; it no longer covers the largest table (run cmd/generate-golden)", len(terms))
	}
	return terms
}

// TestDomainsMatchGolden cross-checks every registered domain against the
// independently generated math/big reference values.
func TestDomainsMatchGolden(t *testing.T) {
	t.Parallel()
	golden := loadGolden(t)

	for _, name := range Names() {
		enum, ok := Lookup(name)
		if !ok {
			t.Fatalf("registered name %q did not resolve", name)
		}
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			limit := len(golden)
			if length, finite := enum.Length(); finite && length < limit {
				limit = length
			}
			for _, g := range golden[:limit] {
				got, ok := enum.NthText(int64(g.Index))
				if !ok {
					t.Fatalf("NthText(%d) rejected an index inside the domain's range", g.Index)
				}
				if got != g.Value {
					t.Errorf("NthText(%d) = %s, want %s", g.Index, got, g.Value)
				}
			}
		})
	}
}
