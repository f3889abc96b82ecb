// Command generate-golden regenerates the golden Fibonacci reference file
// consumed by the pkg/fibonacci cross-check tests. Values are computed with
// math/big, independently of the table generator under test.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
)

// GoldenTerm represents a single reference value in the golden file.
type GoldenTerm struct {
	Index int    `json:"index"`
	Value string `json:"value"`
}

func main() {
	outputDir := flag.String("out", "pkg/fibonacci/testdata", "Output directory for the golden file")
	limit := flag.Int("limit", 200, "Highest Fibonacci index to include")
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	filename := filepath.Join(*outputDir, "fibonacci_golden.json")
	file, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	// The limit must cover every fixed-width table; the largest (uint128)
	// holds 187 terms, so the default of 200 leaves headroom.
	terms := make([]GoldenTerm, 0, *limit+1)
	a, b := big.NewInt(0), big.NewInt(1)
	for i := 0; i <= *limit; i++ {
		terms = append(terms, GoldenTerm{Index: i, Value: a.String()})
		a.Add(a, b)
		a, b = b, a
	}

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(terms); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing golden data: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d golden terms to %s\n", len(terms), filename)
}
