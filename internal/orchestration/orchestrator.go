// Package orchestration coordinates operations that span multiple domains,
// such as warming every fixed-width Fibonacci table concurrently and
// reporting the results.
package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/fibseq/internal/ui"
	"github.com/agbru/fibseq/pkg/fibonacci"
)

// WarmResult encapsulates the outcome of materializing one domain's table.
type WarmResult struct {
	// Domain is the domain name.
	Domain string
	// Length is the number of representable terms.
	Length int
	// Largest is the decimal rendering of the last representable term.
	Largest string
	// Duration is the time taken to materialize the table. Tables already
	// built by an earlier touch report near-zero durations.
	Duration time.Duration
}

// WarmTables materializes the tables of all finite registered domains
// concurrently. Table construction is pure and independent per domain, so
// the goroutines share nothing; errgroup is used for lifecycle and
// context-cancellation plumbing.
//
// Parameters:
//   - ctx: The context bounding the warm-up.
//
// Returns:
//   - []WarmResult: One entry per finite domain, sorted by table length
//     then name.
//   - error: The context error if the warm-up was aborted.
func WarmTables(ctx context.Context) ([]WarmResult, error) {
	names := fibonacci.Names()
	g, ctx := errgroup.WithContext(ctx)

	results := make([]WarmResult, 0, len(names))
	slots := make([]*WarmResult, len(names))
	for i, name := range names {
		enum, ok := fibonacci.Lookup(name)
		if !ok || !enum.Finite() {
			continue
		}
		i, enum := i, enum
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			length, _ := enum.Length()
			largest, _ := enum.NthText(int64(length - 1))
			slots[i] = &WarmResult{
				Domain:   enum.Name(),
				Length:   length,
				Largest:  largest,
				Duration: time.Since(start),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, r := range slots {
		if r != nil {
			results = append(results, *r)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Length != results[j].Length {
			return results[i].Length < results[j].Length
		}
		return results[i].Domain < results[j].Domain
	})
	return results, nil
}

// ReportTables writes a human-readable table of warm-up results.
//
// Parameters:
//   - out: The destination writer.
//   - results: The warm-up results to report.
func ReportTables(out io.Writer, results []WarmResult) {
	theme := ui.GetCurrentTheme()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%sDOMAIN\tTERMS\tMAX INDEX\tLARGEST TERM%s\n", theme.Bold, theme.Reset)
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", r.Domain, r.Length, r.Length-1, r.Largest)
	}
	w.Flush()
}
