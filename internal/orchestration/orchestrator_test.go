package orchestration

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/agbru/fibseq/internal/testutil"
	"github.com/agbru/fibseq/pkg/fibonacci"
)

func TestWarmTablesCoversAllFiniteDomains(t *testing.T) {
	t.Parallel()
	results, err := WarmTables(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	finite := 0
	for _, name := range fibonacci.Names() {
		if enum, ok := fibonacci.Lookup(name); ok && enum.Finite() {
			finite++
		}
	}
	if len(results) != finite {
		t.Fatalf("got %d results, want one per finite domain (%d)", len(results), finite)
	}

	if !sort.SliceIsSorted(results, func(i, j int) bool {
		if results[i].Length != results[j].Length {
			return results[i].Length < results[j].Length
		}
		return results[i].Domain < results[j].Domain
	}) {
		t.Error("results not sorted by length then name")
	}

	byDomain := make(map[string]WarmResult, len(results))
	for _, r := range results {
		byDomain[r.Domain] = r
	}
	cases := []struct {
		domain  string
		length  int
		largest string
	}{
		{"int8", 12, "89"},
		{"uint8", 14, "233"},
		{"int64", 93, "7540113804746346429"},
		{"uint64", 94, "12200160415121876738"},
		{"int128", 185, "127127879743834334146972278486287885163"},
		{"uint128", 187, "332825110087067562321196029789634457848"},
	}
	for _, tc := range cases {
		r, ok := byDomain[tc.domain]
		if !ok {
			t.Errorf("domain %s missing from results", tc.domain)
			continue
		}
		if r.Length != tc.length || r.Largest != tc.largest {
			t.Errorf("%s: got length %d largest %s, want %d %s", tc.domain, r.Length, r.Largest, tc.length, tc.largest)
		}
	}
}

func TestWarmTablesCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := WarmTables(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestReportTables(t *testing.T) {
	t.Parallel()
	var buf strings.Builder
	ReportTables(&buf, []WarmResult{
		{Domain: "int8", Length: 12, Largest: "89"},
		{Domain: "uint8", Length: 14, Largest: "233"},
	})
	plain := testutil.StripAnsiCodes(buf.String())
	for _, want := range []string{"DOMAIN", "int8", "11", "89", "uint8", "13", "233"} {
		if !strings.Contains(plain, want) {
			t.Errorf("report missing %q:\n%s", want, plain)
		}
	}
}
