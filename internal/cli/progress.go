package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"

	"github.com/agbru/fibseq/pkg/fibonacci"
)

const (
	// ProgressRefreshRate defines the refresh frequency of the spinner.
	// 200ms keeps updates cheap while remaining responsive.
	ProgressRefreshRate = 200 * time.Millisecond
)

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This allows the decoupling of CollectTerms from a specific spinner
// implementation, facilitating easier testing. It defines the essential
// controls: starting, stopping, and updating the status message.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// briandownsSpinner adapts github.com/briandowns/spinner to the Spinner
// interface.
type briandownsSpinner struct {
	s *spinner.Spinner
}

func (b *briandownsSpinner) Start()                    { b.s.Start() }
func (b *briandownsSpinner) Stop()                     { b.s.Stop() }
func (b *briandownsSpinner) UpdateSuffix(suffix string) { b.s.Suffix = suffix }

// noopSpinner is used when the output is not a terminal or quiet mode is on.
type noopSpinner struct{}

func (noopSpinner) Start()              {}
func (noopSpinner) Stop()               {}
func (noopSpinner) UpdateSuffix(string) {}

// newSpinner returns a terminal spinner when stderr is a terminal and quiet
// mode is off, a no-op spinner otherwise.
func newSpinner(quiet bool) Spinner {
	if quiet || !term.IsTerminal(int(os.Stderr.Fd())) {
		return noopSpinner{}
	}
	s := spinner.New(spinner.CharSets[14], ProgressRefreshRate, spinner.WithWriter(os.Stderr))
	return &briandownsSpinner{s: s}
}

// CollectTerms drains up to count terms from a domain's enumeration while
// displaying streaming progress. For finite domains a count of zero collects
// the whole sequence; infinite domains require a positive count (enforced by
// the caller's configuration validation plus the default count).
//
// The context bounds the collection: cancellation or deadline expiry aborts
// the stream and returns the context's error alongside the terms collected
// so far.
//
// Parameters:
//   - ctx: The context bounding the collection.
//   - enum: The domain to enumerate.
//   - count: The maximum number of terms to collect (0 = no cap).
//   - quiet: Whether to suppress the progress spinner.
//
// Returns:
//   - []Term: The collected terms, in index order.
//   - error: The context error if the stream was aborted, nil otherwise.
func CollectTerms(ctx context.Context, enum fibonacci.Enumerator, count int, quiet bool) ([]Term, error) {
	capacity := count
	if length, ok := enum.Length(); ok && (count == 0 || length < count) {
		capacity = length
	}
	terms := make([]Term, 0, capacity)

	spin := newSpinner(quiet)
	spin.Start()
	defer spin.Stop()

	var err error
	lastRefresh := time.Now()
	for i, value := range enum.Terms() {
		if count > 0 && i >= count {
			break
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
			break
		}
		terms = append(terms, Term{Index: i, Value: value})
		if now := time.Now(); now.Sub(lastRefresh) >= ProgressRefreshRate {
			spin.UpdateSuffix(fmt.Sprintf(" F(%d), %d digits", i, len(value)))
			lastRefresh = now
		}
	}
	return terms, err
}
