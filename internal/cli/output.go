// The cli package provides functions for building the command-line interface
// of the fibseq application. It handles the presentation of lookups and
// enumerations and the asynchronous display of streaming progress.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/agbru/fibseq/internal/ui"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds
// for durations less than a second, and the default string representation
// otherwise. This approach provides a more human-readable output for short
// durations.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// LookupResult is the JSON shape of a single indexed lookup.
type LookupResult struct {
	Domain   string `json:"domain"`
	Index    int64  `json:"index"`
	Value    string `json:"value"`
	Duration string `json:"duration"`
}

// PrintLookup renders a successful lookup. In quiet mode only the value is
// emitted; in JSON mode the full LookupResult is marshalled.
//
// Parameters:
//   - out: The destination writer.
//   - domain: The domain name the lookup ran against.
//   - n: The requested index.
//   - value: The decimal rendering of F(n).
//   - elapsed: The lookup duration.
//   - jsonOut: Whether to emit JSON.
//   - quiet: Whether to emit only the bare value.
//
// Returns:
//   - error: An error if writing or marshalling fails.
func PrintLookup(out io.Writer, domain string, n int64, value string, elapsed time.Duration, jsonOut, quiet bool) error {
	if jsonOut {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(LookupResult{
			Domain:   domain,
			Index:    n,
			Value:    value,
			Duration: elapsed.String(),
		})
	}
	if quiet {
		_, err := fmt.Fprintln(out, value)
		return err
	}
	theme := ui.GetCurrentTheme()
	_, err := fmt.Fprintf(out, "%sF(%d)%s [%s] = %s%s%s  (%s)\n",
		theme.Bold, n, theme.Reset,
		domain,
		theme.Success, value, theme.Reset,
		FormatExecutionDuration(elapsed))
	return err
}

// Term is the JSON shape of one enumerated term.
type Term struct {
	Index int    `json:"index"`
	Value string `json:"value"`
}

// EnumerationResult is the JSON shape of an enumeration run.
type EnumerationResult struct {
	Domain string `json:"domain"`
	Count  int    `json:"count"`
	Terms  []Term `json:"terms"`
}

// PrintEnumeration renders collected terms. In quiet mode one bare value per
// line; otherwise indexed lines, or the JSON EnumerationResult.
func PrintEnumeration(out io.Writer, domain string, terms []Term, jsonOut, quiet bool) error {
	if jsonOut {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(EnumerationResult{Domain: domain, Count: len(terms), Terms: terms})
	}
	theme := ui.GetCurrentTheme()
	for _, t := range terms {
		if quiet {
			if _, err := fmt.Fprintln(out, t.Value); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(out, "%sF(%d)%s = %s\n", theme.Secondary, t.Index, theme.Reset, t.Value); err != nil {
			return err
		}
	}
	return nil
}
