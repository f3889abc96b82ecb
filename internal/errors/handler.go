package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// ColorProvider defines the interface for obtaining terminal color codes.
// This abstraction breaks the import cycle with cli.
type ColorProvider interface {
	Yellow() string
	Red() string
	Reset() string
}

// DefaultColorProvider provides no color codes (for non-terminal output).
type DefaultColorProvider struct{}

func (d DefaultColorProvider) Yellow() string { return "" }
func (d DefaultColorProvider) Red() string    { return "" }
func (d DefaultColorProvider) Reset() string  { return "" }

// HandleRunError formats and prints an error message for a failed run and
// returns the matching exit code. It distinguishes timeouts, cancellations,
// out-of-range lookups, and configuration errors from generic failures so
// the user gets specific feedback and scripts get stable exit statuses.
//
// Parameters:
//   - err: The error that occurred.
//   - out: The io.Writer to which the error message will be written.
//   - colors: Provider for terminal color codes (can be nil for no colors).
//
// Returns:
//   - int: The appropriate exit code for the error type.
func HandleRunError(err error, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}
	if colors == nil {
		colors = DefaultColorProvider{}
	}

	var rangeErr RangeError
	var configErr ConfigError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(out, "%sStatus: Failure (Timeout).%s The execution limit was reached.\n", colors.Yellow(), colors.Reset())
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "%sStatus: Canceled.%s\n", colors.Yellow(), colors.Reset())
		return ExitErrorCanceled
	case errors.As(err, &rangeErr):
		fmt.Fprintf(out, "%sStatus: Out of range.%s %v\n", colors.Yellow(), colors.Reset(), rangeErr)
		return ExitErrorOutOfRange
	case errors.As(err, &configErr):
		fmt.Fprintf(out, "%sStatus: Configuration error.%s %v\n", colors.Red(), colors.Reset(), configErr)
		return ExitErrorConfig
	}
	fmt.Fprintf(out, "%sStatus: Failure.%s An unexpected error occurred: %v\n", colors.Red(), colors.Reset(), err)
	return ExitErrorGeneric
}
