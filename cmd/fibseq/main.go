// Command fibseq looks up and enumerates overflow-bounded Fibonacci
// sequences across fixed-width and arbitrary-precision integer domains.
//
// Usage examples:
//
//	fibseq -domain int32 -n 10        # F(10) in int32
//	fibseq -domain int8 -n -10        # bidirectional extension, F(-10)
//	fibseq -domain uint8 -list        # the full finite uint8 sequence
//	fibseq -domain big -count 100     # first 100 arbitrary-precision terms
//	fibseq -tables                    # every fixed-width table length
//	fibseq -serve -port 8080          # HTTP API with /lookup and /sequence
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/agbru/fibseq/internal/app"
	apperrors "github.com/agbru/fibseq/internal/errors"
)

func main() {
	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(apperrors.ExitErrorConfig)
	}

	timeout := application.Config.Timeout
	if application.Config.Serve {
		timeout = 0
	}
	ctx, cancels := app.SetupLifecycle(context.Background(), timeout)
	defer cancels.CancelAll()

	os.Exit(application.Run(ctx, os.Stdout))
}
