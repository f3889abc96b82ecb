// Package app wires configuration, domains, and presentation into the
// runnable fibseq application.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/agbru/fibseq/internal/cli"
	"github.com/agbru/fibseq/internal/config"
	apperrors "github.com/agbru/fibseq/internal/errors"
	"github.com/agbru/fibseq/internal/orchestration"
	"github.com/agbru/fibseq/internal/server"
	"github.com/agbru/fibseq/internal/ui"
	"github.com/agbru/fibseq/pkg/fibonacci"
)

// Application represents the fibseq application instance.
// It encapsulates the configuration and provides methods to run the
// application in its various modes (lookup, enumeration, table report).
type Application struct {
	// Config holds the parsed application configuration.
	Config config.AppConfig
	// ErrWriter is the writer for error output (typically os.Stderr).
	ErrWriter io.Writer
}

// New creates a new Application instance by parsing command-line arguments.
// It validates the configuration against the registered domains and returns
// an error if parsing or validation fails.
//
// Parameters:
//   - args: The command-line arguments (typically os.Args).
//   - errWriter: The writer for error output.
//
// Returns:
//   - *Application: A new application instance.
//   - error: An error if configuration parsing or validation fails.
func New(args []string, errWriter io.Writer) (*Application, error) {
	programName := "fibseq"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, fibonacci.Names())
	if err != nil {
		return nil, err
	}

	if cfg.NoColor {
		ui.DisableColors()
	}
	if cfg.Verbose {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: errWriter, TimeFormat: time.Kitchen}).
			With().Timestamp().Logger()
		fibonacci.RegisterObserver(fibonacci.NewLoggingObserver(logger))
	}
	// Observer registration is process-wide; guard against double counting
	// when New is called more than once (tests, REPL-style embedding).
	metricsOnce.Do(func() {
		fibonacci.RegisterObserver(fibonacci.NewMetricsObserver())
	})

	return &Application{
		Config:    cfg,
		ErrWriter: errWriter,
	}, nil
}

// Run executes the application based on the configured mode and returns the
// process exit code.
//
// Parameters:
//   - ctx: The context for managing cancellation and timeouts.
//   - out: The writer for standard output.
//
// Returns:
//   - int: An exit code (0 for success, non-zero for errors).
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	colors := themeColors{}
	err := a.run(ctx, out)
	return apperrors.HandleRunError(err, a.ErrWriter, colors)
}

// run dispatches to the selected mode.
func (a *Application) run(ctx context.Context, out io.Writer) error {
	if a.Config.ShowVersion {
		_, err := fmt.Fprintln(out, "fibseq "+FullVersion())
		return err
	}
	if a.Config.Serve {
		return a.runServe(ctx)
	}
	if a.Config.Tables {
		return a.runTables(ctx, out)
	}

	enum, ok := fibonacci.Lookup(a.Config.Domain)
	if !ok {
		// Validation already checked this; a miss here means the registry
		// changed underneath us.
		return apperrors.NewConfigError("domain %q is not registered", a.Config.Domain)
	}

	if a.Config.Lookup {
		return a.runLookup(out, enum)
	}
	return a.runEnumeration(ctx, out, enum)
}

// runLookup serves a single indexed lookup.
func (a *Application) runLookup(out io.Writer, enum fibonacci.Enumerator) error {
	start := time.Now()
	value, ok := enum.NthText(a.Config.N)
	if !ok {
		return apperrors.NewRangeError(enum.Name(), a.Config.N)
	}
	return cli.PrintLookup(out, enum.Name(), a.Config.N, value, time.Since(start), a.Config.JSONOutput, a.Config.Quiet)
}

// runEnumeration streams the domain's sequence.
func (a *Application) runEnumeration(ctx context.Context, out io.Writer, enum fibonacci.Enumerator) error {
	count := a.Config.Count
	if !enum.Finite() && count == 0 {
		// An uncapped infinite stream would only stop at the timeout;
		// default to a bounded, useful slice instead.
		count = config.DefaultCount
	}

	terms, err := cli.CollectTerms(ctx, enum, count, a.Config.Quiet || a.Config.JSONOutput)
	if err != nil {
		return err
	}
	return cli.PrintEnumeration(out, enum.Name(), terms, a.Config.JSONOutput, a.Config.Quiet)
}

// runServe starts the HTTP API server and blocks until the context is
// canceled.
func (a *Application) runServe(ctx context.Context) error {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: a.ErrWriter, TimeFormat: time.Kitchen}).
		With().Timestamp().Str("component", "server").Logger()
	srv := server.NewServer(":"+a.Config.Port, server.WithLogger(logger))
	return srv.Start(ctx)
}

// runTables materializes all fixed-width tables concurrently and reports
// their lengths.
func (a *Application) runTables(ctx context.Context, out io.Writer) error {
	results, err := orchestration.WarmTables(ctx)
	if err != nil {
		return err
	}
	if a.Config.JSONOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	orchestration.ReportTables(out, results)
	return nil
}

var metricsOnce sync.Once

// themeColors adapts the active UI theme to the apperrors.ColorProvider
// interface.
type themeColors struct{}

func (themeColors) Yellow() string { return ui.GetCurrentTheme().Warning }
func (themeColors) Red() string    { return ui.GetCurrentTheme().Error }
func (themeColors) Reset() string  { return ui.GetCurrentTheme().Reset }
