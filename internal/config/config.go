// Package config provides the configuration management for the fibseq
// application. It defines the data structure for the configuration, handles
// the parsing of command-line arguments, and performs validation on the
// configuration values.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/agbru/fibseq/internal/errors"
)

const (
	// EnvPrefix is the prefix for all environment variables used by fibseq.
	// Environment variables provide an alternative to CLI flags for
	// configuration, following the 12-Factor App methodology.
	EnvPrefix = "FIBSEQ_"
)

// Default configuration values.
// These can be overridden via command-line flags or environment variables.
const (
	// DefaultDomain is the domain used when none is selected.
	DefaultDomain = "int64"
	// DefaultCount is the default number of terms streamed from the
	// arbitrary-precision domain when no explicit count is given.
	DefaultCount = 50
	// DefaultTimeout bounds long enumerations of the arbitrary-precision
	// domain. Fixed-width operations complete in microseconds regardless.
	DefaultTimeout = 1 * time.Minute
	// DefaultPort is the HTTP listen port used in server mode.
	DefaultPort = "8080"
)

// AppConfig aggregates the application's configuration parameters, parsed
// from command-line flags and environment variables.
type AppConfig struct {
	// Domain is the name of the integer domain to operate on
	// (e.g. "int8", "uint64", "int128", "big").
	Domain string
	// N is the Fibonacci index to look up. Negative indices follow the
	// bidirectional extension on signed domains.
	N int64
	// Lookup is true when an index was supplied via -n; it distinguishes
	// "look up F(0)" from "no index given".
	Lookup bool
	// List, if true, enumerates the domain's full finite sequence.
	List bool
	// Count is the number of terms to stream from an infinite domain, or a
	// cap applied to -list output. Zero means the domain's full length.
	Count int
	// Tables, if true, builds every fixed-width table and reports their
	// lengths instead of running a lookup or enumeration.
	Tables bool
	// JSONOutput, if true, outputs results in JSON format.
	JSONOutput bool
	// Quiet suppresses progress display and informational banners,
	// leaving only the requested values. Intended for scripting.
	Quiet bool
	// NoColor disables all color output in the CLI.
	// Also respects the NO_COLOR environment variable.
	NoColor bool
	// Verbose enables diagnostic logging of table construction.
	Verbose bool
	// ShowVersion, if true, prints the version and exits.
	ShowVersion bool
	// Serve, if true, starts the HTTP API server instead of running a
	// one-shot lookup or enumeration.
	Serve bool
	// Port is the HTTP listen port used when Serve is set.
	Port string
	// Timeout bounds the total run time of streaming enumerations.
	Timeout time.Duration
}

// ParseConfig parses the command-line arguments and environment into an
// AppConfig. Environment variables (FIBSEQ_DOMAIN, FIBSEQ_TIMEOUT, ...)
// supply defaults which explicit flags override.
//
// Parameters:
//   - programName: The name used in usage output (typically os.Args[0]).
//   - args: The command-line arguments, excluding the program name.
//   - errWriter: The writer for flag-parsing error output.
//   - availableDomains: The registered domain names, used for validation
//     and usage text.
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: A ConfigError if parsing or validation fails.
func ParseConfig(programName string, args []string, errWriter io.Writer, availableDomains []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	cfg := AppConfig{}
	fs.StringVar(&cfg.Domain, "domain", getEnvString("DOMAIN", DefaultDomain),
		fmt.Sprintf("integer domain to operate on (one of: %s)", strings.Join(availableDomains, ", ")))
	fs.Int64Var(&cfg.N, "n", 0, "Fibonacci index to look up (may be negative on signed domains)")
	fs.BoolVar(&cfg.List, "list", getEnvBool("LIST", false), "enumerate the domain's sequence instead of looking up a single index")
	fs.IntVar(&cfg.Count, "count", getEnvInt("COUNT", 0), "number of terms to enumerate (0 = full finite sequence)")
	fs.BoolVar(&cfg.Tables, "tables", false, "build every fixed-width table and report lengths")
	fs.BoolVar(&cfg.JSONOutput, "json", getEnvBool("JSON", false), "output results as JSON")
	fs.BoolVar(&cfg.Quiet, "quiet", getEnvBool("QUIET", false), "suppress progress and banners")
	fs.BoolVar(&cfg.NoColor, "no-color", getEnvBool("NO_COLOR", false), "disable colored output")
	fs.BoolVar(&cfg.Verbose, "verbose", getEnvBool("VERBOSE", false), "log table construction diagnostics")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "print the version and exit")
	fs.BoolVar(&cfg.Serve, "serve", getEnvBool("SERVE", false), "start the HTTP API server")
	fs.StringVar(&cfg.Port, "port", getEnvString("PORT", DefaultPort), "HTTP listen port for server mode")
	fs.DurationVar(&cfg.Timeout, "timeout", getEnvDuration("TIMEOUT", DefaultTimeout), "maximum run time for streaming enumerations")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, apperrors.NewConfigError("invalid arguments: %v", err)
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected positional arguments: %s", strings.Join(fs.Args(), " "))
	}

	// Distinguish an explicit -n 0 from an absent -n.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "n" {
			cfg.Lookup = true
		}
	})

	if err := cfg.Validate(availableDomains); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the semantic consistency of the configuration parameters.
//
// Parameters:
//   - availableDomains: A slice listing the valid domain names.
//
// Returns:
//   - error: An error of type ConfigError if the configuration is invalid,
//     nil otherwise.
func (c AppConfig) Validate(availableDomains []string) error {
	if !slices.Contains(availableDomains, c.Domain) {
		return apperrors.NewConfigError("unknown domain %q (available: %s)", c.Domain, strings.Join(availableDomains, ", "))
	}
	if c.Count < 0 {
		return apperrors.NewConfigError("count must be non-negative, got %d", c.Count)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", c.Timeout)
	}
	if c.Lookup && c.List {
		return apperrors.NewConfigError("-n and -list are mutually exclusive")
	}
	if c.Serve && (c.Lookup || c.List || c.Tables) {
		return apperrors.NewConfigError("-serve cannot be combined with -n, -list, or -tables")
	}
	if c.Port == "" {
		return apperrors.NewConfigError("port must not be empty")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return apperrors.NewConfigError("invalid port %q", c.Port)
	}
	return nil
}
