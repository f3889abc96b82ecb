package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	apperrors "github.com/agbru/fibseq/internal/errors"
)

// Server exposes the registered Fibonacci domains over HTTP.
// It wraps the standard http.Server and adds application-specific routing,
// middleware, and graceful shutdown.
type Server struct {
	httpServer *http.Server
	logger     zerolog.Logger
	metrics    *Metrics
	timeouts   Timeouts
}

// NewServer creates a new Server listening on the given address.
//
// Parameters:
//   - addr: The listen address (e.g. ":8080").
//   - opts: Optional functional options for customizing the server
//     (e.g. WithLogger, WithTimeouts).
//
// Returns:
//   - *Server: A pointer to the initialized Server.
func NewServer(addr string, opts ...Option) *Server {
	s := &Server{
		logger:   zerolog.New(os.Stderr).With().Timestamp().Str("component", "server").Logger(),
		metrics:  NewMetrics(),
		timeouts: DefaultServerTimeouts(),
	}

	for _, opt := range opts {
		opt(s)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/lookup", s.wrapWithMiddleware(s.handleLookup))
	mux.HandleFunc("/sequence", s.wrapWithMiddleware(s.handleSequence))
	mux.HandleFunc("/domains", s.wrapWithMiddleware(s.handleDomains))
	mux.HandleFunc("/health", s.wrapWithMiddleware(s.handleHealth))
	mux.HandleFunc("/metrics", s.wrapWithMiddleware(s.handleMetrics))

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  s.timeouts.ReadTimeout,
		WriteTimeout: s.timeouts.WriteTimeout,
		IdleTimeout:  s.timeouts.IdleTimeout,
	}

	return s
}

// wrapWithMiddleware applies the middleware chain to a handler.
func (s *Server) wrapWithMiddleware(handler http.HandlerFunc) http.HandlerFunc {
	// Applied in reverse order: Logging -> Metrics -> Handler
	wrapped := s.metricsMiddleware(handler)
	wrapped = s.loggingMiddleware(wrapped)
	return wrapped
}

// loggingMiddleware logs each served request with its duration.
func (s *Server) loggingMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next(w, r)
		s.logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("request served")
	}
}

// Start runs the HTTP server until the context is canceled or the listener
// fails. On cancellation it attempts a graceful shutdown bounded by the
// configured ShutdownTimeout.
//
// Parameters:
//   - ctx: The context whose cancellation triggers shutdown.
//
// Returns:
//   - error: An error if the server fails to start or to shut down cleanly.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info().Str("addr", s.httpServer.Addr).Msg("starting server")
		s.logger.Info().Msg("endpoints: GET /lookup?domain=<name>&n=<index>, GET /sequence?domain=<name>&count=<n>, GET /domains, GET /health, GET /metrics")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info().Msg("shutdown signal received, draining connections")
	case err := <-errCh:
		return apperrors.WrapError(err, "server failed to start")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.timeouts.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return apperrors.WrapError(err, "graceful shutdown failed")
	}

	s.logger.Info().Msg("server stopped")
	return nil
}
