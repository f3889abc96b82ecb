package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/agbru/fibseq/internal/cli"
	"github.com/agbru/fibseq/internal/config"
	"github.com/agbru/fibseq/pkg/fibonacci"
)

// LookupResponse is the JSON payload of a successful /lookup request.
type LookupResponse struct {
	Domain   string `json:"domain"`
	N        int64  `json:"n"`
	Value    string `json:"value"`
	Duration string `json:"duration"`
}

// SequenceResponse is the JSON payload of a successful /sequence request.
type SequenceResponse struct {
	Domain string     `json:"domain"`
	Count  int        `json:"count"`
	Terms  []cli.Term `json:"terms"`
}

// ErrorResponse is the JSON payload of a failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ParseError carries an HTTP status alongside a request validation message.
type ParseError struct {
	Message    string
	StatusCode int
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.StatusCode)
}

// handleHealth responds to health check requests.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	s.writeJSONResponse(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
	})
}

// handleDomains returns the list of registered domain names.
func (s *Server) handleDomains(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	s.writeJSONResponse(w, http.StatusOK, map[string]any{
		"domains": fibonacci.Names(),
	})
}

// handleLookup serves a single indexed lookup. It parses the 'domain' and 'n'
// query parameters, resolves the domain, and returns F(n) in JSON format.
func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	enum, n, err := parseLookupParams(r)
	if err != nil {
		s.writeParseError(w, err)
		return
	}

	start := time.Now()
	value, ok := enum.NthText(n)
	if !ok {
		s.writeErrorResponse(w, http.StatusNotFound,
			fmt.Sprintf("F(%d) is not representable in domain %q", n, enum.Name()))
		return
	}

	s.writeJSONResponse(w, http.StatusOK, LookupResponse{
		Domain:   enum.Name(),
		N:        n,
		Value:    value,
		Duration: time.Since(start).String(),
	})
}

// handleSequence streams a prefix of a domain's sequence. Finite domains
// default to their full table; the arbitrary-precision domain requires a
// bounded count and falls back to the configured default.
func (s *Server) handleSequence(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	enum, count, err := parseSequenceParams(r)
	if err != nil {
		s.writeParseError(w, err)
		return
	}
	if !enum.Finite() && count == 0 {
		count = config.DefaultCount
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeouts.RequestTimeout)
	defer cancel()

	terms, err := cli.CollectTerms(ctx, enum, count, true)
	if err != nil {
		s.writeErrorResponse(w, http.StatusRequestTimeout, "sequence collection aborted: "+err.Error())
		return
	}

	s.writeJSONResponse(w, http.StatusOK, SequenceResponse{
		Domain: enum.Name(),
		Count:  len(terms),
		Terms:  terms,
	})
}

// parseLookupParams extracts and validates the lookup parameters.
//
// Returns:
//   - enum: The resolved domain.
//   - n: The parsed Fibonacci index.
//   - err: A ParseError if validation fails, nil otherwise.
func parseLookupParams(r *http.Request) (enum fibonacci.Enumerator, n int64, err error) {
	enum, err = resolveDomain(r)
	if err != nil {
		return nil, 0, err
	}

	nStr := r.URL.Query().Get("n")
	if nStr == "" {
		return nil, 0, ParseError{
			Message:    "Missing 'n' parameter",
			StatusCode: http.StatusBadRequest,
		}
	}
	n, parseErr := strconv.ParseInt(nStr, 10, 64)
	if parseErr != nil {
		return nil, 0, ParseError{
			Message:    "Invalid 'n' parameter: must be a 64-bit integer",
			StatusCode: http.StatusBadRequest,
		}
	}
	return enum, n, nil
}

// parseSequenceParams extracts and validates the enumeration parameters.
func parseSequenceParams(r *http.Request) (enum fibonacci.Enumerator, count int, err error) {
	enum, err = resolveDomain(r)
	if err != nil {
		return nil, 0, err
	}

	countStr := r.URL.Query().Get("count")
	if countStr == "" {
		return enum, 0, nil
	}
	count, parseErr := strconv.Atoi(countStr)
	if parseErr != nil || count < 0 {
		return nil, 0, ParseError{
			Message:    "Invalid 'count' parameter: must be a non-negative integer",
			StatusCode: http.StatusBadRequest,
		}
	}
	return enum, count, nil
}

// resolveDomain looks up the requested domain, defaulting when absent.
func resolveDomain(r *http.Request) (fibonacci.Enumerator, error) {
	name := r.URL.Query().Get("domain")
	if name == "" {
		name = config.DefaultDomain
	}
	enum, ok := fibonacci.Lookup(name)
	if !ok {
		return nil, ParseError{
			Message:    fmt.Sprintf("Unknown domain %q", name),
			StatusCode: http.StatusBadRequest,
		}
	}
	return enum, nil
}

// writeParseError maps a parameter validation failure to its HTTP status.
func (s *Server) writeParseError(w http.ResponseWriter, err error) {
	var parseErr ParseError
	if errors.As(err, &parseErr) {
		s.writeErrorResponse(w, parseErr.StatusCode, parseErr.Message)
		return
	}
	s.writeErrorResponse(w, http.StatusBadRequest, err.Error())
}

// writeJSONResponse writes a JSON response with the correct content type.
func (s *Server) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error().Err(err).Msg("encoding JSON response")
	}
}

// writeErrorResponse writes a standardized error response.
func (s *Server) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	s.writeJSONResponse(w, statusCode, ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}
