package app

import (
	"context"
	"os/signal"
	"syscall"
	"time"
)

// CancelFuncs bundles the cancel functions created by SetupLifecycle so the
// caller can release both with one deferred call.
type CancelFuncs struct {
	cancelTimeout context.CancelFunc
	stopSignals   context.CancelFunc
}

// CancelAll releases the timeout and signal resources.
func (c *CancelFuncs) CancelAll() {
	c.stopSignals()
	c.cancelTimeout()
}

// SetupLifecycle combines timeout and signal handling into a single call.
// It creates a context that will be canceled either when the timeout expires
// or when SIGINT/SIGTERM is received, whichever happens first. A zero or
// negative timeout disables the deadline; server mode runs until signaled.
//
// Parameters:
//   - ctx: The parent context.
//   - timeout: The maximum duration for the operation (0 = unbounded).
//
// Returns:
//   - context.Context: A context with both timeout and signal handling.
//   - *CancelFuncs: The cancel functions for cleanup (defer CancelAll).
func SetupLifecycle(ctx context.Context, timeout time.Duration) (context.Context, *CancelFuncs) {
	cancelTimeout := context.CancelFunc(func() {})
	if timeout > 0 {
		ctx, cancelTimeout = context.WithTimeout(ctx, timeout)
	}
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	return ctx, &CancelFuncs{cancelTimeout: cancelTimeout, stopSignals: stopSignals}
}
