package middleware

import (
	"context"
	"time"

	"github.com/leofalp/deckgen/core/orchestrator"
	"github.com/leofalp/deckgen/providers/ai"
)

// NewTimeoutMiddleware creates a Middleware that enforces a per-attempt
// deadline on provider calls.
//
// The implementation wraps the context with context.WithTimeout and defers
// cancel(), so the context is released once the provider returns or the
// deadline expires. A provider call that overruns the deadline surfaces as
// context.DeadlineExceeded, which providers classify as [ai.ErrTimeout].
//
// If the caller supplies a context that already has a shorter deadline, that
// shorter deadline wins as per normal context semantics.
//
// Place this middleware INSIDE the retry middleware (later in the chain) so
// that the deadline applies to each individual attempt rather than the attempt
// loop as a whole.
func NewTimeoutMiddleware(timeout time.Duration) orchestrator.Middleware {
	return func(next orchestrator.GenerateFunc) orchestrator.GenerateFunc {
		return func(ctx context.Context, request ai.ContentRequest) (*ai.ContentResponse, error) {
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			return next(ctx, request)
		}
	}
}
