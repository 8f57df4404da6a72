// Package middleware provides built-in middleware implementations for the
// content orchestrator. Each middleware is constructed via a New* function
// that returns an [orchestrator.Middleware] ready to be passed in
// [orchestrator.Config.Middlewares].
//
// # Available Middleware
//
//   - [NewRetryMiddleware]: Retries failed provider calls with exponential backoff
//     and jitter. Useful for transient HTTP 429 / 5xx errors and timeouts.
//
//   - [NewTimeoutMiddleware]: Adds a per-attempt deadline via context.WithTimeout,
//     ensuring that a stalled provider call does not block the caller indefinitely.
//
//   - [NewLoggingMiddleware]: Emits structured slog log entries before and after
//     every provider call, with three verbosity levels (Minimal, Standard, Verbose).
//
// # Usage
//
//	import (
//	    "log/slog"
//	    "time"
//
//	    "github.com/leofalp/deckgen/core/orchestrator"
//	    "github.com/leofalp/deckgen/core/orchestrator/middleware"
//	)
//
//	orch, err := orchestrator.New(orchestrator.Config{
//	    Middlewares: []orchestrator.Middleware{
//	        middleware.NewLoggingMiddleware(slog.Default(), middleware.LogLevelStandard),
//	        middleware.NewRetryMiddleware(middleware.RetryConfig{MaxRetries: 1}),
//	        middleware.NewTimeoutMiddleware(30 * time.Second),
//	    },
//	}, primary, secondary)
//
// Middlewares execute outermost-first: the first entry in the slice is the
// outermost wrapper, meaning it runs first on the way in and last on the way
// out. In the example above, a request travels:
//
//	Logging (outermost) -> Retry -> Timeout -> Provider
//
// so the timeout governs each individual attempt, the retry loop sits around
// the timed attempts, and logging observes the final outcome of the loop.
package middleware
