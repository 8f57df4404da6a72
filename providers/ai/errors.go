package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/leofalp/deckgen/internal/utils"
)

// Provider failure classes. Every error a provider returns wraps exactly one
// of these sentinels, so the orchestrator can use [errors.Is] to decide
// whether to retry the same provider or fall through to the next one.
//
//	if errors.Is(err, ai.ErrTimeout) {
//	    // retryable on the same provider
//	}
var (
	// ErrUnavailable covers transport failures and transient server-side
	// conditions (connection refused, 429, 5xx). Retryable.
	ErrUnavailable = errors.New("deckgen: provider unavailable")

	// ErrTimeout covers per-attempt deadline expiry, either through the
	// attempt context or an HTTP 408. Retryable.
	ErrTimeout = errors.New("deckgen: provider timed out")

	// ErrRejected covers definitive refusals: authentication failures,
	// malformed requests, content policy refusals. Not retryable; the
	// chain falls through to the next provider immediately.
	ErrRejected = errors.New("deckgen: provider rejected request")
)

// ClassifyHTTPStatus maps a non-2xx status code to its failure class.
func ClassifyHTTPStatus(code int) error {
	switch {
	case code == 408:
		return ErrTimeout
	case code == 429 || code >= 500:
		return ErrUnavailable
	default:
		return ErrRejected
	}
}

// ClassifyError wraps err with the appropriate failure sentinel for the named
// provider. Context expiry becomes [ErrTimeout] (deadline) or is propagated
// untouched (cancellation, so callers still observe context.Canceled);
// HTTP status errors are classified by code; anything else is treated as the
// provider being unreachable.
func ClassifyError(provider string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s: %w", ErrTimeout, provider, err)
	}

	var statusErr *utils.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Errorf("%w: %s: %w", ClassifyHTTPStatus(statusErr.StatusCode), provider, err)
	}

	return fmt.Errorf("%w: %s: %w", ErrUnavailable, provider, err)
}

// Retryable reports whether the orchestrator may retry the same provider for
// this error. Rejections and context cancellation are final.
func Retryable(err error) bool {
	return errors.Is(err, ErrUnavailable) || errors.Is(err, ErrTimeout)
}
