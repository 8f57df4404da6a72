package middleware

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/leofalp/deckgen/providers/ai"
)

// TestTimeout_DeadlineApplied verifies the wrapped call sees a context whose
// deadline expires within the configured timeout.
func TestTimeout_DeadlineApplied(t *testing.T) {
	var deadline time.Time
	var hasDeadline bool

	chain := NewTimeoutMiddleware(time.Minute)(func(ctx context.Context, _ ai.ContentRequest) (*ai.ContentResponse, error) {
		deadline, hasDeadline = ctx.Deadline()
		return &ai.ContentResponse{}, nil
	})

	if _, err := chain(context.Background(), ai.ContentRequest{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !hasDeadline {
		t.Fatal("provider context has no deadline")
	}
	if remaining := time.Until(deadline); remaining > time.Minute {
		t.Errorf("deadline %v exceeds the configured timeout", remaining)
	}
}

// TestTimeout_SlowCallSurfacesDeadlineExceeded verifies that a call
// outlasting the window observes context.DeadlineExceeded.
func TestTimeout_SlowCallSurfacesDeadlineExceeded(t *testing.T) {
	chain := NewTimeoutMiddleware(5 * time.Millisecond)(func(ctx context.Context, _ ai.ContentRequest) (*ai.ContentResponse, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})

	_, err := chain(context.Background(), ai.ContentRequest{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context.DeadlineExceeded, got %v", err)
	}
}

// TestTimeout_ShorterCallerDeadlineWins verifies an already-tighter caller
// deadline is not extended by the middleware.
func TestTimeout_ShorterCallerDeadlineWins(t *testing.T) {
	parent, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	chain := NewTimeoutMiddleware(time.Hour)(func(ctx context.Context, _ ai.ContentRequest) (*ai.ContentResponse, error) {
		deadline, _ := ctx.Deadline()
		if time.Until(deadline) > time.Second {
			t.Errorf("middleware extended the caller deadline to %v", deadline)
		}
		return &ai.ContentResponse{}, nil
	})

	if _, err := chain(parent, ai.ContentRequest{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
