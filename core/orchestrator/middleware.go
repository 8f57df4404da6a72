package orchestrator

import (
	"context"

	"github.com/leofalp/deckgen/providers/ai"
)

// GenerateFunc is a function that sends one content request to a provider and
// returns the completed response. It is the base unit threaded through the
// attempt middleware chain.
type GenerateFunc func(ctx context.Context, request ai.ContentRequest) (*ai.ContentResponse, error)

// Middleware intercepts and optionally transforms provider attempts. Each
// Middleware receives the next GenerateFunc in the chain and returns a new
// GenerateFunc that wraps it. Middlewares are applied outermost-first: the
// first middleware in the slice is the outermost wrapper.
type Middleware func(next GenerateFunc) GenerateFunc

// buildAttemptChain constructs the linear attempt chain for one provider.
// The base function calls the provider directly. Middlewares are applied in
// reverse order so that the first entry in the slice becomes the outermost
// wrapper, i.e. the first to execute on an incoming request.
func buildAttemptChain(provider ai.Provider, middlewares []Middleware) GenerateFunc {
	// Base function: direct provider call.
	var chain GenerateFunc = func(ctx context.Context, request ai.ContentRequest) (*ai.ContentResponse, error) {
		return provider.GenerateContent(ctx, request)
	}

	// Apply middlewares in reverse so that middlewares[0] is outermost.
	for i := len(middlewares) - 1; i >= 0; i-- {
		chain = middlewares[i](chain)
	}

	return chain
}
