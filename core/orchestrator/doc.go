// Package orchestrator assembles complete slide content sets from a chain of
// content providers.
//
// For each slide slot the orchestrator tries providers strictly in chain
// order. A provider failure, or output that cannot be parsed into a usable
// content block, falls through to the next provider; the block records which
// source ultimately produced it as its provenance. Slots covered by
// caller-supplied custom content skip providers entirely.
//
// Slots are generated concurrently under a configurable bound and reassembled
// in slot order. Context cancellation abandons all outstanding work.
//
// Per-attempt behaviour (deadlines, retries, logging) is expressed as a
// [Middleware] chain, built with the constructors in the middleware
// subpackage:
//
//	orch, err := orchestrator.New(orchestrator.Config{
//	    Middlewares: []orchestrator.Middleware{
//	        middleware.NewRetryMiddleware(middleware.RetryConfig{MaxRetries: 1}),
//	        middleware.NewTimeoutMiddleware(30 * time.Second),
//	    },
//	}, openaiProvider, geminiProvider, template.New())
//
//	set, err := orch.Generate(ctx, request)
//
// Ending the chain with the deterministic template provider makes Generate
// total for valid requests: every slot is guaranteed to fill.
package orchestrator
