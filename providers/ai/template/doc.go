// Package template implements the deterministic fallback content provider.
// It terminates every provider chain: generation from it is pure computation
// over a curated topic library, so it cannot time out, rate-limit, or refuse,
// and the orchestrator can promise a complete deck for every valid request.
package template
