// Package observability defines the tracing, metrics, and logging contracts
// the generation pipeline reports through, plus the semantic conventions
// (span names, attribute keys, event names) shared by all components.
//
// [Provider] composes [Tracer], [Metrics], and [Logger] into one injectable
// dependency. The engine opens a span per submission and threads the active
// provider and span through context ([ContextWithObserver], [ContextWithSpan]);
// downstream components recover them with [ObserverFromContext] and
// [SpanFromContext]. Everything tolerates a nil provider or span, so a
// pipeline assembled without observability pays only nil checks.
//
// The slogobs subpackage is the built-in backend, emitting every observation
// as a structured slog record.
package observability
