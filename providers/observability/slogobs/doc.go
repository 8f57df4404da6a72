// Package slogobs provides an [observability.Provider] implementation backed
// by the standard library's log/slog. Spans, metrics, and log records are all
// emitted as structured log output, which keeps the engine observable without
// pulling in an external tracing or metrics backend.
package slogobs
