package observability

import (
	"context"
	"time"
)

// Provider bundles tracing, metrics, and logging behind one interface. Every
// pipeline component accepts a Provider and treats nil as "observability
// disabled": callers guard each use, so the zero-cost path is a nil check.
type Provider interface {
	Tracer
	Metrics
	Logger
}

// Tracer opens spans around units of pipeline work.
type Tracer interface {
	// StartSpan opens a span and returns the context carrying it. Callers
	// must End the returned span.
	StartSpan(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Span is one traced unit of work: a full generation submission, a single
// provider attempt, or a sweeper pass. Span names and attribute keys are
// defined in semconv.go so backends see a stable vocabulary.
type Span interface {
	// End completes the span.
	End()
	// SetAttributes attaches attributes to the span.
	SetAttributes(attrs ...Attribute)
	// SetStatus records the span outcome.
	SetStatus(code StatusCode, description string)
	// RecordError attaches an error to the span.
	RecordError(err error)
	// AddEvent marks a point-in-time occurrence within the span.
	AddEvent(name string, attrs ...Attribute)
}

// StatusCode is the outcome recorded on a completed span.
type StatusCode int

const (
	StatusUnset StatusCode = iota
	StatusOK
	StatusError
)

// Metrics creates or retrieves named instruments. Names are defined next to
// the component that emits them.
type Metrics interface {
	// Counter returns the monotonically increasing metric with that name.
	Counter(name string) Counter
	// Histogram returns the distribution metric with that name.
	Histogram(name string) Histogram
}

// Counter accumulates monotonically increasing values, such as slots filled
// or artifacts purged.
type Counter interface {
	Add(ctx context.Context, value int64, attrs ...Attribute)
}

// Histogram records value distributions, such as generation durations.
type Histogram interface {
	Record(ctx context.Context, value float64, attrs ...Attribute)
}

// Logger is structured leveled logging. Expected usage: Info for lifecycle
// milestones, Warn for recovered conditions (provider fallback, invalid
// input), Error for failures that surface to the caller.
type Logger interface {
	Trace(ctx context.Context, msg string, attrs ...Attribute)
	Debug(ctx context.Context, msg string, attrs ...Attribute)
	Info(ctx context.Context, msg string, attrs ...Attribute)
	Warn(ctx context.Context, msg string, attrs ...Attribute)
	Error(ctx context.Context, msg string, attrs ...Attribute)
}

// Attribute is one key-value pair of span, metric, or log metadata.
type Attribute struct {
	Key   string
	Value any
}

// String creates a string attribute.
func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Int creates an integer attribute.
func Int(key string, value int) Attribute {
	return Attribute{Key: key, Value: value}
}

// Int64 creates an int64 attribute.
func Int64(key string, value int64) Attribute {
	return Attribute{Key: key, Value: value}
}

// Float64 creates a float64 attribute.
func Float64(key string, value float64) Attribute {
	return Attribute{Key: key, Value: value}
}

// Bool creates a boolean attribute.
func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

// Duration creates a duration attribute.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value}
}

// Error creates an attribute under the "error" key. A nil error yields an
// empty value rather than a panic, so callers can pass errors through
// unconditionally.
func Error(err error) Attribute {
	if err == nil {
		return Attribute{Key: "error", Value: ""}
	}
	return Attribute{Key: "error", Value: err.Error()}
}
