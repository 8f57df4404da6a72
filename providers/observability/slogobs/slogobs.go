package slogobs

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/leofalp/deckgen/providers/observability"
)

// Observer implements observability.Provider on the standard library's slog.
// Spans, span events, and metric updates all become structured log records;
// there is no wire propagation and no external collector. It is the default
// backend the engine installs when a logger is configured.
type Observer struct {
	logger *slog.Logger

	mu         sync.Mutex
	counters   map[string]*counter
	histograms map[string]*histogram
}

// Ensure Observer implements observability.Provider at compile time.
var _ observability.Provider = (*Observer)(nil)

// New builds an observer over logger, or slog.Default() when logger is nil.
// The handler's configured level decides what actually gets emitted;
// [LevelFromEnv] helps build one from DECKGEN_LOG_LEVEL.
func New(logger *slog.Logger) *Observer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Observer{
		logger:     logger,
		counters:   make(map[string]*counter),
		histograms: make(map[string]*histogram),
	}
}

// toSlogAttrs converts observability attributes, prepending any fixed ones.
func toSlogAttrs(fixed []slog.Attr, attrs []observability.Attribute) []slog.Attr {
	out := make([]slog.Attr, 0, len(fixed)+len(attrs))
	out = append(out, fixed...)
	for _, attr := range attrs {
		out = append(out, slog.Any(attr.Key, attr.Value))
	}
	return out
}

// StartSpan opens a logical span. The start is logged at debug; the end at
// info, so a default logger still shows request boundaries.
func (o *Observer) StartSpan(ctx context.Context, name string, attrs ...observability.Attribute) (context.Context, observability.Span) {
	s := &span{
		name:   name,
		start:  time.Now(),
		logger: o.logger,
		attrs:  attrs,
	}

	o.logger.LogAttrs(ctx, slog.LevelDebug, "span started", toSlogAttrs([]slog.Attr{
		slog.String("span", name),
		slog.String("event", "span.start"),
	}, attrs)...)

	return observability.ContextWithSpan(ctx, s), s
}

type span struct {
	name   string
	start  time.Time
	logger *slog.Logger

	mu    sync.Mutex
	attrs []observability.Attribute
}

func (s *span) End() {
	s.mu.Lock()
	attrs := s.attrs
	s.mu.Unlock()

	s.logger.LogAttrs(context.Background(), slog.LevelInfo, "span ended", toSlogAttrs([]slog.Attr{
		slog.String("span", s.name),
		slog.String("event", "span.end"),
		slog.Duration("duration", time.Since(s.start)),
	}, attrs)...)
}

func (s *span) SetAttributes(attrs ...observability.Attribute) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attrs = append(s.attrs, attrs...)
}

func (s *span) SetStatus(code observability.StatusCode, description string) {
	status := "unset"
	switch code {
	case observability.StatusOK:
		status = "ok"
	case observability.StatusError:
		status = "error"
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.attrs = append(s.attrs, observability.String(observability.AttrStatus, status))
	if description != "" {
		s.attrs = append(s.attrs, observability.String(observability.AttrStatusDescription, description))
	}
}

func (s *span) RecordError(err error) {
	if err == nil {
		return
	}

	s.mu.Lock()
	s.attrs = append(s.attrs, observability.Error(err))
	s.mu.Unlock()

	s.logger.LogAttrs(context.Background(), slog.LevelError, "span error",
		slog.String("span", s.name),
		slog.String("event", "error"),
		slog.String("error", err.Error()),
	)
}

func (s *span) AddEvent(name string, attrs ...observability.Attribute) {
	s.logger.LogAttrs(context.Background(), slog.LevelDebug, "span event", toSlogAttrs([]slog.Attr{
		slog.String("span", s.name),
		slog.String("event", name),
	}, attrs)...)
}

// Counter returns the named counter, creating it on first use. Instances are
// cached so repeated lookups share one running value.
func (o *Observer) Counter(name string) observability.Counter {
	o.mu.Lock()
	defer o.mu.Unlock()

	c, ok := o.counters[name]
	if !ok {
		c = &counter{name: name, logger: o.logger}
		o.counters[name] = c
	}
	return c
}

// Histogram returns the named histogram, creating it on first use.
func (o *Observer) Histogram(name string) observability.Histogram {
	o.mu.Lock()
	defer o.mu.Unlock()

	h, ok := o.histograms[name]
	if !ok {
		h = &histogram{name: name, logger: o.logger}
		o.histograms[name] = h
	}
	return h
}

type counter struct {
	name   string
	logger *slog.Logger
	value  atomic.Int64
}

func (c *counter) Add(ctx context.Context, delta int64, attrs ...observability.Attribute) {
	total := c.value.Add(delta)

	c.logger.LogAttrs(ctx, slog.LevelDebug, "counter", toSlogAttrs([]slog.Attr{
		slog.String("metric", c.name),
		slog.Int64("value", total),
		slog.Int64("delta", delta),
	}, attrs)...)
}

type histogram struct {
	name   string
	logger *slog.Logger
}

func (h *histogram) Record(ctx context.Context, value float64, attrs ...observability.Attribute) {
	h.logger.LogAttrs(ctx, slog.LevelDebug, "histogram", toSlogAttrs([]slog.Attr{
		slog.String("metric", h.name),
		slog.Float64("value", value),
	}, attrs)...)
}

// Trace sits below Debug and is filtered out unless the handler opts in.
func (o *Observer) Trace(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.log(ctx, slog.LevelDebug-4, msg, attrs...)
}

func (o *Observer) Debug(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.log(ctx, slog.LevelDebug, msg, attrs...)
}

func (o *Observer) Info(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.log(ctx, slog.LevelInfo, msg, attrs...)
}

func (o *Observer) Warn(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.log(ctx, slog.LevelWarn, msg, attrs...)
}

func (o *Observer) Error(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.log(ctx, slog.LevelError, msg, attrs...)
}

func (o *Observer) log(ctx context.Context, level slog.Level, msg string, attrs ...observability.Attribute) {
	o.logger.LogAttrs(ctx, level, msg, toSlogAttrs(nil, attrs)...)
}
