package orchestrator

import (
	"context"
	"time"

	"github.com/leofalp/deckgen/core/deck"
	"github.com/leofalp/deckgen/providers/observability"
)

// Metric names emitted by the orchestrator.
const (
	// metricGenerateDuration is the histogram for full content-set assembly duration.
	metricGenerateDuration = "deckgen.orchestrator.generate.duration"

	// metricSlotCount is the counter for filled slots, labelled by provenance.
	metricSlotCount = "deckgen.orchestrator.slot.count"

	// metricFallbackCount is the counter for provider fall-throughs.
	metricFallbackCount = "deckgen.orchestrator.fallback.count"
)

// observer resolves the observability provider for this call: the configured
// one if set, otherwise whatever the caller attached to the context. Nil means
// observability is disabled.
func (o *Orchestrator) observer(ctx context.Context) observability.Provider {
	if o.config.Observer != nil {
		return o.config.Observer
	}
	return observability.ObserverFromContext(ctx)
}

// observeGenerateStart opens the root span for one content-set assembly and
// attaches it to the returned context for downstream propagation.
func (o *Orchestrator) observeGenerateStart(ctx context.Context, request deck.GenerationRequest) (context.Context, observability.Span) {
	obs := o.observer(ctx)
	if obs == nil {
		return ctx, nil
	}

	ctx, span := obs.StartSpan(ctx, observability.SpanOrchestratorGenerate,
		observability.String(observability.AttrGenerationTopic, request.Topic),
		observability.Int(observability.AttrGenerationSlides, request.SlideCount),
		observability.String(observability.AttrGenerationTheme, string(request.Theme)),
	)

	ctx = observability.ContextWithSpan(ctx, span)
	ctx = observability.ContextWithObserver(ctx, obs)

	obs.Info(ctx, "content generation started",
		observability.String(observability.AttrGenerationTopic, request.Topic),
		observability.Int(observability.AttrGenerationSlides, request.SlideCount),
	)

	return ctx, span
}

// observeGenerateCompleted records the successful assembly of a content set.
func (o *Orchestrator) observeGenerateCompleted(ctx context.Context, span observability.Span, set deck.ContentSet, elapsed time.Duration) {
	obs := o.observer(ctx)
	if obs == nil {
		return
	}

	obs.Histogram(metricGenerateDuration).Record(ctx, elapsed.Seconds())

	obs.Info(ctx, "content generation completed",
		observability.String(observability.AttrGenerationTopic, set.Topic),
		observability.Int(observability.AttrGenerationSlides, len(set.Blocks)),
		observability.Duration(observability.AttrDuration, elapsed),
	)

	if span != nil {
		span.SetStatus(observability.StatusOK, "content set assembled")
		span.End()
	}
}

// observeGenerateFailed records the failure or cancellation of an assembly.
func (o *Orchestrator) observeGenerateFailed(ctx context.Context, span observability.Span, err error, elapsed time.Duration) {
	obs := o.observer(ctx)
	if obs == nil {
		return
	}

	obs.Error(ctx, "content generation failed",
		observability.Error(err),
		observability.Duration(observability.AttrDuration, elapsed),
	)

	if span != nil {
		span.RecordError(err)
		span.SetStatus(observability.StatusError, "content generation failed")
		span.End()
	}
}

// observeSlotFilled records the completion of one slide slot.
func (o *Orchestrator) observeSlotFilled(ctx context.Context, slot int, provenance deck.Provenance) {
	obs := o.observer(ctx)
	if obs == nil {
		return
	}

	obs.Counter(metricSlotCount).Add(ctx, 1,
		observability.String(observability.AttrGenerationProvenance, string(provenance)),
	)

	obs.Debug(ctx, "slot filled",
		observability.Int(observability.AttrGenerationSlot, slot),
		observability.String(observability.AttrGenerationProvenance, string(provenance)),
	)

	if span := observability.SpanFromContext(ctx); span != nil {
		span.AddEvent(observability.EventSlotGenerated,
			observability.Int(observability.AttrGenerationSlot, slot),
			observability.String(observability.AttrGenerationProvenance, string(provenance)),
		)
	}
}

// observeFallback records a fall-through from one provider to the next in the
// chain for a single slot.
func (o *Orchestrator) observeFallback(ctx context.Context, slot int, provider string, err error) {
	obs := o.observer(ctx)
	if obs == nil {
		return
	}

	obs.Counter(metricFallbackCount).Add(ctx, 1,
		observability.String(observability.AttrProviderName, provider),
	)

	obs.Warn(ctx, "provider fallback",
		observability.Int(observability.AttrGenerationSlot, slot),
		observability.String(observability.AttrProviderName, provider),
		observability.Error(err),
	)

	if span := observability.SpanFromContext(ctx); span != nil {
		span.AddEvent(observability.EventProviderFallback,
			observability.Int(observability.AttrGenerationSlot, slot),
			observability.String(observability.AttrProviderName, provider),
		)
	}
}
