package deckgen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/leofalp/deckgen/core/deck"
	"github.com/leofalp/deckgen/core/orchestrator"
	"github.com/leofalp/deckgen/core/orchestrator/middleware"
	"github.com/leofalp/deckgen/core/planner"
	"github.com/leofalp/deckgen/core/sweeper"
	"github.com/leofalp/deckgen/providers/ai"
	"github.com/leofalp/deckgen/providers/ai/template"
	"github.com/leofalp/deckgen/providers/observability"
	"github.com/leofalp/deckgen/providers/observability/slogobs"
	"github.com/leofalp/deckgen/providers/render"
	"github.com/leofalp/deckgen/providers/render/markdown"
	"github.com/leofalp/deckgen/providers/storage"
	"github.com/leofalp/deckgen/providers/storage/memstore"
)

// DefaultRetention is how long generated artifacts remain downloadable.
const DefaultRetention = 7 * 24 * time.Hour

// Config holds the engine's assembly and tuning parameters. Zero values are
// replaced with the defaults documented on each field when New is called.
type Config struct {
	// Providers is the AI provider chain in fallback order. The
	// deterministic template provider is appended automatically when the
	// chain does not already end with one, so generation is total: every
	// valid request yields a deck even with every AI provider down. An
	// empty chain runs on the template provider alone.
	Providers []ai.Provider

	// Renderer serializes slide plans into artifact blobs.
	// Default: the markdown renderer.
	Renderer render.Renderer

	// Store owns artifact blobs and metadata. Default: an in-memory store.
	Store storage.Store

	// Catalog resolves theme names to style sheets.
	// Default: the built-in catalog.
	Catalog *planner.Catalog

	// Retention is how long new artifacts stay downloadable.
	// Default: [DefaultRetention].
	Retention time.Duration

	// SweepInterval is the period of the background cleanup loop.
	// Default: 1h.
	SweepInterval time.Duration

	// AttemptTimeout bounds each individual provider attempt. Default: 30s.
	AttemptTimeout time.Duration

	// MaxRetries is the number of retry attempts per provider per slot
	// after the first failure. Default: 1 (two attempts per provider).
	MaxRetries int

	// Orchestrator carries per-slot tuning (concurrency, token budget,
	// temperature, style hints). Its Middlewares and Observer fields are
	// managed by the engine and ignored here.
	Orchestrator orchestrator.Config

	// Logger, when set, enables attempt-level structured logging and
	// becomes the default Observer backend.
	Logger *slog.Logger

	// Observer enables tracing, metrics, and logging throughout the
	// pipeline. Default: a slog-backed observer when Logger is set,
	// otherwise nil (observability disabled).
	Observer observability.Provider
}

// applyConfigDefaults fills in zero-valued fields in config with sensible defaults.
func applyConfigDefaults(config *Config) {
	if config.Renderer == nil {
		config.Renderer = markdown.New()
	}

	if config.Store == nil {
		config.Store = memstore.New()
	}

	if config.Catalog == nil {
		config.Catalog = planner.DefaultCatalog()
	}

	if config.Retention == 0 {
		config.Retention = DefaultRetention
	}

	if config.SweepInterval == 0 {
		config.SweepInterval = time.Hour
	}

	if config.AttemptTimeout == 0 {
		config.AttemptTimeout = 30 * time.Second
	}

	if config.MaxRetries == 0 {
		config.MaxRetries = 1
	}

	if config.Observer == nil && config.Logger != nil {
		config.Observer = slogobs.New(config.Logger)
	}
}

// Engine is the stateful facade over the whole pipeline: content
// orchestration, slide planning, rendering, artifact storage, and cleanup.
// It is safe for concurrent use.
type Engine struct {
	config   Config
	orch     *orchestrator.Orchestrator
	store    storage.Store
	renderer render.Renderer
	sweeper  *sweeper.Sweeper
}

// New assembles an engine from config. The provider chain is completed with
// the template fallback, the attempt middleware chain (logging, retry,
// timeout) is built from the timing fields, and all components share the
// configured observer.
func New(config Config) (*Engine, error) {
	applyConfigDefaults(&config)

	providers := config.Providers
	if len(providers) == 0 || providers[len(providers)-1].Name() != template.ProviderName {
		providers = append(append([]ai.Provider{}, providers...), template.New())
	}

	middlewares := []orchestrator.Middleware{}
	if config.Logger != nil {
		middlewares = append(middlewares, middleware.NewLoggingMiddleware(config.Logger, middleware.LogLevelStandard))
	}
	middlewares = append(middlewares,
		middleware.NewRetryMiddleware(middleware.RetryConfig{MaxRetries: config.MaxRetries}),
		middleware.NewTimeoutMiddleware(config.AttemptTimeout),
	)

	orchConfig := config.Orchestrator
	orchConfig.Middlewares = middlewares
	orchConfig.Observer = config.Observer

	orch, err := orchestrator.New(orchConfig, providers...)
	if err != nil {
		return nil, err
	}

	sw := sweeper.New(config.Store, sweeper.Config{
		Interval: config.SweepInterval,
		Observer: config.Observer,
	})

	return &Engine{
		config:   config,
		orch:     orch,
		store:    config.Store,
		renderer: config.Renderer,
		sweeper:  sw,
	}, nil
}

// SubmitGeneration runs the full pipeline for one request: content generation
// across the provider chain, slide planning, rendering, and artifact storage.
// It returns the stored artifact's metadata.
//
// Invalid requests fail with [deck.ErrInvalidInput] before any provider is
// invoked. If ctx is canceled at any point before the artifact is persisted,
// no artifact is stored and ctx.Err() is returned.
func (e *Engine) SubmitGeneration(ctx context.Context, request deck.GenerationRequest) (*storage.Artifact, error) {
	ctx, span := e.observeSubmitStart(ctx, request)
	start := time.Now()

	artifact, err := e.generate(ctx, request)
	if err != nil {
		e.observeSubmitFailed(ctx, span, err, time.Since(start))
		return nil, err
	}

	e.observeSubmitCompleted(ctx, span, artifact, time.Since(start))
	return artifact, nil
}

// generate is the pipeline body, separated so observation wraps it once.
func (e *Engine) generate(ctx context.Context, request deck.GenerationRequest) (*storage.Artifact, error) {
	set, err := e.orch.Generate(ctx, request)
	if err != nil {
		return nil, err
	}

	plan, err := planner.Plan(set, request, e.config.Catalog)
	if err != nil {
		return nil, err
	}

	blob, err := e.renderer.Render(ctx, plan)
	if err != nil {
		return nil, err
	}

	// A request abandoned mid-pipeline must not leave an artifact behind.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	filename := artifactFilename(request.Topic, e.renderer.FileExtension())
	return e.store.Create(ctx, blob, filename, e.config.Retention)
}

// FetchArtifact returns an artifact's metadata and a copy of its document,
// counting the read as one download. Unknown and deleted identifiers fail
// with [storage.ErrNotFound]; artifacts past their retention window fail with
// [storage.ErrExpired] regardless of sweeper timing.
func (e *Engine) FetchArtifact(ctx context.Context, id string) (*storage.Artifact, []byte, error) {
	return e.store.Fetch(ctx, id)
}

// ListArtifacts returns artifact metadata matching filter, newest first.
func (e *Engine) ListArtifacts(ctx context.Context, filter storage.ListFilter) ([]storage.Artifact, error) {
	return e.store.List(ctx, filter)
}

// DeleteArtifact removes an artifact and releases its document. Deleting an
// unknown or already-deleted identifier is a no-op.
func (e *Engine) DeleteArtifact(ctx context.Context, id string) error {
	return e.store.Delete(ctx, id)
}

// TriggerCleanup runs one immediate sweep pass and returns how many expired
// artifacts were purged.
func (e *Engine) TriggerCleanup(ctx context.Context) (int, error) {
	return e.sweeper.SweepNow(ctx)
}

// RunSweeper runs the periodic cleanup loop until ctx is canceled. Callers
// typically start it in its own goroutine right after New.
func (e *Engine) RunSweeper(ctx context.Context) error {
	return e.sweeper.Run(ctx)
}

// Stats aggregates over the store's current entries at call time.
func (e *Engine) Stats(ctx context.Context) (storage.Stats, error) {
	return e.store.Stats(ctx)
}

// observeSubmitStart opens the root span for one submission.
func (e *Engine) observeSubmitStart(ctx context.Context, request deck.GenerationRequest) (context.Context, observability.Span) {
	obs := e.config.Observer
	if obs == nil {
		return ctx, nil
	}

	ctx, span := obs.StartSpan(ctx, observability.SpanSubmitGeneration,
		observability.String(observability.AttrGenerationTopic, request.Topic),
		observability.Int(observability.AttrGenerationSlides, request.SlideCount),
		observability.String(observability.AttrGenerationTheme, string(request.Theme)),
	)

	ctx = observability.ContextWithSpan(ctx, span)
	ctx = observability.ContextWithObserver(ctx, obs)

	return ctx, span
}

// observeSubmitCompleted closes the submission span on success.
func (e *Engine) observeSubmitCompleted(ctx context.Context, span observability.Span, artifact *storage.Artifact, elapsed time.Duration) {
	obs := e.config.Observer
	if obs == nil {
		return
	}

	obs.Info(ctx, "generation submitted",
		observability.String(observability.AttrArtifactID, artifact.ID),
		observability.String(observability.AttrArtifactFilename, artifact.Filename),
		observability.Int64(observability.AttrArtifactSize, artifact.Size),
		observability.Duration(observability.AttrDuration, elapsed),
	)

	if span != nil {
		span.AddEvent(observability.EventArtifactCreated,
			observability.String(observability.AttrArtifactID, artifact.ID),
		)
		span.SetStatus(observability.StatusOK, "artifact stored")
		span.End()
	}
}

// observeSubmitFailed closes the submission span on failure. Invalid input is
// reported at warn level; everything else is an error.
func (e *Engine) observeSubmitFailed(ctx context.Context, span observability.Span, err error, elapsed time.Duration) {
	obs := e.config.Observer
	if obs == nil {
		return
	}

	msg := "generation failed"
	if errors.Is(err, deck.ErrInvalidInput) {
		obs.Warn(ctx, msg, observability.Error(err), observability.Duration(observability.AttrDuration, elapsed))
	} else {
		obs.Error(ctx, msg, observability.Error(err), observability.Duration(observability.AttrDuration, elapsed))
	}

	if span != nil {
		span.RecordError(err)
		span.SetStatus(observability.StatusError, fmt.Sprintf("%s: %v", msg, err))
		span.End()
	}
}
