package sweeper

import (
	"context"
	"time"

	"github.com/leofalp/deckgen/providers/observability"
	"github.com/leofalp/deckgen/providers/storage"
)

// Config holds the tuning parameters for the sweeper. Zero values are
// replaced with the defaults documented on each field when New is called.
type Config struct {
	// Interval is the time between sweep passes. Default: 1h.
	Interval time.Duration

	// Observer enables tracing, metrics, and logging. Nil disables
	// observability with zero overhead.
	Observer observability.Provider
}

// applyConfigDefaults fills in zero-valued fields in config with sensible defaults.
func applyConfigDefaults(config *Config) {
	if config.Interval == 0 {
		config.Interval = time.Hour
	}
}

// metricSweepPurged is the counter for artifacts removed by sweep passes.
const metricSweepPurged = "deckgen.sweeper.purged.count"

// Sweeper periodically purges expired artifacts from a store. It exists purely
// to reclaim space: expiry itself is enforced lazily by the store on every
// fetch, so a delayed or stopped sweeper never extends an artifact's
// availability.
type Sweeper struct {
	store  storage.Store
	config Config
}

// New builds a sweeper over store.
func New(store storage.Store, config Config) *Sweeper {
	applyConfigDefaults(&config)
	return &Sweeper{store: store, config: config}
}

// Run sweeps the store every Config.Interval until ctx is canceled. An initial
// sweep runs immediately. Individual sweep failures are logged and do not stop
// the loop; Run returns ctx.Err() once the context ends.
func (s *Sweeper) Run(ctx context.Context) error {
	if _, err := s.SweepNow(ctx); err != nil && ctx.Err() != nil {
		return ctx.Err()
	}

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			// Errors are already observed inside SweepNow; the loop keeps
			// going so a transient store failure does not end reclamation.
			_, _ = s.SweepNow(ctx)
		}
	}
}

// SweepNow performs a single sweep pass and returns how many artifacts were
// purged. It is safe to call concurrently with Run; the store serializes the
// underlying purge.
func (s *Sweeper) SweepNow(ctx context.Context) (int, error) {
	obs := s.observer(ctx)

	var span observability.Span
	if obs != nil {
		ctx, span = obs.StartSpan(ctx, observability.SpanSweep,
			observability.Duration(observability.AttrSweepInterval, s.config.Interval),
		)
	}

	start := time.Now()
	purged, err := s.store.PurgeExpired(ctx)
	elapsed := time.Since(start)

	if err != nil {
		if obs != nil {
			obs.Error(ctx, "sweep failed",
				observability.Error(err),
				observability.Duration(observability.AttrDuration, elapsed),
			)
			span.RecordError(err)
			span.SetStatus(observability.StatusError, "sweep failed")
			span.End()
		}
		return 0, err
	}

	if obs != nil {
		obs.Counter(metricSweepPurged).Add(ctx, int64(purged))
		obs.Info(ctx, "sweep completed",
			observability.Int(observability.AttrSweepPurged, purged),
			observability.Duration(observability.AttrDuration, elapsed),
		)
		span.SetAttributes(observability.Int(observability.AttrSweepPurged, purged))
		span.SetStatus(observability.StatusOK, "sweep completed")
		span.End()
	}

	return purged, nil
}

// observer resolves the observability provider for this call.
func (s *Sweeper) observer(ctx context.Context) observability.Provider {
	if s.config.Observer != nil {
		return s.config.Observer
	}
	return observability.ObserverFromContext(ctx)
}
