package memstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/leofalp/deckgen/providers/observability"
	"github.com/leofalp/deckgen/providers/storage"
)

// Config holds the tuning parameters for the in-memory store. Zero values are
// replaced with the defaults documented below when New is called.
type Config struct {
	// MaxBlobBytes is the largest blob Create accepts. Default: 10 MiB.
	MaxBlobBytes int64

	// Clock returns the current time; injectable for expiry tests.
	// Default: time.Now.
	Clock func() time.Time
}

func applyConfigDefaults(config *Config) {
	if config.MaxBlobBytes == 0 {
		config.MaxBlobBytes = 10 * 1024 * 1024
	}
	if config.Clock == nil {
		config.Clock = time.Now
	}
}

// entry pairs one artifact's metadata with its blob behind a dedicated lock.
// All per-artifact operations serialize on entry.mu, never on the store lock,
// so operations on distinct identifiers do not contend.
type entry struct {
	mu   sync.Mutex
	art  storage.Artifact
	blob []byte
}

// MemStore is a concurrency-safe in-memory artifact store. The store-level
// RWMutex guards only the identifier index; blob and counter access go
// through per-entry locks. Deleted entries remain in the index as blobless
// tombstones, which is what makes identifiers permanently invalid after
// deletion rather than reusable.
type MemStore struct {
	config Config

	mu      sync.RWMutex
	entries map[string]*entry
	order   []string // identifiers in creation order, oldest first
}

// New returns an empty store ready for concurrent use.
func New() *MemStore {
	return NewWithConfig(Config{})
}

// NewWithConfig returns an empty store with explicit tuning parameters.
func NewWithConfig(config Config) *MemStore {
	applyConfigDefaults(&config)
	return &MemStore{
		config:  config,
		entries: make(map[string]*entry),
	}
}

// Ensure MemStore implements storage.Store at compile time.
var _ storage.Store = (*MemStore)(nil)

// Create implements the storage.Store interface. Identifiers come from
// uuid.NewString, so they are unpredictable and collision probability is
// negligible; the index insert still re-rolls on the off chance of a clash
// so an existing identifier is never overwritten.
func (s *MemStore) Create(_ context.Context, blob []byte, filename string, retention time.Duration) (*storage.Artifact, error) {
	if len(blob) == 0 {
		return nil, fmt.Errorf("%w: empty blob", storage.ErrStorageFailure)
	}
	if int64(len(blob)) > s.config.MaxBlobBytes {
		return nil, fmt.Errorf("%w: blob of %d bytes exceeds limit of %d", storage.ErrStorageFailure, len(blob), s.config.MaxBlobBytes)
	}
	if filename == "" {
		return nil, fmt.Errorf("%w: empty display filename", storage.ErrStorageFailure)
	}
	if retention <= 0 {
		return nil, fmt.Errorf("%w: non-positive retention window %v", storage.ErrStorageFailure, retention)
	}

	now := s.config.Clock()
	owned := make([]byte, len(blob))
	copy(owned, blob)

	s.mu.Lock()
	id := uuid.NewString()
	for s.entries[id] != nil {
		id = uuid.NewString()
	}
	e := &entry{
		art: storage.Artifact{
			ID:        id,
			Filename:  filename,
			Size:      int64(len(owned)),
			CreatedAt: now,
			ExpiresAt: now.Add(retention),
			Status:    storage.StatusActive,
		},
		blob: owned,
	}
	s.entries[id] = e
	s.order = append(s.order, id)
	s.mu.Unlock()

	art := e.art
	return &art, nil
}

// Fetch implements the storage.Store interface. The expiry check happens
// lazily here with the same ExpiresAt timestamp the sweeper uses, so an
// artifact past its window is never served even if no sweep has run. The
// download increment happens under the entry lock together with the blob
// copy, making a download and its accounting observably inseparable.
func (s *MemStore) Fetch(ctx context.Context, id string) (*storage.Artifact, []byte, error) {
	e := s.lookup(id)
	if e == nil {
		return nil, nil, storage.ErrNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	switch {
	case e.art.Status == storage.StatusDeleted:
		return nil, nil, storage.ErrNotFound
	case e.art.Status == storage.StatusExpired:
		return nil, nil, storage.ErrExpired
	case e.art.Expired(s.config.Clock()):
		e.art.Status = storage.StatusExpired
		if span := observability.SpanFromContext(ctx); span != nil {
			span.AddEvent(observability.EventArtifactExpired,
				observability.String(observability.AttrArtifactID, id),
			)
		}
		return nil, nil, storage.ErrExpired
	}

	e.art.Downloads++
	blob := make([]byte, len(e.blob))
	copy(blob, e.blob)
	art := e.art
	return &art, blob, nil
}

// List implements the storage.Store interface. It walks a snapshot of the
// identifier index newest first; entry metadata is copied under each entry's
// own lock, so in-flight fetches on unrelated artifacts are not blocked.
// Active entries past their expiry are reported as expired without waiting
// for the sweeper.
func (s *MemStore) List(_ context.Context, filter storage.ListFilter) ([]storage.Artifact, error) {
	status := filter.Status
	if status == "" {
		status = storage.StatusActive
	}

	snapshot := s.snapshot()
	now := s.config.Clock()

	matched := 0
	result := []storage.Artifact{}
	for i := len(snapshot) - 1; i >= 0; i-- {
		e := snapshot[i]
		e.mu.Lock()
		art := e.art
		e.mu.Unlock()

		if art.Status == storage.StatusActive && art.Expired(now) {
			art.Status = storage.StatusExpired
		}
		if art.Status != status {
			continue
		}
		if matched < filter.Offset {
			matched++
			continue
		}
		matched++
		result = append(result, art)
		if filter.Limit > 0 && len(result) == filter.Limit {
			break
		}
	}
	return result, nil
}

// Delete implements the storage.Store interface. It is idempotent: unknown
// and already-deleted identifiers are a no-op. The tombstone stays in the
// index so the identifier can never be assigned again.
func (s *MemStore) Delete(_ context.Context, id string) error {
	e := s.lookup(id)
	if e == nil {
		return nil
	}

	e.mu.Lock()
	e.art.Status = storage.StatusDeleted
	e.blob = nil
	e.mu.Unlock()
	return nil
}

// PurgeExpired implements the storage.Store interface. Each candidate is
// transitioned under its own lock, so a purge racing a fetch on the same
// artifact resolves to exactly one of: the fetch succeeds before the
// transition, or it observes the expiry afterwards.
func (s *MemStore) PurgeExpired(_ context.Context) (int, error) {
	snapshot := s.snapshot()
	now := s.config.Clock()

	purged := 0
	for _, e := range snapshot {
		e.mu.Lock()
		expired := e.art.Status == storage.StatusExpired ||
			(e.art.Status == storage.StatusActive && e.art.Expired(now))
		if expired {
			e.art.Status = storage.StatusDeleted
			e.blob = nil
			purged++
		}
		e.mu.Unlock()
	}
	return purged, nil
}

// Stats implements the storage.Store interface. ActiveCount and TotalBytes
// cover live entries only (lazy expiry applied); TotalDownloads accumulates
// across every current entry, tombstones included, so the figure survives
// expiry and deletion.
func (s *MemStore) Stats(_ context.Context) (storage.Stats, error) {
	snapshot := s.snapshot()
	now := s.config.Clock()

	var stats storage.Stats
	for _, e := range snapshot {
		e.mu.Lock()
		art := e.art
		e.mu.Unlock()

		stats.TotalDownloads += art.Downloads
		if art.Status == storage.StatusActive && !art.Expired(now) {
			stats.ActiveCount++
			stats.TotalBytes += art.Size
		}
	}
	return stats, nil
}

// lookup resolves an identifier to its entry under the read lock.
func (s *MemStore) lookup(id string) *entry {
	s.mu.RLock()
	e := s.entries[id]
	s.mu.RUnlock()
	return e
}

// snapshot copies the entry pointers in creation order under the read lock,
// giving store-wide operations a consistent view of which entries exist
// without holding the store lock during per-entry work.
func (s *MemStore) snapshot() []*entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entry, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.entries[id])
	}
	return out
}
