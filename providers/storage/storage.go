package storage

import (
	"context"
	"errors"
	"time"
)

// Lifecycle errors. Fetch distinguishes "never existed or already deleted"
// from "existed but aged out" so callers can surface a clear
// "no longer available" outcome distinct from "never existed".
var (
	// ErrNotFound is returned when no entry exists for an identifier, or
	// the entry has been deleted. Identifiers are never reused, so this is
	// permanent for a given id once observed after deletion.
	ErrNotFound = errors.New("deckgen: artifact not found")

	// ErrExpired is returned when an artifact's retention window has
	// passed, whether or not the sweeper has purged it yet.
	ErrExpired = errors.New("deckgen: artifact expired")

	// ErrStorageFailure is returned when the backing medium rejects a
	// write. No partial artifact is left behind.
	ErrStorageFailure = errors.New("deckgen: storage failure")
)

// Status is an artifact's lifecycle state.
type Status string

const (
	StatusActive  Status = "active"
	StatusExpired Status = "expired"
	StatusDeleted Status = "deleted"
)

// Artifact is the metadata the store owns for one generated document. The
// identifier is opaque and unguessable; the display filename is returned for
// presentation but never used for addressing.
type Artifact struct {
	ID        string    `json:"id"`
	Filename  string    `json:"filename"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
	Downloads int64     `json:"download_count"`
	Status    Status    `json:"status"`
}

// Expired reports whether the artifact's retention window has passed at now.
func (a Artifact) Expired(now time.Time) bool {
	return !now.Before(a.ExpiresAt)
}

// ListFilter selects and pages artifact metadata. The zero value lists active
// artifacts from the newest, unbounded.
type ListFilter struct {
	// Status restricts results to one lifecycle state. Empty means active.
	Status Status

	// Offset skips that many matching entries in creation order (newest
	// first).
	Offset int

	// Limit bounds the number of returned entries; zero means no bound.
	Limit int
}

// Stats is the aggregate view over current entries, computed at call time.
type Stats struct {
	ActiveCount    int   `json:"active_count"`
	TotalBytes     int64 `json:"total_bytes"`
	TotalDownloads int64 `json:"total_downloads"`
}

// Store owns artifact metadata and blob lifetime. Implementations must
// serialize per-artifact operations at the granularity of a single identifier
// and give store-wide operations a consistent snapshot, without a whole-store
// lock around per-artifact work.
type Store interface {
	// Create persists blob under a fresh, unpredictable identifier and
	// returns the artifact metadata. It fails only with a wrapped
	// [ErrStorageFailure], leaving nothing behind.
	Create(ctx context.Context, blob []byte, filename string, retention time.Duration) (*Artifact, error)

	// Fetch returns the artifact and a copy of its blob, counting the read
	// as one download atomically with it. It fails with [ErrNotFound] for
	// unknown or deleted identifiers and [ErrExpired] for entries past
	// their retention window (checked lazily, independent of the sweeper).
	Fetch(ctx context.Context, id string) (*Artifact, []byte, error)

	// List returns artifact metadata matching filter, newest first.
	List(ctx context.Context, filter ListFilter) ([]Artifact, error)

	// Delete transitions the artifact to deleted and releases its blob.
	// Deleting an unknown or already-deleted identifier is a no-op.
	Delete(ctx context.Context, id string) error

	// PurgeExpired removes every active entry whose retention window has
	// passed and returns how many were removed.
	PurgeExpired(ctx context.Context) (int, error)

	// Stats aggregates over current entries at call time.
	Stats(ctx context.Context) (Stats, error)
}
