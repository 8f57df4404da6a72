package sweeper

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/leofalp/deckgen/providers/storage"
	"github.com/leofalp/deckgen/providers/storage/memstore"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// failingStore wraps a Store and fails every purge. Used to verify the run
// loop survives transient store errors.
type failingStore struct {
	storage.Store
	purgeCalls int
	mu         sync.Mutex
}

func (f *failingStore) PurgeExpired(context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.purgeCalls++
	return 0, errors.New("store offline")
}

func (f *failingStore) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.purgeCalls
}

// TestSweepNow_PurgesExpired verifies a single pass removes exactly the
// entries past their retention window.
func TestSweepNow_PurgesExpired(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	store := memstore.NewWithConfig(memstore.Config{Clock: clock.Now})

	ctx := context.Background()
	for range 3 {
		if _, err := store.Create(ctx, []byte("deck"), "deck.md", time.Hour); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if _, err := store.Create(ctx, []byte("deck"), "fresh.md", 48*time.Hour); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clock.Advance(2 * time.Hour)

	purged, err := New(store, Config{}).SweepNow(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if purged != 3 {
		t.Errorf("purged %d artifacts, want 3", purged)
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.ActiveCount != 1 {
		t.Errorf("got %d live artifacts after sweep, want 1", stats.ActiveCount)
	}
}

// TestSweepNow_EmptyStore verifies sweeping an empty store is a no-op.
func TestSweepNow_EmptyStore(t *testing.T) {
	purged, err := New(memstore.New(), Config{}).SweepNow(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if purged != 0 {
		t.Errorf("purged %d artifacts from an empty store", purged)
	}
}

// TestSweepNow_PropagatesStoreError verifies a failing purge surfaces to the
// direct caller.
func TestSweepNow_PropagatesStoreError(t *testing.T) {
	store := &failingStore{Store: memstore.New()}

	if _, err := New(store, Config{}).SweepNow(context.Background()); err == nil {
		t.Fatal("expected an error from the failing store")
	}
}

// TestRun_StopsOnContextCancel verifies Run returns ctx.Err() promptly after
// cancellation.
func TestRun_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sweeper := New(memstore.New(), Config{Interval: time.Millisecond})

	done := make(chan error, 1)
	go func() { done <- sweeper.Run(ctx) }()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancellation")
	}
}

// TestRun_SurvivesStoreFailures verifies the loop keeps ticking when
// individual sweeps fail.
func TestRun_SurvivesStoreFailures(t *testing.T) {
	store := &failingStore{Store: memstore.New()}
	sweeper := New(store, Config{Interval: time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- sweeper.Run(ctx) }()

	deadline := time.After(time.Second)
	for store.calls() < 3 {
		select {
		case <-deadline:
			t.Fatalf("loop stalled after %d purge calls", store.calls())
		case <-time.After(time.Millisecond):
		}
	}
	cancel()
	<-done
}
