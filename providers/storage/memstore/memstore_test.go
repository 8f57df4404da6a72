package memstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/leofalp/deckgen/providers/storage"
)

// fakeClock is an adjustable time source for expiry tests.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newClockedStore() (*MemStore, *fakeClock) {
	clock := newFakeClock()
	return NewWithConfig(Config{Clock: clock.Now}), clock
}

// TestCreateAndFetch verifies the basic round trip: metadata fields, blob
// integrity, and the download counter increment.
func TestCreateAndFetch(t *testing.T) {
	store, _ := newClockedStore()
	blob := []byte("# deck\n")

	art, err := store.Create(context.Background(), blob, "deck.md", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if art.ID == "" {
		t.Fatal("artifact has no identifier")
	}
	if art.Size != int64(len(blob)) {
		t.Errorf("size = %d, want %d", art.Size, len(blob))
	}
	if art.Status != storage.StatusActive {
		t.Errorf("status = %q, want active", art.Status)
	}
	if !art.ExpiresAt.Equal(art.CreatedAt.Add(time.Hour)) {
		t.Errorf("expiry %v not creation %v + retention", art.ExpiresAt, art.CreatedAt)
	}

	fetched, got, err := store.Fetch(context.Background(), art.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, blob) {
		t.Error("fetched blob differs from stored blob")
	}
	if fetched.Downloads != 1 {
		t.Errorf("downloads = %d, want 1", fetched.Downloads)
	}
}

// TestFetch_ReturnsCopy verifies that mutating a fetched blob does not
// corrupt the stored one.
func TestFetch_ReturnsCopy(t *testing.T) {
	store, _ := newClockedStore()
	art, _ := store.Create(context.Background(), []byte("original"), "a.md", time.Hour)

	_, got, _ := store.Fetch(context.Background(), art.ID)
	got[0] = 'X'

	_, again, _ := store.Fetch(context.Background(), art.ID)
	if string(again) != "original" {
		t.Errorf("stored blob corrupted: %q", again)
	}
}

// TestCreate_Rejections verifies the create-time failure modes all wrap
// ErrStorageFailure.
func TestCreate_Rejections(t *testing.T) {
	store := NewWithConfig(Config{MaxBlobBytes: 8})
	ctx := context.Background()

	cases := []struct {
		name      string
		blob      []byte
		filename  string
		retention time.Duration
	}{
		{"empty blob", nil, "a.md", time.Hour},
		{"oversized blob", []byte("123456789"), "a.md", time.Hour},
		{"empty filename", []byte("x"), "", time.Hour},
		{"zero retention", []byte("x"), "a.md", 0},
		{"negative retention", []byte("x"), "a.md", -time.Hour},
	}

	for _, tc := range cases {
		if _, err := store.Create(ctx, tc.blob, tc.filename, tc.retention); !errors.Is(err, storage.ErrStorageFailure) {
			t.Errorf("%s: expected ErrStorageFailure, got %v", tc.name, err)
		}
	}
}

// TestFetch_UnknownID verifies unknown identifiers fail with ErrNotFound.
func TestFetch_UnknownID(t *testing.T) {
	store, _ := newClockedStore()

	_, _, err := store.Fetch(context.Background(), "no-such-id")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// TestFetch_ExpiryBoundary verifies the window edge: an artifact is served
// right up to the instant before ExpiresAt and rejected from ExpiresAt on,
// with no sweep involved.
func TestFetch_ExpiryBoundary(t *testing.T) {
	store, clock := newClockedStore()
	art, _ := store.Create(context.Background(), []byte("x"), "a.md", time.Hour)

	clock.Advance(time.Hour - time.Nanosecond)
	if _, _, err := store.Fetch(context.Background(), art.ID); err != nil {
		t.Fatalf("fetch inside window failed: %v", err)
	}

	clock.Advance(time.Nanosecond)
	if _, _, err := store.Fetch(context.Background(), art.ID); !errors.Is(err, storage.ErrExpired) {
		t.Fatalf("fetch at expiry instant: expected ErrExpired, got %v", err)
	}
}

// TestFetch_ExpiredNeverRevives verifies that once expiry has been observed
// the artifact stays expired even for later fetches.
func TestFetch_ExpiredNeverRevives(t *testing.T) {
	store, clock := newClockedStore()
	art, _ := store.Create(context.Background(), []byte("x"), "a.md", time.Minute)

	clock.Advance(2 * time.Minute)
	if _, _, err := store.Fetch(context.Background(), art.ID); !errors.Is(err, storage.ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
	if _, _, err := store.Fetch(context.Background(), art.ID); !errors.Is(err, storage.ErrExpired) {
		t.Fatalf("second fetch: expected ErrExpired, got %v", err)
	}
}

// TestDelete_Idempotent verifies deletes are no-ops on unknown and repeated
// identifiers, and that a deleted artifact fetches as not found, not expired.
func TestDelete_Idempotent(t *testing.T) {
	store, clock := newClockedStore()
	ctx := context.Background()

	if err := store.Delete(ctx, "never-existed"); err != nil {
		t.Fatalf("deleting unknown id: %v", err)
	}

	art, _ := store.Create(ctx, []byte("x"), "a.md", time.Minute)
	if err := store.Delete(ctx, art.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := store.Delete(ctx, art.ID); err != nil {
		t.Fatalf("second delete: %v", err)
	}

	// Even past the retention window, a deleted id reports not found.
	clock.Advance(time.Hour)
	if _, _, err := store.Fetch(ctx, art.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

// TestFetch_ConcurrentDownloadAccounting verifies that N concurrent fetches
// produce exactly N download counts with no lost increments.
func TestFetch_ConcurrentDownloadAccounting(t *testing.T) {
	store, _ := newClockedStore()
	art, _ := store.Create(context.Background(), []byte("payload"), "a.md", time.Hour)

	const n = 64
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			if _, _, err := store.Fetch(context.Background(), art.ID); err != nil {
				t.Errorf("concurrent fetch: %v", err)
			}
		}()
	}
	wg.Wait()

	stats, err := store.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalDownloads != n {
		t.Errorf("downloads = %d, want %d", stats.TotalDownloads, n)
	}
}

// TestConcurrentMixedOperations exercises create, fetch, list, and delete in
// parallel; run with -race this is the store's interleaving check.
func TestConcurrentMixedOperations(t *testing.T) {
	store, _ := newClockedStore()
	ctx := context.Background()

	seed, _ := store.Create(ctx, []byte("seed"), "seed.md", time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(4)
		go func(i int) {
			defer wg.Done()
			_, _ = store.Create(ctx, []byte("blob"), fmt.Sprintf("f%d.md", i), time.Hour)
		}(i)
		go func() {
			defer wg.Done()
			_, _, _ = store.Fetch(ctx, seed.ID)
		}()
		go func() {
			defer wg.Done()
			_, _ = store.List(ctx, storage.ListFilter{})
		}()
		go func() {
			defer wg.Done()
			_, _ = store.Stats(ctx)
		}()
	}
	wg.Wait()
}

// TestList_FilterAndPagination verifies newest-first ordering, the default
// active filter, offset/limit paging, and the expired view.
func TestList_FilterAndPagination(t *testing.T) {
	store, clock := newClockedStore()
	ctx := context.Background()

	var ids []string
	for i := 0; i < 5; i++ {
		clock.Advance(time.Second) // distinct creation times, oldest first
		art, err := store.Create(ctx, []byte("x"), fmt.Sprintf("f%d.md", i), time.Hour)
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		ids = append(ids, art.ID)
	}

	all, err := store.List(ctx, storage.ListFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("got %d artifacts, want 5", len(all))
	}
	if all[0].ID != ids[4] || all[4].ID != ids[0] {
		t.Error("list is not newest first")
	}

	page, err := store.List(ctx, storage.ListFilter{Offset: 1, Limit: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page) != 2 || page[0].ID != ids[3] || page[1].ID != ids[2] {
		t.Errorf("unexpected page: %+v", page)
	}

	// Everything expires; default listing empties, expired view fills.
	clock.Advance(2 * time.Hour)

	active, _ := store.List(ctx, storage.ListFilter{})
	if len(active) != 0 {
		t.Errorf("got %d active after expiry, want 0", len(active))
	}

	expired, _ := store.List(ctx, storage.ListFilter{Status: storage.StatusExpired})
	if len(expired) != 5 {
		t.Errorf("got %d expired, want 5", len(expired))
	}
}

// TestPurgeExpired verifies the sweep removes exactly the aged-out entries
// and leaves live ones untouched.
func TestPurgeExpired(t *testing.T) {
	store, clock := newClockedStore()
	ctx := context.Background()

	short, _ := store.Create(ctx, []byte("x"), "short.md", time.Minute)
	long, _ := store.Create(ctx, []byte("x"), "long.md", time.Hour)

	clock.Advance(5 * time.Minute)

	purged, err := store.PurgeExpired(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if purged != 1 {
		t.Errorf("purged = %d, want 1", purged)
	}

	if _, _, err := store.Fetch(ctx, short.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("purged artifact: expected ErrNotFound, got %v", err)
	}
	if _, _, err := store.Fetch(ctx, long.ID); err != nil {
		t.Errorf("live artifact should survive the sweep: %v", err)
	}

	again, _ := store.PurgeExpired(ctx)
	if again != 0 {
		t.Errorf("second sweep purged %d, want 0", again)
	}
}

// TestStats verifies the aggregate view: live-only counts and bytes, download
// totals surviving expiry and deletion.
func TestStats(t *testing.T) {
	store, clock := newClockedStore()
	ctx := context.Background()

	a, _ := store.Create(ctx, []byte("aaaa"), "a.md", time.Minute)
	b, _ := store.Create(ctx, []byte("bbbbbbbb"), "b.md", time.Hour)

	_, _, _ = store.Fetch(ctx, a.ID)
	_, _, _ = store.Fetch(ctx, a.ID)
	_, _, _ = store.Fetch(ctx, b.ID)

	stats, _ := store.Stats(ctx)
	if stats.ActiveCount != 2 || stats.TotalBytes != 12 || stats.TotalDownloads != 3 {
		t.Errorf("unexpected stats: %+v", stats)
	}

	// a expires; its bytes leave the aggregate but its downloads remain.
	clock.Advance(5 * time.Minute)
	stats, _ = store.Stats(ctx)
	if stats.ActiveCount != 1 || stats.TotalBytes != 8 || stats.TotalDownloads != 3 {
		t.Errorf("unexpected stats after expiry: %+v", stats)
	}

	_ = store.Delete(ctx, b.ID)
	stats, _ = store.Stats(ctx)
	if stats.ActiveCount != 0 || stats.TotalBytes != 0 || stats.TotalDownloads != 3 {
		t.Errorf("unexpected stats after delete: %+v", stats)
	}
}
