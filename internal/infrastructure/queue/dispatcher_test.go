package queue

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hobbie/hobbie-backend/internal/core/ports"
)

type recordingStore struct {
	mu      sync.Mutex
	deleted []string
	failOn  string
}

func (s *recordingStore) Store(context.Context, string, string, io.Reader, int64) (*ports.StoredFile, error) {
	return &ports.StoredFile{Key: "k"}, nil
}

func (s *recordingStore) Open(context.Context, string) (io.ReadCloser, error) {
	return nil, errors.New("not implemented")
}

func (s *recordingStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if key == s.failOn {
		return errors.New("boom")
	}
	s.deleted = append(s.deleted, key)
	return nil
}

func TestCleanupDispatcher_DeletesInBackground(t *testing.T) {
	store := &recordingStore{failOn: "bad.png"}
	d := NewCleanupDispatcher(store, 3, zerolog.Nop())
	d.Start(context.Background())

	keys := []string{"a.png", "b.png", "bad.png", "c.png"}
	for _, k := range keys {
		if err := d.Delete(context.Background(), k); err != nil {
			t.Fatalf("Delete(%q): %v", k, err)
		}
	}
	d.Close()

	if len(store.deleted) != 3 {
		t.Fatalf("expected 3 deletions, got %v", store.deleted)
	}
	seen := map[string]bool{}
	for _, k := range store.deleted {
		seen[k] = true
	}
	for _, k := range []string{"a.png", "b.png", "c.png"} {
		if !seen[k] {
			t.Fatalf("expected %q to be deleted, got %v", k, store.deleted)
		}
	}
}

func TestCleanupDispatcher_SameKeySameWorker(t *testing.T) {
	d := NewCleanupDispatcher(&recordingStore{}, 8, zerolog.Nop())
	first := d.shardIndex("2f1c.png")
	for range 10 {
		if got := d.shardIndex("2f1c.png"); got != first {
			t.Fatalf("shard changed: %d vs %d", got, first)
		}
	}
}

func TestCleanupDispatcher_PassesThroughStore(t *testing.T) {
	d := NewCleanupDispatcher(&recordingStore{}, 0, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
	f, err := d.Store(context.Background(), "x.png", "image/png", nil, 0)
	if err != nil || f.Key != "k" {
		t.Fatalf("Store = %v, %v", f, err)
	}
}

func TestCleanupDispatcher_DeleteHonoursCancelledContext(t *testing.T) {
	d := NewCleanupDispatcher(&recordingStore{}, 1, zerolog.Nop())
	// No workers started: fill the single buffer, then a cancelled delete must not block.
	for range channelBuffer {
		if err := d.Delete(context.Background(), "k.png"); err != nil {
			t.Fatalf("Delete: %v", err)
		}
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := d.Delete(ctx, "k.png"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
