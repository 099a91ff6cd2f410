package views

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"savora/models"

	"go.mongodb.org/mongo-driver/bson"
)

// fake store that applies patches to an in-memory meta map
type fakeMetaStore struct {
	mu       sync.Mutex
	metas    map[string]models.Meta
	fetchErr error
	updErr   error
}

func newFakeMetaStore() *fakeMetaStore {
	return &fakeMetaStore{metas: map[string]models.Meta{}}
}

func (f *fakeMetaStore) FetchMeta(_ context.Context, id string) (models.Meta, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fetchErr != nil {
		return models.Meta{}, f.fetchErr
	}
	return f.metas[id], nil
}

func (f *fakeMetaStore) UpdateMeta(_ context.Context, id string, patch bson.M) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updErr != nil {
		return f.updErr
	}
	meta := f.metas[id]
	if v, ok := patch["views"].(int); ok {
		meta.Views = v
	}
	if lv, ok := patch["last_viewed"].(time.Time); ok {
		meta.LastViewed = lv
	}
	f.metas[id] = meta
	return nil
}

func (f *fakeMetaStore) views(id string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.metas[id].Views
}

func TestIncrementFromAbsentMeta(t *testing.T) {
	fs := newFakeMetaStore()
	tracker := NewTracker(fs)

	tracker.Increment(context.Background(), "r1")
	if got := fs.views("r1"); got != 1 {
		t.Fatalf("expected views 1, got %d", got)
	}
}

func TestIncrementSequential(t *testing.T) {
	fs := newFakeMetaStore()
	tracker := NewTracker(fs)

	tracker.Increment(context.Background(), "r1")
	tracker.Increment(context.Background(), "r1")
	if got := fs.views("r1"); got != 2 {
		t.Fatalf("expected views 2, got %d", got)
	}

	if fs.metas["r1"].LastViewed.IsZero() {
		t.Error("last_viewed not stamped")
	}
}

func TestIncrementSwallowsFailures(t *testing.T) {
	fs := newFakeMetaStore()
	fs.fetchErr = errors.New("boom")
	tracker := NewTracker(fs)

	// must not panic or propagate
	tracker.Increment(context.Background(), "r1")

	fs.fetchErr = nil
	fs.updErr = errors.New("boom")
	tracker.Increment(context.Background(), "r1")

	if got := fs.views("r1"); got != 0 {
		t.Fatalf("expected views unchanged, got %d", got)
	}
}

func TestIncrementAsyncDrains(t *testing.T) {
	fs := newFakeMetaStore()
	tracker := NewTracker(fs)

	tracker.IncrementAsync("r1")
	tracker.IncrementAsync("r2")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	tracker.Wait(ctx)

	if fs.views("r1") != 1 || fs.views("r2") != 1 {
		t.Fatalf("async increments not applied: r1=%d r2=%d", fs.views("r1"), fs.views("r2"))
	}
}
