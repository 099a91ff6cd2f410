// Package views counts recipe page views. Counting is best-effort
// telemetry: it runs off the render path and no failure here is allowed to
// break recipe display.
package views

import (
	"context"
	"log"
	"sync"
	"time"

	"savora/models"

	"go.mongodb.org/mongo-driver/bson"
)

// MetaStore is the slice of the store gateway the tracker needs.
type MetaStore interface {
	FetchMeta(ctx context.Context, id string) (models.Meta, error)
	UpdateMeta(ctx context.Context, id string, patch bson.M) error
}

type Tracker struct {
	store MetaStore
	wg    sync.WaitGroup
}

func NewTracker(store MetaStore) *Tracker {
	return &Tracker{store: store}
}

// Increment bumps the view counter by one and stamps last_viewed. Every call
// adds one, including rapid repeated loads; there is no dedup window. Two
// concurrent calls for the same id can both read the same base count and
// lose one increment. Accepted: this is a read-then-write counter, not a
// ledger. All failures are logged and swallowed.
func (t *Tracker) Increment(ctx context.Context, id string) {
	meta, err := t.store.FetchMeta(ctx, id)
	if err != nil {
		log.Println("Failed to fetch current meta:", err)
		return
	}

	patch := bson.M{
		"views":       meta.Views + 1,
		"last_viewed": time.Now().UTC(),
	}
	if err := t.store.UpdateMeta(ctx, id, patch); err != nil {
		log.Println("Failed to increment views:", err)
	}
}

// IncrementAsync runs Increment on a detached goroutine so the caller can
// return rendered output immediately. In-flight increments are tracked so
// shutdown can drain them via Wait.
func (t *Tracker) IncrementAsync(id string) {
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		t.Increment(ctx, id)
	}()
}

// Wait blocks until all in-flight increments finish or ctx expires.
// Abandoning stragglers at process exit is an accepted best-effort loss.
func (t *Tracker) Wait(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		t.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		log.Println("Gave up waiting for in-flight view updates:", ctx.Err())
	}
}
