package entitlement

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/digitaltwinhq/storefront/pkg/identity"
)

// Watcher keeps the latest entitlement snapshot in step with identity
// changes. Each sign-in triggers a fetch tagged with a generation number;
// results whose generation no longer matches the latest are discarded, so a
// slow fetch for a previous identity can never overwrite the current one.
// Sign-out clears the snapshot immediately without waiting for anything.
type Watcher struct {
	reader   *Reader
	provider *identity.Provider

	generation atomic.Uint64

	mu      sync.RWMutex
	current *Record
	userID  *uuid.UUID

	updates chan struct{}
}

// NewWatcher creates a watcher over the given reader and session provider.
// Panics on nil dependencies to fail fast during initialization.
func NewWatcher(reader *Reader, provider *identity.Provider) *Watcher {
	if reader == nil {
		panic("entitlement: reader is required")
	}
	if provider == nil {
		panic("entitlement: identity provider is required")
	}
	return &Watcher{
		reader:   reader,
		provider: provider,
		updates:  make(chan struct{}, 1),
	}
}

// Run subscribes to identity changes and blocks until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) {
	sub := w.provider.Changes(ctx)
	defer sub.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-sub.Events():
			if !ok {
				return
			}
			w.handle(ctx, ev)
		}
	}
}

func (w *Watcher) handle(ctx context.Context, ev identity.Event) {
	gen := w.generation.Add(1)

	switch ev.Kind {
	case identity.EventSignedIn:
		if ev.UserID == nil {
			return
		}
		userID := *ev.UserID
		w.setIdentity(&userID)
		go w.fetch(ctx, gen, userID)
	case identity.EventSignedOut:
		w.setIdentity(nil)
		w.setRecord(gen, nil)
	}
}

// fetch performs one read and publishes the result unless it is stale.
func (w *Watcher) fetch(ctx context.Context, gen uint64, userID uuid.UUID) {
	record, err := w.reader.Fetch(ctx, userID)
	if err != nil {
		// Fetch failures render as the neutral state; the reader has
		// already logged the cause.
		record = nil
	}
	w.setRecord(gen, record)
}

func (w *Watcher) setIdentity(userID *uuid.UUID) {
	w.mu.Lock()
	w.userID = userID
	w.mu.Unlock()
}

func (w *Watcher) setRecord(gen uint64, record *Record) {
	if w.generation.Load() != gen {
		return // a newer identity change superseded this result
	}

	w.mu.Lock()
	w.current = record
	w.mu.Unlock()

	select {
	case w.updates <- struct{}{}:
	default:
	}
}

// Current returns the latest snapshot and whether an identity is signed in.
// The record is nil when the user has no entitlement or none is loaded yet.
func (w *Watcher) Current() (*Record, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.current == nil {
		return nil, w.userID != nil
	}
	recordCopy := *w.current
	return &recordCopy, true
}

// Updates signals after each accepted snapshot change. Signals coalesce;
// consumers re-read Current rather than counting notifications.
func (w *Watcher) Updates() <-chan struct{} {
	return w.updates
}
