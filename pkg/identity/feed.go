package identity

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// EventKind classifies a session change.
type EventKind string

const (
	EventSignedIn  EventKind = "signed_in"
	EventSignedOut EventKind = "signed_out"
)

// Event describes a sign-in or sign-out. For sign-out events the UserID of
// the closed session is carried so consumers can invalidate derived state.
type Event struct {
	Kind   EventKind
	UserID *uuid.UUID
	Token  string
}

// Subscription receives session change events from a Feed.
type Subscription struct {
	ch     chan Event
	closed bool
	mu     sync.Mutex
}

// Events returns the channel delivering session change events.
// The channel is closed when the subscription or the feed is closed.
func (s *Subscription) Events() <-chan Event {
	return s.ch
}

// Close stops delivery and releases the subscription. Idempotent.
func (s *Subscription) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		close(s.ch)
		s.closed = true
	}
}

// send delivers an event without blocking; slow consumers drop events.
func (s *Subscription) send(ev Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	select {
	case s.ch <- ev:
		return true
	default:
		return false
	}
}

// Feed fans session change events out to subscribers.
// Delivery is non-blocking: a subscriber that falls behind misses events,
// which is acceptable because consumers re-read the session state on every
// event and only need to learn that something changed.
type Feed struct {
	mu          sync.RWMutex
	subscribers map[*Subscription]struct{}
	bufferSize  int
	closed      bool
	cleanupWg   sync.WaitGroup
}

// NewFeed creates a feed with the given per-subscriber buffer size.
// A minimum buffer of 1 is enforced so publishing never blocks.
func NewFeed(bufferSize int) *Feed {
	return &Feed{
		subscribers: make(map[*Subscription]struct{}),
		bufferSize:  max(bufferSize, 1),
	}
}

// Subscribe registers a subscriber whose lifetime is tied to ctx.
// When ctx is cancelled the subscription is removed and its channel closed.
func (f *Feed) Subscribe(ctx context.Context) *Subscription {
	f.mu.Lock()
	defer f.mu.Unlock()

	sub := &Subscription{ch: make(chan Event, f.bufferSize)}
	if f.closed {
		sub.Close()
		return sub
	}

	f.subscribers[sub] = struct{}{}

	if ctx.Done() != nil {
		f.cleanupWg.Add(1)
		go func() {
			defer f.cleanupWg.Done()
			<-ctx.Done()
			f.unsubscribe(sub)
		}()
	}

	return sub
}

// Publish sends an event to all active subscribers without blocking.
func (f *Feed) Publish(ev Event) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.closed {
		return
	}

	for sub := range f.subscribers {
		sub.send(ev)
	}
}

// Close shuts down the feed and all subscriptions. Safe for repeated calls.
func (f *Feed) Close() {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	f.closed = true
	for sub := range f.subscribers {
		sub.Close()
	}
	clear(f.subscribers)
	f.mu.Unlock()

	f.cleanupWg.Wait()
}

func (f *Feed) unsubscribe(sub *Subscription) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.subscribers, sub)
	sub.Close()
}
