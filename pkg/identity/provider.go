package identity

import (
	"context"
	"errors"
)

// Provider owns the current session state and its change feed.
// It replaces ambient session lookup: components hold a reference to the
// Provider and either resolve sessions per request or subscribe to changes.
type Provider struct {
	store Store
	feed  *Feed
}

// Option configures a Provider.
type Option func(*Provider)

// WithFeedBuffer sets the per-subscriber event buffer size.
func WithFeedBuffer(size int) Option {
	return func(p *Provider) {
		p.feed = NewFeed(size)
	}
}

// NewProvider creates a session provider backed by the given store.
// Panics on a nil store to fail fast during initialization.
func NewProvider(store Store, opts ...Option) *Provider {
	if store == nil {
		panic("identity: store is required")
	}

	p := &Provider{
		store: store,
		feed:  NewFeed(8),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Resolve returns the session for the given token, or an error when the
// token is unknown or expired. An empty token resolves to no session.
func (p *Provider) Resolve(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}
	return p.store.Get(ctx, token)
}

// Credential returns the bearer credential for an authenticated session.
// Returns ErrCredentialMissing when the session carries no usable credential
// even though an identity appears present.
func (p *Provider) Credential(ctx context.Context, session *Session) (string, error) {
	if !session.IsAuthenticated() {
		return "", ErrNotAuthenticated
	}
	if session.AccessToken == "" || session.IsExpired() {
		return "", ErrCredentialMissing
	}
	return session.AccessToken, nil
}

// SignIn records a session issued by the external auth backend and notifies
// subscribers of the identity change.
func (p *Provider) SignIn(ctx context.Context, session *Session) error {
	if !session.IsAuthenticated() {
		return ErrNotAuthenticated
	}

	if err := p.store.Create(ctx, session); err != nil {
		return err
	}

	p.feed.Publish(Event{Kind: EventSignedIn, UserID: session.UserID, Token: session.Token})
	return nil
}

// SignOut removes the session and notifies subscribers.
// Signing out an unknown token is not an error.
func (p *Provider) SignOut(ctx context.Context, token string) error {
	session, err := p.store.Get(ctx, token)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) || errors.Is(err, ErrSessionExpired) {
			return nil
		}
		return err
	}

	if err := p.store.Delete(ctx, token); err != nil {
		return err
	}

	p.feed.Publish(Event{Kind: EventSignedOut, UserID: session.UserID, Token: token})
	return nil
}

// Changes returns a subscription for session change events tied to ctx.
func (p *Provider) Changes(ctx context.Context) *Subscription {
	return p.feed.Subscribe(ctx)
}

// Close shuts down the change feed.
func (p *Provider) Close() {
	p.feed.Close()
}
