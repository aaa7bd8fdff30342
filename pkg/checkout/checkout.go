package checkout

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/digitaltwinhq/storefront/pkg/catalog"
	"github.com/digitaltwinhq/storefront/pkg/identity"
	"github.com/digitaltwinhq/storefront/pkg/logger"
)

// ReturnURLs are the navigation targets the processor redirects to when the
// hosted flow finishes.
type ReturnURLs struct {
	Success string
	Cancel  string
}

// Initiator starts hosted checkout flows.
//
// It validates the session before any network traffic, issues exactly one
// request per attempt, and guards against duplicate submissions per
// (session, catalog entry) while a request is outstanding. Two different
// catalog entries may submit concurrently; the result is a full-page
// navigation either way.
type Initiator struct {
	provider Provider
	sessions *identity.Provider
	inflight sync.Map
	log      *slog.Logger
}

// InitiatorOption configures an Initiator.
type InitiatorOption func(*Initiator)

// WithInitiatorLogger sets the logger used for checkout diagnostics.
func WithInitiatorLogger(log *slog.Logger) InitiatorOption {
	return func(i *Initiator) {
		if log != nil {
			i.log = log
		}
	}
}

// NewInitiator creates an Initiator over the given provider and session
// provider. Panics on nil dependencies to fail fast during initialization.
func NewInitiator(provider Provider, sessions *identity.Provider, opts ...InitiatorOption) *Initiator {
	if provider == nil {
		panic("checkout: provider is required")
	}
	if sessions == nil {
		panic("checkout: identity provider is required")
	}

	i := &Initiator{
		provider: provider,
		sessions: sessions,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Start requests a hosted checkout session for the given catalog entry and
// returns the URL the browser must navigate to. The navigation itself is
// the caller's responsibility.
//
// An unauthenticated session fails with ErrAuthRequired before any network
// call. A session whose credential cannot be obtained fails with
// ErrSessionMissing. Failed provider responses surface as RequestError with
// the processor's message. No retry is attempted.
func (i *Initiator) Start(ctx context.Context, entry catalog.Entry, session *identity.Session, urls ReturnURLs) (string, error) {
	if !session.IsAuthenticated() {
		return "", ErrAuthRequired
	}

	credential, err := i.sessions.Credential(ctx, session)
	if err != nil {
		return "", errors.Join(ErrSessionMissing, err)
	}

	key := session.Token + "|" + entry.PriceID
	if _, loaded := i.inflight.LoadOrStore(key, struct{}{}); loaded {
		return "", ErrInFlight
	}
	defer i.inflight.Delete(key)

	checkoutSession, err := i.provider.CreateSession(ctx, Request{
		PriceID:    entry.PriceID,
		Mode:       entry.Mode,
		SuccessURL: urls.Success,
		CancelURL:  urls.Cancel,
		CustomerID: session.UserID.String(),
		Credential: credential,
	})
	if err != nil {
		i.log.ErrorContext(ctx, "checkout session creation failed",
			logger.Component("checkout"),
			logger.PriceID(entry.PriceID),
			logger.UserID(session.UserID),
			logger.Error(err),
		)
		return "", err
	}

	return checkoutSession.URL, nil
}
