package checkout

import (
	"context"

	"github.com/digitaltwinhq/storefront/pkg/catalog"
)

// Request contains the data for one checkout-session creation attempt.
// It is ephemeral: nothing about it is persisted.
type Request struct {
	PriceID    string
	Mode       catalog.Mode
	SuccessURL string // redirect after successful payment
	CancelURL  string // redirect if the customer backs out
	CustomerID string // internal user ID, passed through to the processor
	Credential string // bearer credential of the purchasing identity
}

// Session represents a hosted checkout session created by the processor.
// The payment flow completes entirely outside this module; the URL is the
// only thing the storefront needs.
type Session struct {
	URL string
	ID  string // processor's session identifier, may be empty
}

// Provider creates hosted checkout sessions.
// Implementations talk to the hosted processor either directly through its
// SDK or through a serverless checkout endpoint in front of it.
type Provider interface {
	CreateSession(ctx context.Context, req Request) (*Session, error)
}
