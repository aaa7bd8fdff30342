package entitlement

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/digitaltwinhq/storefront/pkg/logger"
)

// Reader fetches the current entitlement for a signed-in identity.
// It performs exactly one store read per call; callers decide when a fetch
// is triggered (page render, identity change).
type Reader struct {
	store Store
	log   *slog.Logger
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithLogger sets the logger used for fetch diagnostics.
func WithLogger(log *slog.Logger) ReaderOption {
	return func(r *Reader) {
		if log != nil {
			r.log = log
		}
	}
}

// NewReader creates a Reader over the given projection store.
// Panics on a nil store to fail fast during initialization.
func NewReader(store Store, opts ...ReaderOption) *Reader {
	if store == nil {
		panic("entitlement: store is required")
	}

	r := &Reader{
		store: store,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Fetch returns the user's current entitlement record, or nil when the user
// has never started a purchase. A missing row and StatusNotStarted are
// collapsed into the same absent result because they render identically.
//
// Fetch failures are logged and wrapped with ErrFetchFailed; callers render
// the neutral state rather than surfacing the error to the user.
func (r *Reader) Fetch(ctx context.Context, userID uuid.UUID) (*Record, error) {
	record, err := r.store.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		r.log.ErrorContext(ctx, "failed to fetch entitlement",
			logger.Component("entitlement"),
			logger.UserID(userID),
			logger.Error(err),
		)
		return nil, errors.Join(ErrFetchFailed, err)
	}

	if !record.Started() {
		return nil, nil
	}

	return record, nil
}
