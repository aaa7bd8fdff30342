package entitlement

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStore implements Store over the Postgres projection table maintained by
// the external processor's webhook pipeline.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore creates a Postgres-backed entitlement store.
// Panics on a nil pool to fail fast during initialization.
func NewPGStore(pool *pgxpool.Pool) *PGStore {
	if pool == nil {
		panic("entitlement: pgx pool is required")
	}
	return &PGStore{pool: pool}
}

const getQuery = `
SELECT status, price_id, current_period_end, cancel_at_period_end
FROM entitlements
WHERE user_id = $1`

func (s *PGStore) Get(ctx context.Context, userID uuid.UUID) (*Record, error) {
	var (
		status            string
		priceID           *string
		currentPeriodEnd  *time.Time
		cancelAtPeriodEnd bool
	)

	err := s.pool.QueryRow(ctx, getQuery, userID).Scan(&status, &priceID, &currentPeriodEnd, &cancelAtPeriodEnd)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, errors.Join(ErrStoreFailure, err)
	}

	record := &Record{
		Status:            Status(status),
		CurrentPeriodEnd:  currentPeriodEnd,
		CancelAtPeriodEnd: cancelAtPeriodEnd,
	}
	if priceID != nil {
		record.PriceID = *priceID
	}

	return record, nil
}
