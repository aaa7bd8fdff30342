package entitlement

import (
	"context"

	"github.com/google/uuid"
)

// Store defines read access to the entitlement projection.
// Each identity has at most one current record, so UserID is the key.
// The projection is external and read-only; there is no Save.
type Store interface {
	// Get retrieves the current record for a user.
	// Returns ErrNotFound when no row exists.
	Get(ctx context.Context, userID uuid.UUID) (*Record, error)
}
