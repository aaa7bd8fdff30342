package entitlement

import "errors"

var (
	// ErrNotFound indicates no projection row exists for the user.
	ErrNotFound = errors.New("entitlement record not found")

	// ErrFetchFailed indicates the projection read failed.
	// Callers render the neutral state instead of surfacing this error.
	ErrFetchFailed = errors.New("failed to fetch entitlement")

	// ErrStoreFailure indicates the backing store failed.
	ErrStoreFailure = errors.New("entitlement store failure")

	// ErrMigrationFailed indicates the projection migration could not run.
	ErrMigrationFailed = errors.New("failed to apply entitlement migrations")
)
