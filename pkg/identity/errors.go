package identity

import "errors"

var (
	// ErrSessionNotFound indicates no session was found for the token.
	ErrSessionNotFound = errors.New("identity.session_not_found")

	// ErrSessionExpired indicates the session has expired.
	ErrSessionExpired = errors.New("identity.session_expired")

	// ErrInvalidSession indicates a malformed session value.
	ErrInvalidSession = errors.New("identity.invalid_session")

	// ErrNotAuthenticated indicates the session carries no identity.
	ErrNotAuthenticated = errors.New("identity.not_authenticated")

	// ErrCredentialMissing indicates a credential could not be obtained
	// even though an identity appears present.
	ErrCredentialMissing = errors.New("identity.credential_missing")

	// ErrTokenGeneration indicates token generation failed.
	ErrTokenGeneration = errors.New("identity.token_generation_failed")

	// ErrStoreFailure indicates the backing store failed.
	ErrStoreFailure = errors.New("identity.store_failure")
)
