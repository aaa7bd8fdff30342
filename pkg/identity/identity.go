package identity

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/google/uuid"
)

// Session represents a resolved identity with its bearer credential.
// Sign-in and sign-out are owned by the external auth backend; this package
// only tracks the session the backend issued and exposes it explicitly to
// the components that need it.
type Session struct {
	ID          uuid.UUID  `json:"id"`
	Token       string     `json:"token"`
	UserID      *uuid.UUID `json:"user_id,omitempty"`
	Email       string     `json:"email,omitempty"`
	AccessToken string     `json:"access_token,omitempty"`
	ExpiresAt   time.Time  `json:"expires_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

// NewSession creates a session for an authenticated identity.
func NewSession(userID uuid.UUID, email, accessToken string, ttl time.Duration) (*Session, error) {
	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Session{
		ID:          uuid.New(),
		Token:       token,
		UserID:      &userID,
		Email:       email,
		AccessToken: accessToken,
		ExpiresAt:   now.Add(ttl),
		CreatedAt:   now,
	}, nil
}

// IsAuthenticated returns true if the session has a user ID.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.UserID != nil
}

// IsExpired returns true if the session has expired.
func (s *Session) IsExpired() bool {
	return s != nil && time.Now().After(s.ExpiresAt)
}

// generateToken returns a URL-safe random session token.
func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", ErrTokenGeneration
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
