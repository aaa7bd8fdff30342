package identity_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitaltwinhq/storefront/pkg/identity"
)

func newTestSession(t *testing.T, ttl time.Duration) *identity.Session {
	t.Helper()
	session, err := identity.NewSession(uuid.New(), "user@example.com", "access-token", ttl)
	require.NoError(t, err)
	return session
}

func TestProviderResolve(t *testing.T) {
	ctx := context.Background()
	provider := identity.NewProvider(identity.NewMemoryStore(0))
	defer provider.Close()

	session := newTestSession(t, time.Hour)
	require.NoError(t, provider.SignIn(ctx, session))

	t.Run("known token", func(t *testing.T) {
		got, err := provider.Resolve(ctx, session.Token)
		require.NoError(t, err)
		assert.Equal(t, session.UserID, got.UserID)
		assert.Equal(t, "user@example.com", got.Email)
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := provider.Resolve(ctx, "")
		require.ErrorIs(t, err, identity.ErrSessionNotFound)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := provider.Resolve(ctx, "nope")
		require.ErrorIs(t, err, identity.ErrSessionNotFound)
	})
}

func TestProviderCredential(t *testing.T) {
	ctx := context.Background()
	provider := identity.NewProvider(identity.NewMemoryStore(0))
	defer provider.Close()

	t.Run("authenticated session", func(t *testing.T) {
		session := newTestSession(t, time.Hour)
		cred, err := provider.Credential(ctx, session)
		require.NoError(t, err)
		assert.Equal(t, "access-token", cred)
	})

	t.Run("nil session", func(t *testing.T) {
		_, err := provider.Credential(ctx, nil)
		require.ErrorIs(t, err, identity.ErrNotAuthenticated)
	})

	t.Run("missing access token", func(t *testing.T) {
		session := newTestSession(t, time.Hour)
		session.AccessToken = ""
		_, err := provider.Credential(ctx, session)
		require.ErrorIs(t, err, identity.ErrCredentialMissing)
	})

	t.Run("expired session", func(t *testing.T) {
		session := newTestSession(t, time.Hour)
		session.ExpiresAt = time.Now().Add(-time.Minute)
		_, err := provider.Credential(ctx, session)
		require.ErrorIs(t, err, identity.ErrCredentialMissing)
	})
}

func TestProviderSignOut(t *testing.T) {
	ctx := context.Background()
	provider := identity.NewProvider(identity.NewMemoryStore(0))
	defer provider.Close()

	session := newTestSession(t, time.Hour)
	require.NoError(t, provider.SignIn(ctx, session))
	require.NoError(t, provider.SignOut(ctx, session.Token))

	_, err := provider.Resolve(ctx, session.Token)
	require.ErrorIs(t, err, identity.ErrSessionNotFound)

	// Signing out an already removed token is not an error.
	require.NoError(t, provider.SignOut(ctx, session.Token))
}

func TestProviderChanges(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	provider := identity.NewProvider(identity.NewMemoryStore(0))
	defer provider.Close()

	sub := provider.Changes(ctx)

	session := newTestSession(t, time.Hour)
	require.NoError(t, provider.SignIn(ctx, session))

	select {
	case ev := <-sub.Events():
		assert.Equal(t, identity.EventSignedIn, ev.Kind)
		assert.Equal(t, session.UserID, ev.UserID)
		assert.Equal(t, session.Token, ev.Token)
	case <-time.After(time.Second):
		t.Fatal("expected sign-in event")
	}

	require.NoError(t, provider.SignOut(ctx, session.Token))

	select {
	case ev := <-sub.Events():
		assert.Equal(t, identity.EventSignedOut, ev.Kind)
	case <-time.After(time.Second):
		t.Fatal("expected sign-out event")
	}
}
