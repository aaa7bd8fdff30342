package identity_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitaltwinhq/storefront/pkg/identity"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		store := identity.NewMemoryStore(0)
		session := newTestSession(t, time.Hour)

		require.NoError(t, store.Create(ctx, session))

		got, err := store.Get(ctx, session.Token)
		require.NoError(t, err)
		assert.Equal(t, session.Email, got.Email)

		// The store hands out copies, not shared pointers.
		got.Email = "mutated@example.com"
		again, err := store.Get(ctx, session.Token)
		require.NoError(t, err)
		assert.Equal(t, session.Email, again.Email)
	})

	t.Run("nil session rejected", func(t *testing.T) {
		store := identity.NewMemoryStore(0)
		require.ErrorIs(t, store.Create(ctx, nil), identity.ErrInvalidSession)
	})

	t.Run("expired session", func(t *testing.T) {
		store := identity.NewMemoryStore(0)
		session := newTestSession(t, time.Hour)
		session.ExpiresAt = time.Now().Add(-time.Minute)
		require.NoError(t, store.Create(ctx, session))

		_, err := store.Get(ctx, session.Token)
		require.ErrorIs(t, err, identity.ErrSessionExpired)

		// Expired sessions are evicted on read.
		_, err = store.Get(ctx, session.Token)
		require.ErrorIs(t, err, identity.ErrSessionNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		store := identity.NewMemoryStore(0)
		session := newTestSession(t, time.Hour)
		require.NoError(t, store.Create(ctx, session))
		require.NoError(t, store.Delete(ctx, session.Token))

		_, err := store.Get(ctx, session.Token)
		require.ErrorIs(t, err, identity.ErrSessionNotFound)
	})

	t.Run("background cleanup", func(t *testing.T) {
		store := identity.NewMemoryStore(10 * time.Millisecond)
		defer store.Close()

		session := newTestSession(t, time.Hour)
		session.ExpiresAt = time.Now().Add(5 * time.Millisecond)
		require.NoError(t, store.Create(ctx, session))

		assert.Eventually(t, func() bool {
			_, err := store.Get(ctx, session.Token)
			return err != nil
		}, time.Second, 10*time.Millisecond)
	})
}
