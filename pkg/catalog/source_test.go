package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitaltwinhq/storefront/pkg/catalog"
)

const catalogYAML = `entries:
  - price_id: price_platform_monthly
    name: Digital Twin and MetaHuman Creation Platform
    description: Create hyper-realistic digital humans.
    mode: recurring
    price:
      amount: 500
      currency: GBP
  - price_id: price_asset_pack
    name: Asset Pack
    mode: one_time
    price:
      amount: 1999
      currency: USD
`

func TestYAMLSource(t *testing.T) {
	t.Run("loads entries from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte(catalogYAML), 0o644))

		c, err := catalog.NewFromSource(context.Background(), catalog.NewYAMLSource(path))
		require.NoError(t, err)
		require.Equal(t, 2, c.Len())

		entry, ok := c.Find("price_platform_monthly")
		require.True(t, ok)
		assert.Equal(t, catalog.ModeRecurring, entry.Mode)
		assert.Equal(t, "£5.00", entry.Price.Format())
	})

	t.Run("missing file", func(t *testing.T) {
		src := catalog.NewYAMLSource(filepath.Join(t.TempDir(), "missing.yaml"))
		_, err := src.Load(context.Background())
		require.ErrorIs(t, err, catalog.ErrFailedToLoadCatalog)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte("entries: {not: [valid"), 0o644))

		_, err := catalog.NewYAMLSource(path).Load(context.Background())
		require.ErrorIs(t, err, catalog.ErrFailedToLoadCatalog)
	})
}
