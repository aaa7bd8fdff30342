package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitaltwinhq/storefront/pkg/catalog"
)

func testEntries() []catalog.Entry {
	return []catalog.Entry{
		{
			PriceID:     "price_platform_monthly",
			Name:        "Digital Twin and MetaHuman Creation Platform",
			Description: "Create hyper-realistic, customizable digital humans.",
			Mode:        catalog.ModeRecurring,
			Price:       catalog.Money{Amount: 500, Currency: "GBP"},
		},
		{
			PriceID: "price_asset_pack",
			Name:    "Asset Pack",
			Mode:    catalog.ModeOneTime,
			Price:   catalog.Money{Amount: 1999, Currency: "USD"},
		},
	}
}

func TestNew(t *testing.T) {
	t.Run("valid catalog", func(t *testing.T) {
		c, err := catalog.New(testEntries()...)
		require.NoError(t, err)
		assert.Equal(t, 2, c.Len())
	})

	t.Run("empty catalog", func(t *testing.T) {
		_, err := catalog.New()
		require.ErrorIs(t, err, catalog.ErrEmptyCatalog)
	})

	t.Run("duplicate price IDs rejected", func(t *testing.T) {
		entries := testEntries()
		entries[1].PriceID = entries[0].PriceID

		_, err := catalog.New(entries...)
		require.ErrorIs(t, err, catalog.ErrDuplicatePriceID)
	})

	t.Run("empty price ID rejected", func(t *testing.T) {
		entries := testEntries()
		entries[0].PriceID = ""

		_, err := catalog.New(entries...)
		require.ErrorIs(t, err, catalog.ErrInvalidEntry)
	})

	t.Run("unknown mode rejected", func(t *testing.T) {
		entries := testEntries()
		entries[0].Mode = "perpetual"

		_, err := catalog.New(entries...)
		require.ErrorIs(t, err, catalog.ErrInvalidEntry)
	})
}

func TestCatalogFind(t *testing.T) {
	c, err := catalog.New(testEntries()...)
	require.NoError(t, err)

	entry, ok := c.Find("price_platform_monthly")
	require.True(t, ok)
	assert.Equal(t, catalog.ModeRecurring, entry.Mode)

	_, ok = c.Find("price_unknown")
	assert.False(t, ok)
}

func TestCatalogEntriesOrderAndIsolation(t *testing.T) {
	c, err := catalog.New(testEntries()...)
	require.NoError(t, err)

	entries := c.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "price_platform_monthly", entries[0].PriceID)
	assert.Equal(t, "price_asset_pack", entries[1].PriceID)

	// Mutating the returned slice must not leak into the catalog.
	entries[0].PriceID = "mutated"
	fresh := c.Entries()
	assert.Equal(t, "price_platform_monthly", fresh[0].PriceID)
}

func TestNewFromSource(t *testing.T) {
	t.Run("static source", func(t *testing.T) {
		src := catalog.NewStaticSource(testEntries()...)
		c, err := catalog.NewFromSource(context.Background(), src)
		require.NoError(t, err)
		assert.Equal(t, 2, c.Len())
	})

	t.Run("nil source panics", func(t *testing.T) {
		assert.Panics(t, func() {
			_, _ = catalog.NewFromSource(context.Background(), nil)
		})
	})

	t.Run("empty static source panics", func(t *testing.T) {
		assert.Panics(t, func() {
			catalog.NewStaticSource()
		})
	})
}

func TestMoneyFormat(t *testing.T) {
	assert.Equal(t, "£5.00", catalog.Money{Amount: 500, Currency: "GBP"}.Format())
	assert.Equal(t, "$19.99", catalog.Money{Amount: 1999, Currency: "USD"}.Format())
	assert.Equal(t, "3.50 XYZ", catalog.Money{Amount: 350, Currency: "XYZ"}.Format())
	assert.True(t, catalog.Money{}.IsZero())
}
