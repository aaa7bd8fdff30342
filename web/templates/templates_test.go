package templates_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitaltwinhq/storefront/modules/storefront"
	"github.com/digitaltwinhq/storefront/pkg/catalog"
	"github.com/digitaltwinhq/storefront/pkg/entitlement"
	"github.com/digitaltwinhq/storefront/web/templates"
)

func renderComponent(t *testing.T, render func(*strings.Builder) error) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, render(&sb))
	return sb.String()
}

func TestStorefrontViewsComplete(t *testing.T) {
	t.Parallel()

	// NewService panics on a missing view; the default set must be complete.
	assert.NotPanics(t, func() {
		v := templates.StorefrontViews()
		_ = v
	})
}

func TestPricingPageMarkup(t *testing.T) {
	t.Parallel()

	html := renderComponent(t, func(sb *strings.Builder) error {
		return templates.PricingPage(storefront.PricingPageParams{
			Entries: []catalog.Entry{{
				PriceID:     "price_dtp_monthly",
				Name:        "Digital Twin Platform",
				Description: "Full platform access",
				Mode:        catalog.ModeRecurring,
				Price:       catalog.Money{Amount: 500, Currency: "GBP"},
			}},
		}).Render(context.Background(), sb)
	})

	assert.Contains(t, html, "Digital Twin Platform")
	assert.Contains(t, html, "£5.00/month")
	assert.Contains(t, html, `name="price_id" value="price_dtp_monthly"`)
	assert.Contains(t, html, `id="checkout-error"`)
}

func TestStatusPanelMarkup(t *testing.T) {
	t.Parallel()

	html := renderComponent(t, func(sb *strings.Builder) error {
		return templates.StatusPanel(storefront.StatusPanelParams{
			Status: entitlement.DisplayState{
				ProductName:  "Digital Twin Platform",
				Label:        "Canceled",
				Tone:         entitlement.ToneNegative,
				Canceling:    true,
				PeriodPhrase: entitlement.PhraseExpires,
				PeriodDate:   "September 28, 2026",
			},
		}).Render(context.Background(), sb)
	})

	assert.Contains(t, html, "Canceled")
	assert.Contains(t, html, "Canceling")
	assert.Contains(t, html, "Expires September 28, 2026")
}

func TestCountdownEscapesNothingWeird(t *testing.T) {
	t.Parallel()

	html := renderComponent(t, func(sb *strings.Builder) error {
		return templates.Countdown(storefront.CountdownParams{Remaining: 4}).Render(context.Background(), sb)
	})
	assert.Equal(t, `<span id="countdown">4</span>`, html)
}

func TestCheckoutErrorEscapesMessage(t *testing.T) {
	t.Parallel()

	html := renderComponent(t, func(sb *strings.Builder) error {
		return templates.CheckoutError(storefront.CheckoutErrorParams{
			Message: `<script>alert(1)</script>`,
		}).Render(context.Background(), sb)
	})

	assert.NotContains(t, html, "<script>alert")
	assert.Contains(t, html, "&lt;script&gt;")
}
