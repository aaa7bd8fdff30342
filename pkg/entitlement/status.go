package entitlement

import (
	"strings"
	"time"

	"github.com/digitaltwinhq/storefront/pkg/catalog"
)

// Tone is the coarse-grained presentation category for a status.
type Tone string

const (
	ToneNeutral  Tone = "neutral"
	TonePositive Tone = "positive"
	ToneWarning  Tone = "warning"
	ToneNegative Tone = "negative"
)

// UnknownProductName is displayed when a record references a price ID that
// is no longer (or never was) in the catalog.
const UnknownProductName = "Unknown Product"

// NoSubscriptionLabel is displayed when the user has no entitlement.
const NoSubscriptionLabel = "No Active Subscription"

// Renewal phrases selected by the cancellation flag.
const (
	PhraseRenews  = "Renews"
	PhraseExpires = "Expires"
)

// DisplayState is the presentation state derived from a record.
type DisplayState struct {
	ProductName  string
	Label        string
	Tone         Tone
	Canceling    bool   // set when the entitlement will lapse at period end
	PeriodPhrase string // "Renews" or "Expires"; empty when no period end is known
	PeriodDate   string // human-readable period end date; empty when unknown
}

// HasPeriod reports whether a renewal/expiry line should be shown.
func (d DisplayState) HasPeriod() bool {
	return d.PeriodPhrase != "" && d.PeriodDate != ""
}

// DeriveStatus maps a record and the catalog to a display state.
//
// The function is total: every reachable status value and every combination
// of period/cancellation fields produces a defined state, and it never fails.
// A nil record yields the neutral no-subscription state regardless of the
// catalog.
func DeriveStatus(record *Record, cat *catalog.Catalog) DisplayState {
	if !record.Started() {
		return DisplayState{
			Label: NoSubscriptionLabel,
			Tone:  ToneNeutral,
		}
	}

	state := DisplayState{
		ProductName: UnknownProductName,
		Canceling:   record.CancelAtPeriodEnd,
	}

	if cat != nil {
		if entry, ok := cat.Find(record.PriceID); ok {
			state.ProductName = entry.Name
		}
	}

	switch record.Status {
	case StatusActive:
		state.Label = "Active"
		state.Tone = TonePositive
	case StatusPastDue:
		state.Label = "Past Due"
		state.Tone = ToneWarning
	case StatusCanceled:
		state.Label = "Canceled"
		state.Tone = ToneNegative
	default:
		// Unmapped statuses fall back to the literal value, uppercased
		// with underscores replaced by spaces.
		state.Label = strings.ToUpper(strings.ReplaceAll(string(record.Status), "_", " "))
		state.Tone = ToneNeutral
	}

	if record.CurrentPeriodEnd != nil {
		if record.CancelAtPeriodEnd {
			state.PeriodPhrase = PhraseExpires
		} else {
			state.PeriodPhrase = PhraseRenews
		}
		state.PeriodDate = formatDate(*record.CurrentPeriodEnd)
	}

	return state
}

func formatDate(t time.Time) string {
	return t.Format("January 2, 2006")
}
