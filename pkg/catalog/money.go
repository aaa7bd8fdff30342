package catalog

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money represents a monetary amount in the smallest currency unit.
// For example, £5.00 would be Amount: 500, Currency: "GBP".
type Money struct {
	Amount   int64  `yaml:"amount"`   // Amount in smallest currency unit (pence for GBP)
	Currency string `yaml:"currency"` // ISO 4217 currency code
}

// IsZero reports whether no price is set.
func (m Money) IsZero() bool {
	return m.Amount == 0 && m.Currency == ""
}

// Format renders the amount with its currency symbol, e.g. "£5.00".
// Unknown currency codes fall back to "5.00 XYZ" rather than failing,
// since price display must never break a pricing page.
func (m Money) Format() string {
	major := float64(m.Amount) / 100

	unit, err := currency.ParseISO(m.Currency)
	if err != nil {
		return fmt.Sprintf("%.2f %s", major, m.Currency)
	}

	p := message.NewPrinter(language.English)
	return p.Sprint(currency.Symbol(unit.Amount(major)))
}
