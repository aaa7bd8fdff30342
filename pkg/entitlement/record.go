package entitlement

import "time"

// Status represents the lifecycle state of an entitlement as reported by
// the external payment processor. The set mirrors the processor's
// subscription lifecycle and is not interpreted beyond display mapping.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusIncomplete Status = "incomplete"
	StatusTrialing   Status = "trialing"
	StatusActive     Status = "active"
	StatusPastDue    Status = "past_due"
	StatusCanceled   Status = "canceled"
	StatusUnpaid     Status = "unpaid"
	StatusPaused     Status = "paused"
)

// Record is the read-only projection of a user's current purchase state.
// It is created and mutated entirely by the external processor; this module
// only reads the latest snapshot per signed-in identity.
type Record struct {
	Status            Status
	PriceID           string     // join key to catalog entries; empty when not started
	CurrentPeriodEnd  *time.Time // meaningful only for recurring entries with an active lifecycle
	CancelAtPeriodEnd bool       // true if the entitlement lapses at CurrentPeriodEnd rather than renewing
}

// IsActive returns true if the entitlement is in active status.
func (r *Record) IsActive() bool {
	return r != nil && r.Status == StatusActive
}

// Started reports whether the record represents a purchase that ever began.
// A missing record and StatusNotStarted are presentation-equivalent.
func (r *Record) Started() bool {
	return r != nil && r.Status != StatusNotStarted
}
