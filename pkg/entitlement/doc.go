// Package entitlement reads the current purchase state of a signed-in
// identity and derives the presentation state the storefront renders.
//
// The entitlement projection is owned by the external payment processor and
// consumed read-only here: the Reader performs exactly one read per trigger,
// and a missing row is presentation-equivalent to a purchase that never
// started. DeriveStatus is a pure, total function from a record and the
// catalog to a DisplayState; it never fails, whatever the processor reports.
//
// Watcher keeps a snapshot current across sign-in/sign-out transitions,
// discarding stale fetch results by generation so responses for a previous
// identity can never win a race against the latest one.
package entitlement
