// Package countdown implements the post-purchase redirect countdown.
//
// After a completed checkout the success page shows a short countdown and
// then navigates away. The countdown is modeled as an explicit run with a
// cancellable ticker: each step is emitted to the caller, and the terminal
// Done step is only ever emitted by a run that was not cancelled. A user
// who leaves the page cancels the context and no late redirect can fire.
package countdown
