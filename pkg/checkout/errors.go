package checkout

import "errors"

var (
	// ErrAuthRequired indicates a purchase was attempted without an
	// authenticated session. No network request was made.
	ErrAuthRequired = errors.New("checkout.auth_required")

	// ErrSessionMissing indicates the session lost its credential between
	// authentication and purchase.
	ErrSessionMissing = errors.New("checkout.session_missing")

	// ErrInFlight indicates a checkout for the same user and price is
	// already in progress.
	ErrInFlight = errors.New("checkout.in_flight")

	// ErrNoRedirectURL indicates the processor accepted the request but
	// returned no redirect destination.
	ErrNoRedirectURL = errors.New("checkout.no_redirect_url")

	// ErrRequestFailed indicates the checkout request could not be
	// constructed or delivered.
	ErrRequestFailed = errors.New("checkout.request_failed")

	// ErrMissingEndpointURL indicates the endpoint provider was configured
	// without a URL.
	ErrMissingEndpointURL = errors.New("checkout.missing_endpoint_url")

	// ErrMissingPriceID indicates a session was requested without a price.
	ErrMissingPriceID = errors.New("checkout.missing_price_id")
)

// FallbackErrorMessage is shown when the processor rejects a checkout
// without a usable error body.
const FallbackErrorMessage = "Failed to create checkout session"

// RequestError carries the processor's own error message for a rejected
// checkout. Error returns exactly that message so it can be shown to the
// user verbatim.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return e.Message
}

// Is reports ErrRequestFailed so callers can match rejections with
// errors.Is without inspecting the concrete type.
func (e *RequestError) Is(target error) bool {
	return target == ErrRequestFailed
}
