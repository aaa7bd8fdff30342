package web

import "errors"

var (
	// ErrNilResponse indicates a handler returned nil instead of a Response.
	ErrNilResponse = errors.New("web.nil_response")

	// ErrBinderNotApplicable signals a binder to be skipped for this request.
	ErrBinderNotApplicable = errors.New("web.binder_not_applicable")

	// ErrInvalidForm indicates the form body could not be parsed or bound.
	ErrInvalidForm = errors.New("web.invalid_form")

	// ErrInvalidQuery indicates query parameters could not be bound.
	ErrInvalidQuery = errors.New("web.invalid_query")
)

// HTTPError carries an HTTP status code with a user-facing message.
// The default error handler renders it as-is.
type HTTPError struct {
	Code    int
	Message string
}

func (e HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(code int, message string) HTTPError {
	return HTTPError{Code: code, Message: message}
}
