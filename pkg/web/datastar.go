package web

import (
	"net/http"
	"strings"
)

const (
	// acceptSSE marks requests expecting a server-sent event stream.
	acceptSSE = "text/event-stream"

	// signalsParam is the query parameter datastar uses for GET signals.
	signalsParam = "datastar"
)

// IsDataStar reports whether the request was issued by the datastar client
// rather than a plain browser navigation.
func IsDataStar(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), acceptSSE) {
		return true
	}
	if r.URL.Query().Has(signalsParam) {
		return true
	}
	return strings.Contains(r.Header.Get("Content-Type"), "application/x-datastar")
}
