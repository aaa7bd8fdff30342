package web

import (
	"encoding/json"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// PatchOption configures how a templ component is patched into the page on
// datastar requests.
type PatchOption = datastar.PatchElementOption

// WithTarget sets the CSS selector the component is patched into.
func WithTarget(selector string) PatchOption {
	return datastar.WithSelector(selector)
}

// WithPatchMode sets how the component is merged into the DOM.
func WithPatchMode(mode datastar.ElementPatchMode) PatchOption {
	return datastar.WithMode(mode)
}

type templResponse struct {
	component templ.Component
	options   []PatchOption
}

func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		return sse.PatchElementTempl(t.component, t.options...)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return t.component.Render(r.Context(), w)
}

// Templ renders a templ component. Datastar requests receive the component
// as an SSE element patch; plain requests receive full HTML.
func Templ(component templ.Component, opts ...PatchOption) Response {
	return templResponse{component: component, options: opts}
}

type redirectResponse struct {
	url  string
	code int
}

func (r redirectResponse) Render(w http.ResponseWriter, req *http.Request) error {
	// Datastar cannot follow an HTTP redirect inside an SSE exchange, so
	// the navigation is sent as a script event instead.
	if IsDataStar(req) {
		sse := datastar.NewSSE(w, req)
		return sse.Redirect(r.url)
	}

	http.Redirect(w, req, r.url, r.code)
	return nil
}

// Redirect sends the browser to url with 303 See Other, or as a datastar
// navigation event on SSE requests.
func Redirect(url string) Response {
	return redirectResponse{url: url, code: http.StatusSeeOther}
}

// RedirectWithCode is Redirect with an explicit status code.
func RedirectWithCode(url string, code int) Response {
	return redirectResponse{url: url, code: code}
}

type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSON renders v as a JSON body with the given status, defaulting to 200.
func JSON(v any, status ...int) Response {
	code := http.StatusOK
	if len(status) > 0 {
		code = status[0]
	}
	return jsonResponse{status: code, body: v}
}

type statusResponse struct {
	code int
}

func (s statusResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.WriteHeader(s.code)
	return nil
}

// Status renders an empty response with the given status code.
func Status(code int) Response {
	return statusResponse{code: code}
}

type noneResponse struct{}

func (noneResponse) Render(w http.ResponseWriter, r *http.Request) error { return nil }

// None renders nothing. Used after a handler has already streamed its
// response over SSE.
func None() Response {
	return noneResponse{}
}
