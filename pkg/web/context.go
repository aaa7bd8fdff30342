package web

import (
	"context"
	"net/http"
	"time"

	"github.com/starfederation/datastar-go/datastar"
)

// Context carries the HTTP exchange through a typed handler.
// It implements context.Context by delegating to the request's context, so
// handlers can pass it straight into stores and providers.
type Context struct {
	w   http.ResponseWriter
	r   *http.Request
	sse *datastar.ServerSentEventGenerator
}

// NewContext wraps an HTTP exchange. For datastar requests the SSE generator
// is initialized eagerly so the response headers are set before any handler
// output.
func NewContext(w http.ResponseWriter, r *http.Request) *Context {
	ctx := &Context{w: w, r: r}
	if IsDataStar(r) {
		ctx.sse = datastar.NewSSE(w, r)
	}
	return ctx
}

// Request returns the underlying HTTP request.
func (c *Context) Request() *http.Request {
	return c.r
}

// ResponseWriter returns the underlying response writer.
func (c *Context) ResponseWriter() http.ResponseWriter {
	return c.w
}

// SSE returns the server-sent event generator, or nil when the request is
// not a datastar request.
func (c *Context) SSE() *datastar.ServerSentEventGenerator {
	return c.sse
}

// IsDataStar reports whether the current request came from datastar.
func (c *Context) IsDataStar() bool {
	return c.sse != nil
}

func (c *Context) Deadline() (time.Time, bool) { return c.r.Context().Deadline() }
func (c *Context) Done() <-chan struct{}       { return c.r.Context().Done() }
func (c *Context) Err() error                  { return c.r.Context().Err() }
func (c *Context) Value(key any) any           { return c.r.Context().Value(key) }

var _ context.Context = (*Context)(nil)
