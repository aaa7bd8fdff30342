// Package web is the HTTP plumbing for the storefront: typed handlers,
// request binding, and datastar-aware responses.
//
// A handler takes a *Context and a typed request and returns a Response.
// Wrap converts it into an http.HandlerFunc, running the configured binders
// first and routing failures through the error handler:
//
//	type buyRequest struct {
//		PriceID string `form:"price_id"`
//	}
//
//	mux.Post("/checkout", web.Wrap(
//		func(ctx *web.Context, req buyRequest) web.Response {
//			url, err := initiator.Start(ctx, entry, session, urls)
//			if err != nil {
//				return web.Templ(views.CheckoutError(err))
//			}
//			return web.Redirect(url)
//		},
//		web.WithBinders[buyRequest](web.BindForm()),
//	))
//
// Responses adapt to the caller: a datastar request receives SSE element
// patches and script-driven navigation, a plain browser request receives
// full HTML or a 303 redirect. Handlers stay transport-agnostic.
package web
