// Package storefront is the HTTP face of the entitlement and purchase flow:
// landing and pricing pages, subscription status, checkout initiation, and
// the post-purchase countdown.
//
// Templates are injected as view functions so applications keep full control
// over markup:
//
//	svc := storefront.NewService(cfg, cat, sessions, reader, initiator, &storefront.Views{
//		HomePage:    templates.Home,
//		PricingPage: templates.Pricing,
//		// ...
//	})
//	r.Mount("/", storefront.Router(svc))
//
// Page handlers resolve the session first and fetch entitlements second; a
// failed fetch logs and renders the neutral no-subscription state. POST
// /checkout validates the session before any processor traffic and redirects
// the browser to the hosted payment page. GET /success renders the
// confirmation shell and, for the datastar stream, drives the countdown
// server-side, ending with a navigation to the configured target.
package storefront
