// Package checkout starts hosted payment flows for catalog entries.
//
// The Initiator validates the current session, guards against duplicate
// submissions, and asks a Provider for a checkout session. Providers wrap the
// actual processor integration: EndpointProvider talks to a serverless
// endpoint fronting the processor, PaddleProvider talks to Paddle directly.
//
// The Initiator returns the redirect URL; it never navigates. Rejections from
// the processor surface as *RequestError whose Error method returns the
// processor's own message so the UI can show it verbatim.
//
// Usage:
//
//	provider, err := checkout.NewEndpointProvider(cfg)
//	if err != nil {
//		return err
//	}
//	initiator := checkout.NewInitiator(provider, sessions)
//
//	url, err := initiator.Start(ctx, entry, session, checkout.ReturnURLs{
//		Success: origin + "/success",
//		Cancel:  origin + "/pricing",
//	})
package checkout
