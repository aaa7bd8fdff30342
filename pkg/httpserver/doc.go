// Package httpserver provides a graceful HTTP server for the storefront.
//
// Run blocks until the context is cancelled, a SIGINT/SIGTERM arrives, or
// the listener fails, then drains in-flight requests within the shutdown
// timeout:
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
package httpserver
