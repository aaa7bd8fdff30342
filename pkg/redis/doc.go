// Package redis connects the storefront to Redis, which backs the session
// store. Connect retries until the server is ready; Healthcheck feeds the
// readiness probe.
package redis
