// Package identity tracks the signed-in session and its bearer credential.
//
// Authentication itself is owned by an external auth backend; this package
// only stores the sessions that backend issues and makes the current
// identity an explicitly-owned value rather than ambient state. Components
// receive sessions per request (via Middleware and FromContext) or observe
// sign-in/sign-out transitions through the Provider's change feed.
//
// Stores are pluggable: MemoryStore for development and tests, RedisStore
// for deployments.
package identity
