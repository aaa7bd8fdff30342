package identity

import "context"

type sessionCtxKey struct{}

// SetToContext stores the session in the context.
func SetToContext(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, session)
}

// FromContext retrieves the session from the context.
// Returns nil when no session was resolved for the request.
func FromContext(ctx context.Context) *Session {
	session, _ := ctx.Value(sessionCtxKey{}).(*Session)
	return session
}
