package identity

import (
	"errors"
	"net/http"
)

// DefaultCookieName is the session cookie used when none is configured.
const DefaultCookieName = "storefront_session"

// Middleware resolves the session from the request cookie and stores it in
// the request context. Requests without a valid session pass through with no
// session set; identity resolution must never block page rendering.
func Middleware(provider *Provider, cookieName string) func(http.Handler) http.Handler {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			session, err := provider.Resolve(r.Context(), cookie.Value)
			if err != nil {
				if errors.Is(err, ErrSessionExpired) {
					clearCookie(w, cookieName)
				}
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetToContext(r.Context(), session)))
		})
	}
}

// SetCookie writes the session cookie for the given session.
func SetCookie(w http.ResponseWriter, cookieName string, session *Session, secure bool) {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearCookie(w http.ResponseWriter, cookieName string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// ClearCookie removes the session cookie.
func ClearCookie(w http.ResponseWriter, cookieName string) {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	clearCookie(w, cookieName)
}
