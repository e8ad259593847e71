// Package session holds the browser-side bearer-token session. The cookie
// is the only durable authentication artifact: written once at the OAuth
// callback, read on every proxied call, gone when it expires.
package session

import (
	"context"
	"net/http"

	"github.com/cloudcostlabs/m365-gateway/internal/errors"
)

// CookieName is the session cookie carrying the access token.
const CookieName = "access_token"

// DefaultMaxAge caps the cookie lifetime when the token response carries no
// usable expiry.
const DefaultMaxAge = 3600

// Session is the request-scoped view of the caller's authentication.
// Handlers receive it through the request context rather than re-reading
// the cookie jar, which keeps the token-read path testable.
type Session struct {
	Token string
}

type contextKey struct{}

// Write sets the session cookie. HttpOnly keeps the token away from page
// scripts; SameSite=Strict keeps it off cross-site requests.
func Write(w http.ResponseWriter, token string, maxAge int) {
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   maxAge,
	})
}

// FromRequest reads the session cookie. A missing or empty cookie is
// ErrUnauthorized; no attempt is made to distinguish "expired" from "never
// logged in".
func FromRequest(r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "missing session cookie")
	}
	return &Session{Token: cookie.Value}, nil
}

// WithSession attaches the session to the request context.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext retrieves the session placed by the auth middleware.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(contextKey{}).(*Session)
	return s, ok
}
