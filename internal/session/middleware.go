package session

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// CookieName identifies the session cookie.
const CookieName = "session_id"

type ctxKey string

const sessionIDKey ctxKey = "sessionID"

// FromContext extracts the session ID placed on the context by Middleware.
func FromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(sessionIDKey)
	if v == nil {
		return "", false
	}
	if id, ok := v.(string); ok {
		return id, true
	}
	return "", false
}

// Middleware ensures every request carries a session ID, issuing a cookie
// for first-time visitors, and exposes the ID on the request context.
func Middleware(ttl time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ""
			if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
				id = cookie.Value
			}

			if id == "" {
				id = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     CookieName,
					Value:    id,
					Path:     "/",
					Expires:  time.Now().Add(ttl),
					HttpOnly: true,
					Secure:   isSecureRequest(r),
					SameSite: http.SameSiteLaxMode,
				})
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionIDKey, id)))
		})
	}
}

// isSecureRequest determines if the request arrived over HTTPS, directly or
// behind a reverse proxy.
func isSecureRequest(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "https" {
		return true
	}
	return r.URL.Scheme == "https"
}
