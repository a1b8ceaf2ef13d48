package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pantrypal/pantrypal-go/internal/model"
	"github.com/pantrypal/pantrypal-go/internal/session"
)

type contextKey string

const identityKey contextKey = "identity"

// SessionCookieName is the client-held slot carrying the identity token.
const SessionCookieName = "session"

// Session returns middleware that resolves the session cookie into an
// Identity on the request context. A stale or malformed token is cleared from
// the client and the request continues as Anonymous; only a backing-store
// failure aborts the request.
func Session(resolver *session.Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var raw string
			if cookie, err := r.Cookie(SessionCookieName); err == nil {
				raw = cookie.Value
			}

			identity, stale, err := resolver.Resolve(r.Context(), raw)
			if err != nil {
				writeJSONError(w, http.StatusInternalServerError, "internal server error")
				return
			}
			if stale {
				ClearSessionCookie(w)
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext extracts the resolved identity from the request
// context. Requests that never passed through Session are Anonymous.
func IdentityFromContext(ctx context.Context) model.Identity {
	if identity, ok := ctx.Value(identityKey).(model.Identity); ok {
		return identity
	}
	return model.Anonymous()
}

// ClearSessionCookie instructs the client to discard its identity token.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
