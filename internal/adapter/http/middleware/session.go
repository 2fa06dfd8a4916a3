package middleware

import (
	"context"
	"net/http"
	"strings"
)

// ContextKey is the type for context keys.
type ContextKey string

// OperatorContextKey is the context key for the authenticated operator name.
const OperatorContextKey ContextKey = "operator"

// SessionVerifier checks a token and refreshes its inactivity TTL.
type SessionVerifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

// Session creates a middleware requiring a live session token. Every request
// passing through it counts as activity and slides the session's TTL.
func Session(verifier SessionVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "missing authorization header", http.StatusUnauthorized)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "invalid authorization header format", http.StatusUnauthorized)
				return
			}

			userName, err := verifier.Verify(r.Context(), parts[1])
			if err != nil {
				http.Error(w, "session expired or invalid", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), OperatorContextKey, userName)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OperatorFromContext extracts the authenticated operator name from context.
func OperatorFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(OperatorContextKey).(string)
	return name, ok
}
