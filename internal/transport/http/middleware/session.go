package middleware

import (
	"context"
	"net/http"

	"buddystream/internal/httputil"
	"buddystream/internal/model"
)

// SessionCookieName is the cookie carrying the raw session token.
const SessionCookieName = "session_token"

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// identityKey is the context key for the authenticated principal.
const identityKey contextKey = "identity"

// IdentityResolver resolves a session token to the bound principal.
// Defined here as the subset of service.SessionService the middleware needs.
type IdentityResolver interface {
	Current(ctx context.Context, token string) (*model.Identity, error)
}

// Session resolves the session cookie to an Identity and injects it into
// the request context. Requests without a valid binding pass through as
// anonymous; route groups that need a principal add RequireAuth.
func Session(resolver IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var token string
			if cookie, err := r.Cookie(SessionCookieName); err == nil {
				token = cookie.Value
			}

			identity, err := resolver.Current(r.Context(), token)
			if err != nil {
				httputil.WriteInternalError(w, "Failed to resolve session")
				return
			}

			if identity != nil {
				ctx := context.WithValue(r.Context(), identityKey, identity)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth rejects anonymous requests with 401.
func RequireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := IdentityFromContext(r.Context()); !ok {
				httputil.WriteUnauthorized(w, "Authentication required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// IdentityFromContext extracts the authenticated principal from the request
// context. Returns the identity and true if found.
func IdentityFromContext(ctx context.Context) (*model.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*model.Identity)
	return identity, ok
}

// ContextWithIdentity injects an identity into the context. For tests and
// non-middleware context construction.
func ContextWithIdentity(ctx context.Context, identity *model.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}
