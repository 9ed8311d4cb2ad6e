package middleware

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"buddystream/internal/authz"
	"buddystream/internal/httputil"
)

// RequireOwner enforces that the authenticated principal owns the resource
// named by the {username} path parameter. It must wrap every owner-scoped
// route, reads included, so a denied request never reaches the data layer.
// On deny the response carries the caller's own stream path and nothing
// about the target.
func RequireOwner() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, _ := IdentityFromContext(r.Context())
			owner := chi.URLParam(r, "username")

			decision := authz.Authorize(identity, owner)
			if !decision.Allowed {
				if decision.Reason == authz.ReasonNotAuthenticated {
					httputil.WriteUnauthorized(w, "Authentication required")
					return
				}
				httputil.WriteDenied(w,
					"You don't have permission to access this page.",
					fmt.Sprintf("/users/%s/stream", identity.Username),
				)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
