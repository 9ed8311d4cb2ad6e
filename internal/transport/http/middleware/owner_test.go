package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"buddystream/internal/httputil"
	"buddystream/internal/model"
)

// ownerTestRouter mounts a spy handler behind RequireOwner on an
// owner-scoped route and counts how often the handler (the "data layer")
// is reached.
func ownerTestRouter(reached *int) http.Handler {
	r := chi.NewRouter()
	r.Route("/users/{username}", func(r chi.Router) {
		r.Use(RequireOwner())
		r.Get("/stream", func(w http.ResponseWriter, r *http.Request) {
			*reached++
			w.WriteHeader(http.StatusOK)
		})
	})
	return r
}

func TestRequireOwner_OwnerAllowed(t *testing.T) {
	var reached int
	router := ownerTestRouter(&reached)

	req := httptest.NewRequest(http.MethodGet, "/users/alice/stream", nil)
	ctx := ContextWithIdentity(req.Context(), &model.Identity{ID: 1, Username: "alice"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req.WithContext(ctx))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if reached != 1 {
		t.Errorf("handler reached %d times, want 1", reached)
	}
}

func TestRequireOwner_OtherUserDenied(t *testing.T) {
	var reached int
	router := ownerTestRouter(&reached)

	req := httptest.NewRequest(http.MethodGet, "/users/bob/stream", nil)
	ctx := ContextWithIdentity(req.Context(), &model.Identity{ID: 1, Username: "alice"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req.WithContext(ctx))

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
	if reached != 0 {
		t.Errorf("handler reached %d times, want 0 (deny must precede the read)", reached)
	}

	var resp httputil.DeniedResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Redirect != "/users/alice/stream" {
		t.Errorf("Redirect = %q, want the caller's own stream", resp.Redirect)
	}
	if strings.Contains(resp.Error.Message, "bob") {
		t.Errorf("deny message %q leaks the target username", resp.Error.Message)
	}
}

func TestRequireOwner_AnonymousGets401(t *testing.T) {
	var reached int
	router := ownerTestRouter(&reached)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/alice/stream", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if reached != 0 {
		t.Errorf("handler reached %d times, want 0", reached)
	}
}
