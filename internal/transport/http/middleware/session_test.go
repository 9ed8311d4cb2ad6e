package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"buddystream/internal/model"
)

type stubResolver struct {
	identities map[string]*model.Identity
	err        error
}

func (s *stubResolver) Current(ctx context.Context, token string) (*model.Identity, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.identities[token], nil
}

func TestSession_ResolvesCookieToIdentity(t *testing.T) {
	resolver := &stubResolver{identities: map[string]*model.Identity{
		"valid-token": {ID: 1, Username: "alice"},
	}}

	var got *model.Identity
	handler := Session(resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = IdentityFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "valid-token"})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if got == nil {
		t.Fatal("identity not injected into context")
	}
	if got.Username != "alice" {
		t.Errorf("Username = %q, want %q", got.Username, "alice")
	}
}

func TestSession_AnonymousPassesThrough(t *testing.T) {
	resolver := &stubResolver{}

	called := false
	handler := Session(resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if _, ok := IdentityFromContext(r.Context()); ok {
			t.Error("unexpected identity for anonymous request")
		}
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if !called {
		t.Error("next handler not reached")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestSession_ResolverFailure(t *testing.T) {
	resolver := &stubResolver{err: errors.New("store down")}

	handler := Session(resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not run when the resolver fails")
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "any"})
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestRequireAuth(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RequireAuth()(next)

	t.Run("anonymous gets 401", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("authenticated passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		ctx := ContextWithIdentity(req.Context(), &model.Identity{ID: 1, Username: "alice"})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req.WithContext(ctx))
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
	})
}
