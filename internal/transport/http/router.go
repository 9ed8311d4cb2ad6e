package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"buddystream/internal/handler"
	"buddystream/internal/httputil"
	authmw "buddystream/internal/transport/http/middleware"
)

// RouterConfig holds the dependencies needed to create routes
type RouterConfig struct {
	AuthHandler    *handler.AuthHandler
	StreamHandler  *handler.StreamHandler
	CommentHandler *handler.CommentHandler
	FriendHandler  *handler.FriendHandler
	ProfileHandler *handler.ProfileHandler

	Sessions authmw.IdentityResolver

	// LoginLimiter throttles the credential endpoints; nil disables it.
	LoginLimiter *authmw.RateLimiter
}

// NewRouter creates and configures a new Chi router with all route groups
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(chimw.RequestID)
	r.Use(authmw.Session(cfg.Sessions))

	// Health check endpoint (useful for deployment/monitoring)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, 200, map[string]string{"status": "ok"})
	})

	// Public routes - no authentication required
	r.Route("/auth", func(r chi.Router) {
		if cfg.LoginLimiter != nil {
			r.Use(cfg.LoginLimiter.Middleware())
		}
		r.Post("/register", cfg.AuthHandler.Register)
		r.Post("/login", cfg.AuthHandler.Login)
	})

	// Protected routes - require authentication
	r.Group(func(r chi.Router) {
		r.Use(authmw.RequireAuth())

		r.Get("/me", cfg.AuthHandler.Me)
		r.Post("/auth/logout", cfg.AuthHandler.Logout)

		// Owner-scoped resources. RequireOwner runs before every handler
		// here, reads and writes alike.
		r.Route("/users/{username}", func(r chi.Router) {
			r.Use(authmw.RequireOwner())

			r.Get("/stream", cfg.StreamHandler.Get)
			r.Post("/stream", cfg.StreamHandler.Create)

			r.Get("/posts/{postID}/comments", cfg.CommentHandler.Get)
			r.Post("/posts/{postID}/comments", cfg.CommentHandler.Create)

			r.Get("/friends", cfg.FriendHandler.List)
			r.Post("/friends", cfg.FriendHandler.Add)

			r.Get("/profile", cfg.ProfileHandler.Get)
			r.Put("/profile", cfg.ProfileHandler.Update)
		})
	})

	return r
}
