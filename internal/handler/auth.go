package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"buddystream/internal/httputil"
	"buddystream/internal/model"
	"buddystream/internal/service"
	"buddystream/internal/transport/http/middleware"
)

// loginFailedMessage is the single user-facing message for every failed
// login, whether the username is unknown or the password is wrong.
const loginFailedMessage = "Sorry, username or password is not correct."

// AuthHandler groups auth-related HTTP endpoints and their dependencies.
type AuthHandler struct {
	authService    *service.AuthService
	sessionService *service.SessionService
	log            *zap.SugaredLogger
}

// NewAuthHandler wires dependencies for authentication endpoints.
func NewAuthHandler(authService *service.AuthService, sessionService *service.SessionService, log *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		sessionService: sessionService,
		log:            log,
	}
}

// Register handles user sign-up
// POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" {
		httputil.WriteBadRequest(w, "Username is required")
		return
	}
	if req.FirstName == "" || req.LastName == "" {
		httputil.WriteBadRequest(w, "First name and last name are required")
		return
	}
	if req.Password == "" {
		httputil.WriteBadRequest(w, "Password is required")
		return
	}

	user, err := h.authService.Register(r.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrUsernameExists) {
			httputil.WriteConflict(w, "Username already exists")
			return
		}
		h.log.Errorw("register handler", "username", req.Username, "error", err)
		httputil.WriteInternalError(w, "Failed to register")
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, user)
}

// Login handles user login
// POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	if req.Username == "" {
		httputil.WriteBadRequest(w, "Username is required")
		return
	}
	if req.Password == "" {
		httputil.WriteBadRequest(w, "Password is required")
		return
	}

	user, err := h.authService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			httputil.WriteUnauthorized(w, loginFailedMessage)
			return
		}
		h.log.Errorw("login handler", "error", err)
		httputil.WriteInternalError(w, "Failed to login")
		return
	}

	// Drop any pre-login session before issuing a fresh token, so a token
	// planted before authentication never becomes authenticated.
	if cookie, cerr := r.Cookie(middleware.SessionCookieName); cerr == nil && cookie.Value != "" {
		if cerr := h.sessionService.Clear(r.Context(), cookie.Value); cerr != nil {
			h.log.Errorw("clear pre-login session", "error", cerr)
		}
	}

	token, err := h.sessionService.Establish(r.Context(), user, req.RememberMe)
	if err != nil {
		h.log.Errorw("establish session", "user_id", user.ID, "error", err)
		httputil.WriteInternalError(w, "Failed to login")
		return
	}

	cookie := &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if req.RememberMe {
		// Without MaxAge the cookie dies with the browser session.
		cookie.MaxAge = h.sessionService.MaxAge(true)
	}
	http.SetCookie(w, cookie)

	httputil.WriteJSON(w, http.StatusOK, model.LoginResponse{
		Identity: &model.Identity{ID: user.ID, Username: user.Username},
		Redirect: fmt.Sprintf("/users/%s/stream", user.Username),
	})
}

// Logout handles user logout
// POST /auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil && cookie.Value != "" {
		if err := h.sessionService.Clear(r.Context(), cookie.Value); err != nil {
			h.log.Errorw("logout handler", "error", err)
			httputil.WriteInternalError(w, "Failed to logout")
			return
		}
	}

	// Expire the cookie client-side as well.
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "You have been logged out.",
	})
}

// Me returns the currently authenticated principal
// GET /me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Not authenticated")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, identity)
}
