package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"buddystream/internal/httputil"
	"buddystream/internal/model"
	"buddystream/internal/service"
)

type ProfileHandler struct {
	profileService *service.ProfileService
	log            *zap.SugaredLogger
}

func NewProfileHandler(profileService *service.ProfileService, log *zap.SugaredLogger) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		log:            log,
	}
}

// Get handles GET /users/{username}/profile
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	user, err := h.profileService.Get(r.Context(), username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			httputil.WriteNotFound(w, "User not found")
			return
		}
		h.log.Errorw("profile handler", "username", username, "error", err)
		httputil.WriteInternalError(w, "Failed to load profile")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, user)
}

// Update handles PUT /users/{username}/profile
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	var req model.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	user, err := h.profileService.Update(r.Context(), username, &req)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			httputil.WriteNotFound(w, "User not found")
			return
		}
		h.log.Errorw("update profile handler", "username", username, "error", err)
		httputil.WriteInternalError(w, "Failed to update profile")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, user)
}
