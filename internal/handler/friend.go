package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"buddystream/internal/httputil"
	"buddystream/internal/model"
	"buddystream/internal/service"
	"buddystream/internal/transport/http/middleware"
)

type FriendHandler struct {
	friendService *service.FriendService
	log           *zap.SugaredLogger
}

func NewFriendHandler(friendService *service.FriendService, log *zap.SugaredLogger) *FriendHandler {
	return &FriendHandler{
		friendService: friendService,
		log:           log,
	}
}

// List handles GET /users/{username}/friends
func (h *FriendHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	friends, err := h.friendService.List(r.Context(), identity.ID)
	if err != nil {
		h.log.Errorw("friends handler", "user_id", identity.ID, "error", err)
		httputil.WriteInternalError(w, "Failed to load friends")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, model.FriendListResponse{Friends: friends})
}

// Add handles POST /users/{username}/friends
func (h *FriendHandler) Add(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	var req model.AddFriendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" {
		httputil.WriteBadRequest(w, "Username is required")
		return
	}

	err := h.friendService.Add(r.Context(), identity.ID, req.Username)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrUserNotFound):
			httputil.WriteNotFound(w, "User does not exist!")
		case errors.Is(err, model.ErrCannotFriendSelf):
			httputil.WriteBadRequest(w, "You cannot be friends with yourself!")
		case errors.Is(err, model.ErrAlreadyFriends):
			httputil.WriteConflict(w, "You are already friends with this user!")
		default:
			h.log.Errorw("add friend handler", "user_id", identity.ID, "error", err)
			httputil.WriteInternalError(w, "Failed to add friend")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, map[string]string{
		"message": "Friend successfully added!",
	})
}
