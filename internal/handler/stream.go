package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"buddystream/internal/httputil"
	"buddystream/internal/model"
	"buddystream/internal/service"
	"buddystream/internal/transport/http/middleware"
)

// StreamHandler serves a user's stream. The ownership check runs in the
// RequireOwner middleware before these methods execute.
type StreamHandler struct {
	postService *service.PostService
	log         *zap.SugaredLogger
}

func NewStreamHandler(postService *service.PostService, log *zap.SugaredLogger) *StreamHandler {
	return &StreamHandler{
		postService: postService,
		log:         log,
	}
}

// Get handles GET /users/{username}/stream
// Returns the owner's posts plus their friends' posts, newest first.
func (h *StreamHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	posts, err := h.postService.Stream(r.Context(), identity.ID)
	if err != nil {
		h.log.Errorw("stream handler", "user_id", identity.ID, "error", err)
		httputil.WriteInternalError(w, "Failed to load stream")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, model.StreamResponse{Posts: posts})
}

// Create handles POST /users/{username}/stream
func (h *StreamHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	var req model.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	post, err := h.postService.Create(r.Context(), identity.ID, req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrPostContentRequired):
			httputil.WriteBadRequest(w, "Post content is required")
		case errors.Is(err, model.ErrPostContentTooLong):
			httputil.WriteBadRequest(w, "Post content too long")
		default:
			h.log.Errorw("create post handler", "user_id", identity.ID, "error", err)
			httputil.WriteInternalError(w, "Failed to create post")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, post)
}
