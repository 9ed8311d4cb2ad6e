package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"buddystream/internal/httputil"
	"buddystream/internal/model"
	"buddystream/internal/service"
	"buddystream/internal/transport/http/middleware"
)

type CommentHandler struct {
	commentService *service.CommentService
	log            *zap.SugaredLogger
}

func NewCommentHandler(commentService *service.CommentService, log *zap.SugaredLogger) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		log:            log,
	}
}

// Get handles GET /users/{username}/posts/{postID}/comments
// Returns the post together with its comments.
func (h *CommentHandler) Get(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid post ID")
		return
	}

	post, comments, err := h.commentService.PostWithComments(r.Context(), postID)
	if err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			httputil.WriteNotFound(w, "Post not found")
			return
		}
		h.log.Errorw("comments handler", "post_id", postID, "error", err)
		httputil.WriteInternalError(w, "Failed to load comments")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, model.CommentsResponse{Post: post, Comments: comments})
}

// Create handles POST /users/{username}/posts/{postID}/comments
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid post ID")
		return
	}

	var req model.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	comment, err := h.commentService.Create(r.Context(), postID, identity.ID, req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrPostNotFound):
			httputil.WriteNotFound(w, "Post not found")
		case errors.Is(err, model.ErrCommentContentRequired):
			httputil.WriteBadRequest(w, "Comment content is required")
		case errors.Is(err, model.ErrCommentContentTooLong):
			httputil.WriteBadRequest(w, "Comment content too long")
		default:
			h.log.Errorw("create comment handler", "user_id", identity.ID, "post_id", postID, "error", err)
			httputil.WriteInternalError(w, "Failed to create comment")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, comment)
}
