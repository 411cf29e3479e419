package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/blog-api/internal/api/shared"
	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/store"
)

// CommentHandler handles comment requests nested under /posts/{id}.
// Every operation checks the parent post first and stops with 404 when it
// does not exist.
type CommentHandler struct {
	posts    store.PostStore
	comments store.CommentStore
	logger   *slog.Logger
	opts     handlerOptions
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(
	posts store.PostStore,
	comments store.CommentStore,
	logger *slog.Logger,
	opts ...HandlerOption,
) *CommentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CommentHandler{
		posts:    posts,
		comments: comments,
		logger:   logger.With("component", "comment_handler"),
		opts:     applyOptions(opts),
	}
}

// CreateComment handles POST /posts/{id}/comments
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var req CommentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	postID, ok := h.requirePost(w, r)
	if !ok {
		return
	}

	comment, err := domain.NewComment(postID, req.Content, identity.Email)
	if err != nil {
		HandleAPIError(w, r, domain.NewValidationError("comment", err.Error(), err), "")
		return
	}

	created, err := h.comments.Create(r.Context(), comment)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create comment")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, created)
}

// ListComments handles GET /posts/{id}/comments
func (h *CommentHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	postID, ok := h.requirePost(w, r)
	if !ok {
		return
	}

	comments, err := h.comments.ListByPost(r.Context(), postID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve comments")
		return
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, comments)
}

// UpdateComment handles PUT /posts/{id}/comments/{commentId}
func (h *CommentHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	var req CommentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	postID, ok := h.requirePost(w, r)
	if !ok {
		return
	}

	patch := domain.CommentPatch{
		Content:   req.Content,
		UpdatedAt: h.opts.now().UTC(),
	}

	updated, err := h.comments.Update(r.Context(), postID, pathParam(r, "commentId"), patch)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update comment")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, updated)
}

// DeleteComment handles DELETE /posts/{id}/comments/{commentId}
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	postID, ok := h.requirePost(w, r)
	if !ok {
		return
	}

	if _, err := h.comments.Delete(r.Context(), postID, pathParam(r, "commentId")); err != nil {
		HandleAPIError(w, r, err, "Failed to delete comment")
		return
	}
	shared.RespondWithMessage(w, r, http.StatusOK, "Comment deleted")
}

// requirePost loads the post named by the {id} path parameter. It writes
// 404 "Post not found" or 500 and returns false when the post is unusable.
func (h *CommentHandler) requirePost(w http.ResponseWriter, r *http.Request) (string, bool) {
	postID := pathParam(r, "id")

	if _, err := h.posts.GetByID(r.Context(), postID); err != nil {
		if store.IsNotFoundError(err) {
			logger.FromContextOrDefault(r.Context(), h.logger).Debug("comment request for missing post",
				"post_id", postID)
			shared.RespondWithError(w, r, http.StatusNotFound, MsgPostNotFound)
			return "", false
		}
		HandleAPIError(w, r, err, "Failed to retrieve post")
		return "", false
	}
	return postID, true
}
