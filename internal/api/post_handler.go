package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/blog-api/internal/api/shared"
	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/store"
)

// Columns matched by post search.
var searchColumns = []string{"title", "content"}

// PostHandler handles post-related HTTP requests
type PostHandler struct {
	posts  store.PostStore
	logger *slog.Logger
	opts   handlerOptions
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(posts store.PostStore, logger *slog.Logger, opts ...HandlerOption) *PostHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostHandler{
		posts:  posts,
		logger: logger.With("component", "post_handler"),
		opts:   applyOptions(opts),
	}
}

// ListPosts handles GET /posts
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve posts")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, nonNilPosts(posts))
}

// SearchPosts handles GET /posts/search?query=
func (h *PostHandler) SearchPosts(w http.ResponseWriter, r *http.Request) {
	req := SearchPostsRequest{Query: r.URL.Query().Get("query")}
	if !validate(w, r, &req) {
		return
	}

	filter := store.ContainsAny(req.Query, searchColumns...)
	logger.FromContextOrDefault(r.Context(), h.logger).Debug("searching posts", "filter", filter.String())

	posts, err := h.posts.Search(r.Context(), filter)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to search posts")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, nonNilPosts(posts))
}

// GetPost handles GET /posts/{id}
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.posts.GetByID(r.Context(), pathParam(r, "id"))
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve post")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, post)
}

// CreatePost handles POST /posts
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var req CreatePostRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	post, err := domain.NewPost(req.Title, req.Content, identity.Email)
	if err != nil {
		HandleAPIError(w, r, domain.NewValidationError("post", err.Error(), err), "")
		return
	}

	created, err := h.posts.Create(r.Context(), post)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create post")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, created)
}

// UpdatePost handles PUT /posts/{id}. Only supplied fields change; updated_at
// is always stamped with the handler clock.
func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	var req UpdatePostRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	patch := domain.PostPatch{
		Title:     req.Title,
		Content:   req.Content,
		UpdatedAt: h.opts.now().UTC(),
	}

	updated, err := h.posts.Update(r.Context(), pathParam(r, "id"), patch)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update post")
		return
	}
	if len(updated) == 0 {
		shared.RespondWithError(w, r, http.StatusNotFound, MsgPostNotFound)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, updated)
}

// DeletePost handles DELETE /posts/{id}
func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.posts.Delete(r.Context(), pathParam(r, "id"))
	if err != nil && !errors.Is(err, store.ErrPostNotFound) {
		HandleAPIError(w, r, err, "Failed to delete post")
		return
	}
	if len(deleted) == 0 {
		shared.RespondWithError(w, r, http.StatusNotFound, MsgPostNotFound)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, deleted)
}

func nonNilPosts(posts []domain.Post) []domain.Post {
	if posts == nil {
		return []domain.Post{}
	}
	return posts
}
