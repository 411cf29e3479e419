package supabase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/store"
)

const (
	postsPath    = "/rest/v1/posts"
	commentsPath = "/rest/v1/comments"

	preferRepresentation = "return=representation"
)

// PostStore implements store.PostStore over the hosted REST API.
type PostStore struct {
	client *Client
}

// NewPostStore wraps client.
func NewPostStore(client *Client) *PostStore {
	return &PostStore{client: client}
}

var _ store.PostStore = (*PostStore)(nil)

// List returns every post, newest first.
func (s *PostStore) List(ctx context.Context) ([]domain.Post, error) {
	return s.query(ctx, url.Values{
		"select": {"*"},
		"order":  {"created_at.desc"},
	})
}

// Search returns posts matching any clause of filter.
func (s *PostStore) Search(ctx context.Context, filter store.OrFilter) ([]domain.Post, error) {
	if len(filter) == 0 {
		return nil, fmt.Errorf("%w: empty search filter", store.ErrInvalidEntity)
	}
	return s.query(ctx, url.Values{
		"select": {"*"},
		"or":     {orParam(filter)},
		"order":  {"created_at.desc"},
	})
}

// GetByID returns store.ErrPostNotFound when no post has id.
func (s *PostStore) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	posts, err := s.query(ctx, url.Values{
		"select": {"*"},
		"id":     {"eq." + id},
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, store.ErrPostNotFound
		}
		return nil, err
	}
	if len(posts) == 0 {
		return nil, store.ErrPostNotFound
	}
	return &posts[0], nil
}

type newPost struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Email   string `json:"email"`
}

// Create inserts post and returns the stored row.
func (s *PostStore) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	if err := post.Validate(); err != nil {
		return nil, err
	}

	var rows []domain.Post
	err := s.client.do(ctx, request{
		method: http.MethodPost,
		path:   postsPath,
		token:  s.client.userToken(ctx),
		body:   newPost{Title: post.Title, Content: post.Content, Email: post.Email},
		prefer: preferRepresentation,
	}, &rows)
	if err != nil {
		return nil, storeError(err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: insert returned no rows", store.ErrUnavailable)
	}
	return &rows[0], nil
}

type postPatch struct {
	Title     *string   `json:"title,omitempty"`
	Content   *string   `json:"content,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Update applies patch to the post with id and returns the changed rows.
func (s *PostStore) Update(ctx context.Context, id string, patch domain.PostPatch) ([]domain.Post, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	rows := []domain.Post{}
	err := s.client.do(ctx, request{
		method: http.MethodPatch,
		path:   postsPath,
		query:  url.Values{"id": {"eq." + id}},
		token:  s.client.userToken(ctx),
		body:   postPatch{Title: patch.Title, Content: patch.Content, UpdatedAt: patch.UpdatedAt},
		prefer: preferRepresentation,
	}, &rows)
	if err != nil {
		return emptyOnNotFound(err)
	}
	return rows, nil
}

// Delete removes the post with id and returns the removed rows. Comments go
// with it through the comments.post_id cascade.
func (s *PostStore) Delete(ctx context.Context, id string) ([]domain.Post, error) {
	rows := []domain.Post{}
	err := s.client.do(ctx, request{
		method: http.MethodDelete,
		path:   postsPath,
		query:  url.Values{"id": {"eq." + id}},
		token:  s.client.userToken(ctx),
		prefer: preferRepresentation,
	}, &rows)
	if err != nil {
		return emptyOnNotFound(err)
	}
	return rows, nil
}

func (s *PostStore) query(ctx context.Context, q url.Values) ([]domain.Post, error) {
	posts := []domain.Post{}
	err := s.client.do(ctx, request{
		method: http.MethodGet,
		path:   postsPath,
		query:  q,
		token:  s.client.userToken(ctx),
	}, &posts)
	if err != nil {
		return nil, storeError(err)
	}
	return posts, nil
}

// CommentStore implements store.CommentStore over the hosted REST API.
type CommentStore struct {
	client *Client
}

// NewCommentStore wraps client.
func NewCommentStore(client *Client) *CommentStore {
	return &CommentStore{client: client}
}

var _ store.CommentStore = (*CommentStore)(nil)

// ListByPost returns the comments on postID, oldest first.
func (s *CommentStore) ListByPost(ctx context.Context, postID string) ([]domain.Comment, error) {
	comments := []domain.Comment{}
	err := s.client.do(ctx, request{
		method: http.MethodGet,
		path:   commentsPath,
		query: url.Values{
			"select":  {"*"},
			"post_id": {"eq." + postID},
			"order":   {"created_at.asc"},
		},
		token: s.client.userToken(ctx),
	}, &comments)
	if err != nil {
		err = storeError(err)
		if errors.Is(err, store.ErrNotFound) {
			return []domain.Comment{}, nil
		}
		return nil, err
	}
	return comments, nil
}

type newComment struct {
	PostID  string `json:"post_id"`
	Content string `json:"content"`
	Email   string `json:"email"`
}

// Create inserts comment. A missing parent post yields store.ErrPostNotFound.
func (s *CommentStore) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	if err := comment.Validate(); err != nil {
		return nil, err
	}

	var rows []domain.Comment
	err := s.client.do(ctx, request{
		method: http.MethodPost,
		path:   commentsPath,
		token:  s.client.userToken(ctx),
		body:   newComment{PostID: comment.PostID, Content: comment.Content, Email: comment.Email},
		prefer: preferRepresentation,
	}, &rows)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && (apiErr.Code == codeForeignKey || apiErr.Code == codeInvalidText) {
			return nil, fmt.Errorf("%w: %w", store.ErrPostNotFound, err)
		}
		return nil, storeError(err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: insert returned no rows", store.ErrUnavailable)
	}
	return &rows[0], nil
}

type commentPatch struct {
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Update changes the comment id under postID.
func (s *CommentStore) Update(
	ctx context.Context,
	postID, id string,
	patch domain.CommentPatch,
) (*domain.Comment, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	var rows []domain.Comment
	err := s.client.do(ctx, request{
		method: http.MethodPatch,
		path:   commentsPath,
		query:  scopedComment(postID, id),
		token:  s.client.userToken(ctx),
		body:   commentPatch(patch),
		prefer: preferRepresentation,
	}, &rows)
	return firstComment(rows, err)
}

// Delete removes the comment id under postID.
func (s *CommentStore) Delete(ctx context.Context, postID, id string) (*domain.Comment, error) {
	var rows []domain.Comment
	err := s.client.do(ctx, request{
		method: http.MethodDelete,
		path:   commentsPath,
		query:  scopedComment(postID, id),
		token:  s.client.userToken(ctx),
		prefer: preferRepresentation,
	}, &rows)
	return firstComment(rows, err)
}

func scopedComment(postID, id string) url.Values {
	return url.Values{
		"id":      {"eq." + id},
		"post_id": {"eq." + postID},
	}
}

func firstComment(rows []domain.Comment, err error) (*domain.Comment, error) {
	if err != nil {
		err = storeError(err)
		if errors.Is(err, store.ErrNotFound) {
			return nil, store.ErrCommentNotFound
		}
		return nil, err
	}
	if len(rows) == 0 {
		return nil, store.ErrCommentNotFound
	}
	return &rows[0], nil
}

func emptyOnNotFound(err error) ([]domain.Post, error) {
	err = storeError(err)
	if errors.Is(err, store.ErrNotFound) {
		return []domain.Post{}, nil
	}
	return nil, err
}

// Postgres and PostgREST error codes surfaced in REST error bodies.
const (
	codeUniqueViolation = "23505"
	codeForeignKey      = "23503"
	codeCheckViolation  = "23514"
	codeInvalidText     = "22P02"
	codeNoRows          = "PGRST116"
)

// storeError maps a REST error onto the store sentinels.
func storeError(err error) error {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("%w: %w", store.ErrUnavailable, err)
	}

	switch apiErr.Code {
	case codeUniqueViolation:
		return fmt.Errorf("%w: %w", store.ErrDuplicate, err)
	case codeForeignKey, codeCheckViolation:
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	case codeInvalidText, codeNoRows:
		return fmt.Errorf("%w: %w", store.ErrNotFound, err)
	}

	if apiErr.Status >= http.StatusInternalServerError {
		return fmt.Errorf("%w: %w", store.ErrUnavailable, err)
	}
	return err
}

// orParam renders filter as a PostgREST or=(...) value. Patterns holding
// characters reserved by the filter grammar are double-quoted.
func orParam(filter store.OrFilter) string {
	parts := make([]string, len(filter))
	for i, c := range filter {
		parts[i] = c.Column + ".ilike." + quoteValue(c.Pattern)
	}
	return "(" + strings.Join(parts, ",") + ")"
}

func quoteValue(v string) string {
	if !strings.ContainsAny(v, `,.:()"\ `) {
		return v
	}
	escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(v)
	return `"` + escaped + `"`
}
