package api

import (
	"time"

	"github.com/phrazzld/blog-api/internal/domain"
)

// CredentialsRequest is the body of signup and login.
type CredentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"min=6"`
}

// CreatePostRequest is the body of POST /posts.
type CreatePostRequest struct {
	Title   string `json:"title" validate:"required,max=100"`
	Content string `json:"content" validate:"required"`
}

// UpdatePostRequest is the body of PUT /posts/{id}. Absent fields are left unchanged.
type UpdatePostRequest struct {
	Title   *string `json:"title" validate:"omitnil,min=1,max=100"`
	Content *string `json:"content" validate:"omitnil,min=1"`
}

// SearchPostsRequest holds the query string of GET /posts/search.
type SearchPostsRequest struct {
	Query string `query:"query" validate:"required"`
}

// CommentRequest is the body of comment create and update.
type CommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// SignUpResponse is returned by POST /auth/signup.
type SignUpResponse struct {
	Message string          `json:"message"`
	User    domain.Identity `json:"user"`
}

// LoginResponse is returned by POST /auth/login.
type LoginResponse struct {
	Message     string          `json:"message"`
	User        domain.Identity `json:"user"`
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	ExpiresAt   time.Time       `json:"expires_at"`
}
