package store

import (
	"context"

	"github.com/phrazzld/blog-api/internal/domain"
)

// CommentStore defines the comment operations the HTTP layer delegates.
// Callers verify the parent post exists before using it.
type CommentStore interface {
	// ListByPost returns the comments whose post_id equals postID.
	ListByPost(ctx context.Context, postID string) ([]domain.Comment, error)

	// Create inserts the comment and returns the stored row.
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)

	// Update replaces the content of comment id under postID.
	// Returns ErrCommentNotFound if no such comment exists under the post.
	Update(ctx context.Context, postID, id string, patch domain.CommentPatch) (*domain.Comment, error)

	// Delete removes comment id under postID and returns the deleted row.
	// Returns ErrCommentNotFound if no such comment exists under the post.
	Delete(ctx context.Context, postID, id string) (*domain.Comment, error)
}
