package store

import (
	"context"

	"github.com/phrazzld/blog-api/internal/domain"
)

// PostStore defines the post operations the HTTP layer delegates.
// Every method is a single round trip to the backend.
type PostStore interface {
	// List returns every post. Ordering is up to the implementation.
	List(ctx context.Context) ([]domain.Post, error)

	// Search returns the posts matching any clause of the filter.
	Search(ctx context.Context, filter OrFilter) ([]domain.Post, error)

	// GetByID returns exactly one post.
	// Returns ErrPostNotFound if the post does not exist.
	GetByID(ctx context.Context, id string) (*domain.Post, error)

	// Create inserts the post and returns the stored row with its
	// generated ID and timestamps.
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)

	// Update applies the non-nil fields of the patch and returns the
	// updated rows. An empty slice means no post matched.
	Update(ctx context.Context, id string, patch domain.PostPatch) ([]domain.Post, error)

	// Delete removes the post and returns the deleted rows. An empty
	// slice means no post matched.
	Delete(ctx context.Context, id string) ([]domain.Post, error)
}
