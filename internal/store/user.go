package store

import (
	"context"

	"github.com/phrazzld/blog-api/internal/domain"
)

// UserStore persists accounts for the self-hosted auth provider.
// The supabase provider keeps accounts remotely and does not use it.
type UserStore interface {
	// Create saves a new user. Email must already be normalized and the
	// password already hashed. Returns ErrEmailExists if the email is taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id string) (*domain.User, error)

	// GetByEmail retrieves a user by normalized email.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
