package auth

import (
	"context"

	"github.com/phrazzld/blog-api/internal/domain"
)

// Authenticator is the auth collaborator consumed by the HTTP layer.
// Implementations own credential storage and token issuance entirely.
type Authenticator interface {
	// SignUp registers a new account and returns its identity.
	SignUp(ctx context.Context, email, password string) (*domain.Identity, error)

	// SignInWithPassword checks credentials and issues a bearer session.
	SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error)

	// SignOut invalidates the given access token.
	SignOut(ctx context.Context, token string) error

	// GetUser resolves an access token to the identity it was issued for.
	GetUser(ctx context.Context, token string) (*domain.Identity, error)
}
