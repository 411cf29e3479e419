package mocks

import (
	"context"

	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/service/auth"
)

// Credentials records one SignUp or SignInWithPassword call.
type Credentials struct {
	Email    string
	Password string
}

// MockAuthenticator implements auth.Authenticator for testing
type MockAuthenticator struct {
	SignUpFn             func(ctx context.Context, email, password string) (*domain.Identity, error)
	SignInWithPasswordFn func(ctx context.Context, email, password string) (*domain.Session, error)
	SignOutFn            func(ctx context.Context, token string) error
	GetUserFn            func(ctx context.Context, token string) (*domain.Identity, error)

	// Default values used when functions aren't explicitly defined
	Identity *domain.Identity
	Session  *domain.Session
	Err      error

	// Recorded calls
	SignUpCalls  []Credentials
	SignInCalls  []Credentials
	SignOutCalls []string
	GetUserCalls []string
}

var _ auth.Authenticator = (*MockAuthenticator)(nil)

// SignUp implements auth.Authenticator
func (m *MockAuthenticator) SignUp(ctx context.Context, email, password string) (*domain.Identity, error) {
	m.SignUpCalls = append(m.SignUpCalls, Credentials{Email: email, Password: password})
	if m.SignUpFn != nil {
		return m.SignUpFn(ctx, email, password)
	}
	return m.Identity, m.Err
}

// SignInWithPassword implements auth.Authenticator
func (m *MockAuthenticator) SignInWithPassword(
	ctx context.Context,
	email, password string,
) (*domain.Session, error) {
	m.SignInCalls = append(m.SignInCalls, Credentials{Email: email, Password: password})
	if m.SignInWithPasswordFn != nil {
		return m.SignInWithPasswordFn(ctx, email, password)
	}
	return m.Session, m.Err
}

// SignOut implements auth.Authenticator
func (m *MockAuthenticator) SignOut(ctx context.Context, token string) error {
	m.SignOutCalls = append(m.SignOutCalls, token)
	if m.SignOutFn != nil {
		return m.SignOutFn(ctx, token)
	}
	return m.Err
}

// GetUser implements auth.Authenticator
func (m *MockAuthenticator) GetUser(ctx context.Context, token string) (*domain.Identity, error) {
	m.GetUserCalls = append(m.GetUserCalls, token)
	if m.GetUserFn != nil {
		return m.GetUserFn(ctx, token)
	}
	return m.Identity, m.Err
}
