package supabase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/service/auth"
)

// Authenticator implements auth.Authenticator against the hosted auth API.
type Authenticator struct {
	client *Client
	now    func() time.Time
}

// NewAuthenticator wraps client.
func NewAuthenticator(client *Client) *Authenticator {
	return &Authenticator{client: client, now: time.Now}
}

var _ auth.Authenticator = (*Authenticator)(nil)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type remoteUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func (u remoteUser) identity() *domain.Identity {
	return &domain.Identity{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt}
}

// signUpResponse is either a bare user or a session wrapping one, depending
// on whether the project auto-confirms new accounts.
type signUpResponse struct {
	remoteUser
	User *remoteUser `json:"user"`
}

type tokenResponse struct {
	AccessToken string     `json:"access_token"`
	TokenType   string     `json:"token_type"`
	ExpiresIn   int64      `json:"expires_in"`
	ExpiresAt   int64      `json:"expires_at"`
	User        remoteUser `json:"user"`
}

// SignUp registers email with password.
func (a *Authenticator) SignUp(ctx context.Context, email, password string) (*domain.Identity, error) {
	var resp signUpResponse
	err := a.client.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/v1/signup",
		body:   credentials{Email: email, Password: password},
	}, &resp)
	if err != nil {
		return nil, providerError(err)
	}

	if resp.User != nil {
		return resp.User.identity(), nil
	}
	return resp.remoteUser.identity(), nil
}

// SignInWithPassword exchanges credentials for a session.
func (a *Authenticator) SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error) {
	var resp tokenResponse
	err := a.client.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/v1/token",
		query:  url.Values{"grant_type": {"password"}},
		body:   credentials{Email: email, Password: password},
	}, &resp)
	if err != nil {
		return nil, providerError(err)
	}

	expiresAt := time.Unix(resp.ExpiresAt, 0).UTC()
	if resp.ExpiresAt == 0 {
		expiresAt = a.now().Add(time.Duration(resp.ExpiresIn) * time.Second).UTC()
	}

	return &domain.Session{
		AccessToken: resp.AccessToken,
		TokenType:   domain.TokenTypeBearer,
		ExpiresAt:   expiresAt,
		User:        *resp.User.identity(),
	}, nil
}

// SignOut ends the session token belongs to.
func (a *Authenticator) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return auth.ErrMissingToken
	}
	err := a.client.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/v1/logout",
		token:  token,
	}, nil)
	if err != nil {
		return tokenError(err)
	}
	return nil
}

// GetUser resolves token to the identity it was issued for.
func (a *Authenticator) GetUser(ctx context.Context, token string) (*domain.Identity, error) {
	if token == "" {
		return nil, auth.ErrMissingToken
	}
	var user remoteUser
	err := a.client.do(ctx, request{
		method: http.MethodGet,
		path:   "/auth/v1/user",
		token:  token,
	}, &user)
	if err != nil {
		return nil, tokenError(err)
	}
	if user.ID == "" {
		return nil, auth.ErrInvalidToken
	}
	return user.identity(), nil
}

// providerError turns a 4xx from the auth API into an auth.ProviderError
// so its message reaches the client.
func providerError(err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status < http.StatusInternalServerError {
		return &auth.ProviderError{Status: apiErr.Status, Message: apiErr.Message}
	}
	return err
}

func tokenError(err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) &&
		(apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden) {
		return fmt.Errorf("%w: %w", auth.ErrInvalidToken, err)
	}
	return err
}
