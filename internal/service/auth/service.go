package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/store"
)

// Service is the self-hosted Authenticator: accounts live in a UserStore,
// sessions are stateless JWTs, and logout is recorded in a RevocationStore.
type Service struct {
	users    store.UserStore
	hasher   PasswordHasher
	tokens   JWTService
	revoked  RevocationStore
	logger   *slog.Logger
	timeFunc func() time.Time
}

var _ Authenticator = (*Service)(nil)

// NewService wires the collaborators of the self-hosted Authenticator.
func NewService(
	users store.UserStore,
	hasher PasswordHasher,
	tokens JWTService,
	revoked RevocationStore,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		users:    users,
		hasher:   hasher,
		tokens:   tokens,
		revoked:  revoked,
		logger:   logger.With("component", "auth_service"),
		timeFunc: time.Now,
	}
}

// SignUp implements Authenticator.
func (s *Service) SignUp(ctx context.Context, email, password string) (*domain.Identity, error) {
	email = domain.NormalizeEmail(email)

	hashed, err := s.hasher.Hash(password)
	if errors.Is(err, ErrPasswordTooLong) {
		s.logger.Debug("signup with oversized password")
		return nil, err
	}
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, err
	}

	now := s.timeFunc().UTC()
	user := &domain.User{
		Email:          email,
		HashedPassword: hashed,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.logger.Debug("signup with existing email", "email", email)
			return nil, fmt.Errorf("%w: %w", ErrEmailTaken, err)
		}
		s.logger.Error("failed to create user", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Debug("user signed up", "user_id", user.ID)
	return user.Identity(), nil
}

// SignInWithPassword implements Authenticator.
func (s *Service) SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error) {
	email = domain.NormalizeEmail(email)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("login for unknown email")
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("failed to look up user", "error", err)
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.hasher.Compare(user.HashedPassword, password); err != nil {
		s.logger.Debug("login with wrong password", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	issued, err := s.tokens.GenerateToken(ctx, user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &domain.Session{
		AccessToken: issued.Token,
		TokenType:   domain.TokenTypeBearer,
		ExpiresAt:   issued.ExpiresAt,
		User:        *user.Identity(),
	}, nil
}

// SignOut implements Authenticator by revoking the token's ID for as long as
// ValidateToken could still accept it.
func (s *Service) SignOut(ctx context.Context, token string) error {
	claims, err := s.tokens.ValidateToken(ctx, token)
	if err != nil {
		return err
	}

	if err := s.revoked.Revoke(ctx, claims.ID, claims.ExpiresAt.Add(TokenLeeway)); err != nil {
		s.logger.Error("failed to revoke token", "error", err, "token_id", claims.ID)
		return err
	}

	s.logger.Debug("user signed out", "user_id", claims.UserID, "token_id", claims.ID)
	return nil
}

// GetUser implements Authenticator. The account is re-read on every call so
// deleted users lose access immediately.
func (s *Service) GetUser(ctx context.Context, token string) (*domain.Identity, error) {
	claims, err := s.tokens.ValidateToken(ctx, token)
	if err != nil {
		return nil, err
	}

	revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		s.logger.Error("failed to check revocation", "error", err)
		return nil, err
	}
	if revoked {
		return nil, ErrRevokedToken
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: user no longer exists", ErrInvalidToken)
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	return user.Identity(), nil
}
