package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type singleUserStore struct {
	user *domain.User
}

func (s *singleUserStore) Create(context.Context, *domain.User) error { return nil }

func (s *singleUserStore) GetByID(_ context.Context, id string) (*domain.User, error) {
	if id != s.user.ID {
		return nil, store.ErrUserNotFound
	}
	return s.user, nil
}

func (s *singleUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if email != s.user.Email {
		return nil, store.ErrUserNotFound
	}
	return s.user, nil
}

func TestSignOutRevokesThroughExpiryLeeway(t *testing.T) {
	ctx := context.Background()
	mr, client := setupTestRedis(t)

	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	now := start
	clock := func() time.Time { return now }
	advance := func(d time.Duration) {
		now = now.Add(d)
		mr.FastForward(d)
	}

	tokens, err := newHMACJWTService(strings.Repeat("s", MinSecretLength), time.Minute, clock)
	require.NoError(t, err)
	revoked := NewRedisRevocationStore(client)
	revoked.timeFunc = clock

	users := &singleUserStore{user: &domain.User{ID: "u1", Email: "a@b.com"}}
	svc := NewService(users, NewBcryptHasher(4), tokens, revoked, nil)

	issued, err := tokens.GenerateToken(ctx, "u1", "a@b.com")
	require.NoError(t, err)

	advance(30 * time.Second)
	require.NoError(t, svc.SignOut(ctx, issued.Token))

	_, err = svc.GetUser(ctx, issued.Token)
	assert.ErrorIs(t, err, ErrRevokedToken)

	// Past exp but still inside the validation leeway.
	advance(time.Minute)
	_, err = svc.GetUser(ctx, issued.Token)
	assert.ErrorIs(t, err, ErrRevokedToken)

	advance(TokenLeeway)
	_, err = svc.GetUser(ctx, issued.Token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}
