package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationStore remembers signed-out token IDs until the tokens expire.
type RevocationStore interface {
	// Revoke marks tokenID as unusable until expiresAt.
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error

	// IsRevoked reports whether tokenID was revoked.
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

const revokedKeyPrefix = "blog:revoked:"

// RedisRevocationStore keeps one key per revoked token, expiring with the token.
type RedisRevocationStore struct {
	client   redis.UniversalClient
	timeFunc func() time.Time
}

var _ RevocationStore = (*RedisRevocationStore)(nil)

// NewRedisRevocationStore creates a RevocationStore backed by client.
func NewRedisRevocationStore(client redis.UniversalClient) *RedisRevocationStore {
	return &RedisRevocationStore{
		client:   client,
		timeFunc: time.Now,
	}
}

// Revoke implements RevocationStore. Already-expired tokens are not stored.
func (s *RedisRevocationStore) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(s.timeFunc())
	if ttl <= 0 {
		return nil
	}

	if err := s.client.Set(ctx, revokedKeyPrefix+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// IsRevoked implements RevocationStore.
func (s *RedisRevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return n > 0, nil
}
