package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})
	return mr, client
}

func TestRedisRevocationStore(t *testing.T) {
	ctx := context.Background()
	mr, client := setupTestRedis(t)

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewRedisRevocationStore(client)
	s.timeFunc = func() time.Time { return fixedTime }

	revoked, err := s.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, s.Revoke(ctx, "jti-1", fixedTime.Add(30*time.Minute)))

	revoked, err = s.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
	assert.Equal(t, 30*time.Minute, mr.TTL(revokedKeyPrefix+"jti-1"))

	mr.FastForward(31 * time.Minute)
	revoked, err = s.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked, "entry expires with the token")
}

func TestRedisRevocationStoreSkipsExpiredTokens(t *testing.T) {
	ctx := context.Background()
	mr, client := setupTestRedis(t)

	s := NewRedisRevocationStore(client)
	require.NoError(t, s.Revoke(ctx, "old", time.Now().Add(-time.Minute)))
	assert.False(t, mr.Exists(revokedKeyPrefix+"old"))
}

func TestRedisRevocationStoreUnavailable(t *testing.T) {
	ctx := context.Background()
	mr, client := setupTestRedis(t)
	mr.Close()

	s := NewRedisRevocationStore(client)
	assert.Error(t, s.Revoke(ctx, "jti", time.Now().Add(time.Minute)))
	_, err := s.IsRevoked(ctx, "jti")
	assert.Error(t, err)
}
