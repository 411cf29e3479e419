package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/phrazzld/blog-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-that-is-long-enough-for-testing"

func newTestJWTService(t *testing.T, now func() time.Time) *hmacJWTService {
	t.Helper()
	svc, err := newHMACJWTService(testSecret, time.Hour, now)
	require.NoError(t, err)
	return svc
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(config.AuthConfig{JWTSecret: "short", TokenLifetimeMinutes: 60})
	assert.Error(t, err, "short secrets are rejected")

	_, err = NewJWTService(config.AuthConfig{JWTSecret: testSecret, TokenLifetimeMinutes: 0})
	assert.Error(t, err, "zero lifetime is rejected")

	svc, err := NewJWTService(config.AuthConfig{JWTSecret: testSecret, TokenLifetimeMinutes: 60})
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestJWTService(t, func() time.Time { return fixedTime })

	issued, err := svc.GenerateToken(context.Background(), "user-1", "a@b.com")
	require.NoError(t, err)
	require.NotEmpty(t, issued.Token)
	assert.NotEmpty(t, issued.ID)
	assert.Equal(t, fixedTime.Add(time.Hour), issued.ExpiresAt)

	claims, err := svc.ValidateToken(context.Background(), issued.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.Equal(t, issued.ID, claims.ID)
	assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, issued.ExpiresAt.Unix(), claims.ExpiresAt.Unix())
}

func TestGenerateTokenUniqueIDs(t *testing.T) {
	t.Parallel()

	svc := newTestJWTService(t, time.Now)
	first, err := svc.GenerateToken(context.Background(), "user-1", "a@b.com")
	require.NoError(t, err)
	second, err := svc.GenerateToken(context.Background(), "user-1", "a@b.com")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, first.Token, second.Token)
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestJWTService(t, func() time.Time { return fixedTime })

	valid, err := svc.GenerateToken(context.Background(), "user-1", "a@b.com")
	require.NoError(t, err)

	wrongKey, err := newHMACJWTService("wrong-secret-that-is-long-enough-for-testing", time.Hour,
		func() time.Time { return fixedTime })
	require.NoError(t, err)
	foreign, err := wrongKey.GenerateToken(context.Background(), "user-1", "a@b.com")
	require.NoError(t, err)

	signOther := func(claims jwtCustomClaims) string {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)
		return token
	}
	refresh := signOther(jwtCustomClaims{
		UserID:    "user-1",
		TokenType: "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "jti-1",
			ExpiresAt: jwt.NewNumericDate(fixedTime.Add(time.Hour)),
		},
	})
	noJTI := signOther(jwtCustomClaims{
		UserID:    "user-1",
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(fixedTime.Add(time.Hour)),
		},
	})

	tests := []struct {
		name    string
		token   string
		now     time.Time
		wantErr error
	}{
		{name: "valid token", token: valid.Token, now: fixedTime},
		{name: "within clock skew after expiry", token: valid.Token, now: fixedTime.Add(time.Hour + time.Minute)},
		{name: "expired token", token: valid.Token, now: fixedTime.Add(2 * time.Hour), wantErr: ErrExpiredToken},
		{name: "issued in the future", token: valid.Token, now: fixedTime.Add(-10 * time.Minute), wantErr: ErrInvalidToken},
		{name: "wrong signature", token: foreign.Token, now: fixedTime, wantErr: ErrInvalidToken},
		{name: "malformed token", token: "not-a-jwt", now: fixedTime, wantErr: ErrInvalidToken},
		{name: "empty token", token: "", now: fixedTime, wantErr: ErrMissingToken},
		{name: "wrong token type", token: refresh, now: fixedTime, wantErr: ErrWrongTokenType},
		{name: "missing token id", token: noJTI, now: fixedTime, wantErr: ErrInvalidToken},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			now := tc.now
			checker := newTestJWTService(t, func() time.Time { return now })

			claims, err := checker.ValidateToken(context.Background(), tc.token)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "user-1", claims.UserID)
		})
	}
}
