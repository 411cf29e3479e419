package auth

import (
	"context"
	"time"
)

// TokenTypeAccess marks tokens that authorize API requests.
const TokenTypeAccess = "access"

// TokenLeeway is the clock skew tolerated on exp, nbf and iat. A token stays
// acceptable until ExpiresAt plus this margin.
const TokenLeeway = 2 * time.Minute

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT access token for the user.
	// The returned IssuedToken carries the token ID needed for revocation.
	GenerateToken(ctx context.Context, userID, email string) (*IssuedToken, error)

	// ValidateToken validates the provided access token string and extracts the claims.
	// Returns ErrExpiredToken, ErrTokenNotYetValid, ErrWrongTokenType or ErrInvalidToken
	// when validation fails.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// IssuedToken is a freshly signed access token.
type IssuedToken struct {
	Token     string
	ID        string
	ExpiresAt time.Time
}

// Claims represents the custom claims structure for the JWT tokens.
type Claims struct {
	UserID    string    `json:"uid,omitempty"`
	Email     string    `json:"email,omitempty"`
	TokenType string    `json:"type,omitempty"`
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
