package domain

import (
	"strings"
	"time"
)

// Identity is the authenticated user a bearer token resolves to.
// It is attached to the request context by the auth guard and never stored
// by the HTTP layer.
type Identity struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// Session is what a successful password sign-in yields.
type Session struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        Identity  `json:"user"`
}

// TokenTypeBearer is the only token type the API issues or accepts.
const TokenTypeBearer = "bearer"

// NormalizeEmail lowercases and trims an address so lookups are
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// User is an account held by the self-hosted auth provider.
type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"` // Never expose password hash in JSON
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Identity returns the public view of the account.
func (u *User) Identity() *Identity {
	return &Identity{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt}
}
