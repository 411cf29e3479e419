package auth

import (
	"errors"
	"fmt"
)

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token format is invalid or signature doesn't match
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrTokenNotYetValid indicates the token is not yet valid (nbf claim in the future)
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrRevokedToken indicates the token was signed out
	ErrRevokedToken = errors.New("authentication token has been revoked")

	// ErrWrongTokenType indicates a token issued for another purpose was presented
	ErrWrongTokenType = errors.New("wrong token type")

	// ErrInvalidCredentials covers both unknown email and wrong password
	ErrInvalidCredentials = errors.New("invalid login credentials")

	// ErrEmailTaken indicates signup with an email that is already registered
	ErrEmailTaken = errors.New("email already registered")

	// ErrPasswordTooLong indicates a password bcrypt cannot hash
	ErrPasswordTooLong = errors.New("password must be at most 72 bytes")
)

// IsTokenError reports whether err means the presented token cannot be used.
func IsTokenError(err error) bool {
	return errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken) ||
		errors.Is(err, ErrTokenNotYetValid) ||
		errors.Is(err, ErrMissingToken) ||
		errors.Is(err, ErrRevokedToken) ||
		errors.Is(err, ErrWrongTokenType)
}

// ProviderError is a rejection reported by a hosted auth provider. Message
// is the provider's own explanation and is safe to show to the caller.
type ProviderError struct {
	Status  int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("auth provider rejected request (status %d): %s", e.Status, e.Message)
}
