package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/blog-api/internal/api/shared"
	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/service/auth"
	"github.com/phrazzld/blog-api/internal/store"
)

// Client-facing messages.
const (
	MsgInvalidRequest     = "Invalid request format"
	MsgUnexpected         = "An unexpected error occurred"
	MsgPostNotFound       = "Post not found"
	MsgCommentNotFound    = "Comment not found"
	MsgNotFound           = "Resource not found"
	MsgInvalidCredentials = "Invalid login credentials"
	MsgEmailTaken         = "Email already registered"
	MsgPasswordTooLong    = "Password must be at most 72 bytes"
	MsgSignUpFailed       = "Sign up failed"
	MsgUnauthorized       = "Authorization token required"
	MsgInvalidToken       = "Invalid or expired token"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var providerErr *auth.ProviderError
	var validationErr *domain.ValidationError

	switch {
	case errors.As(err, &validationErr),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	case auth.IsTokenError(err),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Auth collaborator rejections are the client's problem.
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrEmailTaken),
		errors.Is(err, auth.ErrPasswordTooLong),
		errors.As(err, &providerErr):
		return http.StatusBadRequest

	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return MsgUnexpected
	}

	var validationErr *domain.ValidationError
	var providerErr *auth.ProviderError

	switch {
	case errors.As(err, &validationErr):
		return validationErr.Error()
	case auth.IsTokenError(err):
		return MsgInvalidToken
	case errors.Is(err, domain.ErrUnauthorized):
		return MsgUnauthorized
	case errors.Is(err, auth.ErrInvalidCredentials):
		return MsgInvalidCredentials
	case errors.Is(err, auth.ErrEmailTaken):
		return MsgEmailTaken
	case errors.Is(err, auth.ErrPasswordTooLong):
		return MsgPasswordTooLong
	case errors.As(err, &providerErr) && providerErr.Message != "":
		return providerErr.Message
	case errors.Is(err, store.ErrCommentNotFound):
		return MsgCommentNotFound
	case errors.Is(err, store.ErrPostNotFound):
		return MsgPostNotFound
	case errors.Is(err, store.ErrNotFound):
		return MsgNotFound
	case errors.Is(err, domain.ErrValidation), errors.Is(err, store.ErrInvalidEntity):
		return shared.ValidationFailedMessage
	default:
		return MsgUnexpected
	}
}

// HandleAPIError writes the response for err. For 500s, fallback (when set)
// replaces the generic message so clients can tell which operation failed.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && fallback != "" {
		message = fallback
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
