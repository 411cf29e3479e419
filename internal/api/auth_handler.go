package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/blog-api/internal/api/shared"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/service/auth"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	authenticator auth.Authenticator
	logger        *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(authenticator auth.Authenticator, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		authenticator: authenticator,
		logger:        logger.With("component", "auth_handler"),
	}
}

// SignUp handles POST /auth/signup.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	identity, err := h.authenticator.SignUp(r.Context(), req.Email, req.Password)
	if err != nil {
		h.respondAuthFailure(w, r, err, MsgSignUpFailed)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, SignUpResponse{
		Message: "User signed up successfully",
		User:    *identity,
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	session, err := h.authenticator.SignInWithPassword(r.Context(), req.Email, req.Password)
	if err != nil {
		h.respondAuthFailure(w, r, err, MsgInvalidCredentials)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		Message:     "User logged in successfully",
		User:        session.User,
		AccessToken: session.AccessToken,
		TokenType:   session.TokenType,
		ExpiresAt:   session.ExpiresAt,
	})
}

// Logout handles POST /auth/logout by revoking the presented token.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := shared.GetAccessToken(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, MsgUnauthorized)
		return
	}

	if err := h.authenticator.SignOut(r.Context(), token); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to log out", err)
		return
	}

	shared.RespondWithMessage(w, r, http.StatusOK, "User logged out successfully")
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, identity)
}

// respondAuthFailure answers every collaborator failure on signup and login
// with 400. Known rejections keep their message; anything else gets fallback.
func (h *AuthHandler) respondAuthFailure(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var providerErr *auth.ProviderError
	message := fallback
	switch {
	case errors.Is(err, auth.ErrEmailTaken):
		message = MsgEmailTaken
	case errors.Is(err, auth.ErrInvalidCredentials):
		message = MsgInvalidCredentials
	case errors.Is(err, auth.ErrPasswordTooLong):
		message = MsgPasswordTooLong
	case errors.As(err, &providerErr) && providerErr.Message != "":
		message = providerErr.Message
	default:
		log.Error("auth collaborator failed", "error", err)
	}

	shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, message, err)
}
