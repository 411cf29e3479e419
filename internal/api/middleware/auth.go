package middleware

import (
	"net/http"
	"strings"

	"github.com/phrazzld/blog-api/internal/api/shared"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/service/auth"
)

// Messages returned by the auth guard.
const (
	MsgTokenRequired = "Authorization token required"
	MsgTokenInvalid  = "Invalid or expired token"
)

// AuthMiddleware resolves bearer tokens through the auth collaborator.
type AuthMiddleware struct {
	authenticator auth.Authenticator
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(authenticator auth.Authenticator) *AuthMiddleware {
	return &AuthMiddleware{
		authenticator: authenticator,
	}
}

// Authenticate requires a valid bearer token and stores the resolved
// identity and the raw token in the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := BearerToken(r)
		if !ok {
			shared.RespondWithError(w, r, http.StatusUnauthorized, MsgTokenRequired)
			return
		}

		identity, err := m.authenticator.GetUser(r.Context(), token)
		if err != nil || identity == nil {
			if err != nil && !auth.IsTokenError(err) {
				// Non-token failures mean the collaborator itself misbehaved.
				shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, MsgTokenInvalid, err,
					shared.WithElevatedLogLevel())
				return
			}
			shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, MsgTokenInvalid, err)
			return
		}

		ctx := shared.SetIdentity(r.Context(), identity, token)
		log := logger.FromContext(ctx).With("user_id", identity.ID)
		ctx = logger.WithLogger(ctx, log)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header. The scheme is matched case-insensitively.
func BearerToken(r *http.Request) (string, bool) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return "", false
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}
