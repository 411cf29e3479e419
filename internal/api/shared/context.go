package shared

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/phrazzld/blog-api/internal/domain"
)

// Key type for context values
type ContextKey string

// Context keys for various values
const (
	// IdentityContextKey is the context key for the resolved caller identity
	IdentityContextKey ContextKey = "identity"

	// AccessTokenContextKey is the context key for the raw bearer token
	AccessTokenContextKey ContextKey = "accessToken"

	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"

	// TraceIDLength is the number of bytes used to generate the trace ID
	TraceIDLength = 16 // 32 hex characters
)

// SetIdentity attaches the caller identity and the token it was resolved from.
func SetIdentity(ctx context.Context, identity *domain.Identity, token string) context.Context {
	ctx = context.WithValue(ctx, IdentityContextKey, identity)
	return context.WithValue(ctx, AccessTokenContextKey, token)
}

// GetIdentity returns the identity attached by the auth middleware.
func GetIdentity(ctx context.Context) (*domain.Identity, bool) {
	identity, ok := ctx.Value(IdentityContextKey).(*domain.Identity)
	if !ok || identity == nil {
		return nil, false
	}
	return identity, true
}

// GetAccessToken returns the bearer token presented with the request.
func GetAccessToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(AccessTokenContextKey).(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

// SetTraceID adds a trace ID to the context.
// This is useful for correlating logs and error responses.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// generateTraceID returns 32 hex characters from crypto/rand, falling back
// to a time-derived value if the random source fails.
func generateTraceID() string {
	b := make([]byte, TraceIDLength)
	n, err := rand.Read(b)
	if err != nil || n != TraceIDLength {
		slog.Error("failed to generate secure random trace ID",
			"error", err,
			"bytes_read", n,
			"fallback", "time-based generation")
		return generateFallbackTraceID()
	}

	return hex.EncodeToString(b)
}

func generateFallbackTraceID() string {
	fallbackID := make([]byte, TraceIDLength)
	now := time.Now()
	binary.BigEndian.PutUint64(fallbackID[:8], uint64(now.UnixNano()))
	binary.BigEndian.PutUint32(fallbackID[8:12], uint32(now.Nanosecond()))
	binary.BigEndian.PutUint32(fallbackID[12:16], uint32(now.Unix()))
	return hex.EncodeToString(fallbackID)
}
