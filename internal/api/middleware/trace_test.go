package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/blog-api/internal/api/shared"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceMiddleware(t *testing.T) {
	logBuf, base := logger.NewTestLogger()

	var traceID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID = shared.GetTraceID(r.Context())
		logger.FromContext(r.Context()).Info("inside handler")
	})

	w := httptest.NewRecorder()
	TraceMiddleware(base)(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Len(t, traceID, 32)
	assert.Equal(t, traceID, w.Header().Get("X-Trace-ID"))

	entries, err := logBuf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, traceID, entries[0]["trace_id"])
}

func TestRequestLoggerRedactsHeaders(t *testing.T) {
	logBuf, log := logger.NewTestLogger()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/posts", nil)
	req.Header.Set("Authorization", "Bearer super-secret-token")
	req.Header.Set("Accept", "application/json")
	req = req.WithContext(logger.WithLogger(req.Context(), log))
	w := httptest.NewRecorder()

	RequestLogger(next).ServeHTTP(w, req)

	assert.NotContains(t, logBuf.String(), "super-secret-token")

	entries, err := logBuf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, float64(http.StatusCreated), entries[0]["status"])
	assert.Equal(t, "/api/posts", entries[0]["path"])

	headers, ok := entries[0]["headers"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "[REDACTED]", headers["Authorization"])
	assert.Equal(t, "application/json", headers["Accept"])
}
