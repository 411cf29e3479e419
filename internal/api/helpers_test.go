package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/blog-api/internal/api/shared"
	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/stretchr/testify/require"
)

var testIdentity = &domain.Identity{ID: "user-1", Email: "author@example.com"}

// newRequest builds a request with an optional JSON body and chi URL params.
func newRequest(method, target, body string, params map[string]string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}
	return req
}

// authenticated attaches the identity the auth middleware would have resolved.
func authenticated(req *http.Request) *http.Request {
	return req.WithContext(shared.SetIdentity(req.Context(), testIdentity, "test-token"))
}

func decodeError(t *testing.T, body io.Reader) shared.ErrorResponse {
	t.Helper()
	var resp shared.ErrorResponse
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	return resp
}
