package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/phrazzld/blog-api/internal/config"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/redact"
)

// maxErrorBody caps how much of an error response is read.
const maxErrorBody = 64 << 10

// TokenSource returns the end user's access token for the request in ctx.
// Data requests fall back to the anon key when it reports false.
type TokenSource func(ctx context.Context) (string, bool)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTokenSource sets how data requests find the caller's access token.
func WithTokenSource(src TokenSource) Option {
	return func(c *Client) {
		c.tokens = src
	}
}

// Client talks to a hosted project's auth and REST endpoints.
type Client struct {
	baseURL *url.URL
	anonKey string
	http    *http.Client
	tokens  TokenSource
	logger  *slog.Logger
}

// NewClient builds a client from cfg. The URL must be absolute.
func NewClient(cfg config.SupabaseConfig, logger *slog.Logger, opts ...Option) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.URL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid supabase url %q", cfg.URL)
	}
	if cfg.AnonKey == "" {
		return nil, errors.New("supabase anon key is required")
	}

	if logger == nil {
		logger = slog.Default()
	}

	c := &Client{
		baseURL: base,
		anonKey: cfg.AnonKey,
		http:    &http.Client{Timeout: cfg.Timeout},
		tokens:  func(context.Context) (string, bool) { return "", false },
		logger:  logger.With(slog.String("component", "supabase_client")),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// request describes one call to the hosted API.
type request struct {
	method string
	path   string
	query  url.Values
	token  string
	body   any
	prefer string
}

// APIError is a non-2xx response from the hosted API. Code carries the
// PostgREST or Postgres error code when the body had one.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("supabase: status %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("supabase: status %d: %s", e.Status, e.Message)
}

// errorBody covers both the auth and REST error shapes.
type errorBody struct {
	Code             json.RawMessage `json:"code"`
	ErrorCode        string          `json:"error_code"`
	Message          string          `json:"message"`
	Msg              string          `json:"msg"`
	Error            string          `json:"error"`
	ErrorDescription string          `json:"error_description"`
}

func (b errorBody) message() string {
	for _, m := range []string{b.Msg, b.Message, b.ErrorDescription, b.Error} {
		if m != "" {
			return m
		}
	}
	return ""
}

func (b errorBody) code() string {
	if b.ErrorCode != "" {
		return b.ErrorCode
	}
	var s string
	if err := json.Unmarshal(b.Code, &s); err == nil {
		return s
	}
	return ""
}

// do sends req and decodes a 2xx JSON body into out when out is non-nil.
func (c *Client) do(ctx context.Context, req request, out any) error {
	log := logger.FromContextOrDefault(ctx, c.logger)

	u := *c.baseURL
	u.Path = c.baseURL.Path + req.path
	if len(req.query) > 0 {
		u.RawQuery = req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		payload, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u.String(), body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	token := req.token
	if token == "" {
		token = c.anonKey
	}
	httpReq.Header.Set("apikey", c.anonKey)
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Accept", "application/json")
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.prefer != "" {
		httpReq.Header.Set("Prefer", req.prefer)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		log.Error("supabase request failed",
			slog.String("method", req.method),
			slog.String("path", req.path),
			slog.String("error", redact.Error(err)))
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		apiErr := &APIError{Status: resp.StatusCode}
		var eb errorBody
		if json.Unmarshal(raw, &eb) == nil {
			apiErr.Code = eb.code()
			apiErr.Message = eb.message()
		}
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		log.Debug("supabase returned error",
			slog.String("method", req.method),
			slog.String("path", req.path),
			slog.Int("status", apiErr.Status),
			slog.String("code", apiErr.Code))
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", req.method, req.path, err)
	}
	return nil
}

// userToken returns the caller's token from ctx, or "" for the anon key.
func (c *Client) userToken(ctx context.Context) string {
	token, ok := c.tokens(ctx)
	if !ok {
		return ""
	}
	return token
}
