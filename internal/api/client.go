// Package api implements the REST client for the MedBot backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/Crusty-Banana/medbot-client/internal/observability/metrics"
)

// DefaultBaseURL is the production backend.
const DefaultBaseURL = "https://medbot-backend.fly.dev/api/v1"

// TokenSource supplies the current access token. An empty string means the
// client is signed out and requests go out unauthenticated.
type TokenSource interface {
	AccessToken() string
}

// Client talks to the MedBot backend REST API.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     zerolog.Logger
	metrics *metrics.Metrics
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger sets the client logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log.With().Str("component", "api").Logger() }
}

// WithTimeout sets the per-request timeout on the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// New creates a backend client. baseURL defaults to DefaultBaseURL when
// empty; tokens may be nil for a client that only calls auth endpoints.
func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: baseURL,
		http:    newDefaultHTTPClient(),
		tokens:  tokens,
		log:     zerolog.Nop(),
		metrics: metrics.DefaultMetrics,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// newDefaultHTTPClient configures transport-level timeouts; the overall
// request lifetime stays under the caller's context deadline plus the
// client timeout.
func newDefaultHTTPClient() *http.Client {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		ForceAttemptHTTP2:     true,
		DialContext:           (&net.Dialer{Timeout: 5 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
		MaxIdleConns:          20,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
	}
	return &http.Client{
		Transport: transport,
		Timeout:   30 * time.Second,
	}
}

// APIError is a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("backend returned %d", e.StatusCode)
}

// IsAuthError reports whether the backend rejected the credentials.
func (e *APIError) IsAuthError() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// errorBody is the backend's error envelope. Either field may be set.
type errorBody struct {
	Detail string `json:"detail"`
	Err    string `json:"error"`
}

// do sends one JSON request. op names the operation for logs and metrics;
// body and out may be nil. Any 2xx is success.
func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", op, err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build %s request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.tokens != nil {
		if token := c.tokens.AccessToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
			// The backend also expects X-API-Auth on conversation endpoints.
			req.Header.Set("X-API-Auth", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.RecordAPIRequest(op, "error", time.Since(start).Seconds())
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	c.metrics.RecordAPIRequest(op, strconv.Itoa(resp.StatusCode), time.Since(start).Seconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var eb errorBody
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if json.Unmarshal(raw, &eb) == nil {
			if eb.Detail != "" {
				apiErr.Detail = eb.Detail
			} else {
				apiErr.Detail = eb.Err
			}
		}
		if apiErr.IsAuthError() {
			c.metrics.RecordAuthFailure()
		}
		c.log.Debug().
			Str("operation", op).
			Int("status", resp.StatusCode).
			Msg("Backend request failed")
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
			return fmt.Errorf("decode %s response: %w", op, err)
		}
	}
	return nil
}
