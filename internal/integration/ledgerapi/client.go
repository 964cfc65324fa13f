// Package ledgerapi implements adapter.LedgerAPI over the remote ledger service's REST API.
package ledgerapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/dashboard/config"
	"github.com/finance-tracker/dashboard/internal/application/adapter"
)

// maxErrorBody caps how much of an error response is kept for logs.
const maxErrorBody = 512

// RequestIDHeader is set on every outgoing request.
const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// WithRequestID returns a context whose outgoing ledger requests carry id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// authTransport adds the service token, request ID and content type headers.
type authTransport struct {
	tokens adapter.TokenService // nil disables authentication
	base   http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	if t.tokens != nil {
		token, err := t.tokens.ServiceToken(req.Context())
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+token.Value)
	}

	id, _ := req.Context().Value(requestIDKey{}).(string)
	if id == "" {
		id = uuid.NewString()
	}
	req.Header.Set(RequestIDHeader, id)
	req.Header.Set("Accept", "application/json")
	if req.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return t.base.RoundTrip(req)
}

var _ adapter.LedgerAPI = (*Client)(nil)

// Client talks to the remote ledger service.
type Client struct {
	baseURL string
	client  *http.Client
	metrics adapter.MetricsRecorder
}

// NewClient creates a new ledger service client. tokens may be nil when the
// service does not require authentication.
func NewClient(cfg *config.LedgerAPIConfig, tokens adapter.TokenService, metrics adapter.MetricsRecorder) *Client {
	return NewClientWithTransport(cfg, tokens, metrics, http.DefaultTransport)
}

// NewClientWithTransport is NewClient over a custom base transport.
func NewClientWithTransport(
	cfg *config.LedgerAPIConfig,
	tokens adapter.TokenService,
	metrics adapter.MetricsRecorder,
	base http.RoundTripper,
) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		client: &http.Client{
			Transport: &authTransport{tokens: tokens, base: base},
			Timeout:   cfg.Timeout,
		},
		metrics: metrics,
	}
}

func (c *Client) buildRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	return req, nil
}

// statusError is a non-2xx response.
type statusError struct {
	status int
	body   string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("ledger service responded %d: %s", e.status, e.body)
}

// do sends req and, on a 2xx response, decodes the body into out (when non-nil).
// It returns the HTTP status (0 when no response was received).
func (c *Client) do(req *http.Request, operation string, out any) (int, error) {
	start := time.Now()
	status, err := c.roundTrip(req, out)
	c.metrics.RecordRemoteCall(operation, time.Since(start), err)

	if err != nil {
		slog.ErrorContext(req.Context(), "Ledger service request failed",
			"operation", operation,
			"method", req.Method,
			"url", req.URL.String(),
			"status", status,
			"error", err,
		)
	}
	return status, err
}

func (c *Client) roundTrip(req *http.Request, out any) (int, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return resp.StatusCode, &statusError{status: resp.StatusCode, body: string(bytes.TrimSpace(body))}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("decode response body: %w", err)
	}
	return resp.StatusCode, nil
}
