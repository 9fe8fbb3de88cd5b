// Package upstream provides the typed JSON-over-HTTP client for the remote
// backend API. Endpoint paths and request bodies are preserved exactly as
// the backend expects them.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	appConfig "github.com/teamarena/gateway/internal/config"
)

// Client calls the remote backend. All methods take a context; the
// underlying http.Client enforces the configured per-request timeout.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.SugaredLogger
}

// New creates a backend client from upstream configuration.
func New(cfg appConfig.UpstreamConfig, logger *zap.SugaredLogger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// NewWithBaseURL creates a client with a default timeout, used in tests.
func NewWithBaseURL(baseURL string, logger *zap.SugaredLogger) *Client {
	return New(appConfig.UpstreamConfig{BaseURL: baseURL, Timeout: 15 * time.Second}, logger)
}

// envelope is the common response wrapper: {success, message, ...}.
// Endpoint-specific payloads embed it.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// do issues one backend request and decodes the JSON response into out.
// Non-2xx statuses become a StatusError carrying the body's message when
// parseable; an unparseable 2xx body is reported as a StatusError too.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call backend: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := genericHTTPError(resp.StatusCode)
		var env envelope
		if jsonErr := json.Unmarshal(raw, &env); jsonErr == nil && env.Message != "" {
			message = env.Message
		}
		c.logger.Warnw("backend returned error status",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
		)
		return &StatusError{StatusCode: resp.StatusCode, Message: message}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return &StatusError{StatusCode: resp.StatusCode, Message: genericHTTPError(resp.StatusCode)}
		}
	}

	return nil
}

// get issues a GET request.
func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// apiError converts a success:false envelope into an APIError, preferring
// the payload message over the operation fallback.
func apiError(env envelope, fallback string) error {
	if env.Message != "" {
		return &APIError{Message: env.Message}
	}
	return &APIError{Message: fallback}
}
