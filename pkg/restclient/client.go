// Package restclient provides the single configured HTTP client every
// backend call funnels through: fixed base URL, process-wide request timeout,
// a per-request correlation id and uniform error mapping.
package restclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultTimeout matches the original admin client configuration.
const DefaultTimeout = 10 * time.Second

// Config holds the client configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration // zero means DefaultTimeout
}

// Client is a thin wrapper over http.Client bound to one backend.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.SugaredLogger
}

// NewClient validates the configuration and returns a ready client.
func NewClient(cfg Config, log *zap.SugaredLogger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("restclient: base URL is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("restclient: invalid base URL %q: %w", cfg.BaseURL, err)
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}, nil
}

// GetJSON issues a GET and decodes the response body into out.
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	return c.doJSON(ctx, http.MethodGet, path, nil, out)
}

// PostJSON issues a POST with a JSON body.
func (c *Client) PostJSON(ctx context.Context, path string, body any, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, body, out)
}

// PutJSON issues a PUT with a JSON body.
func (c *Client) PutJSON(ctx context.Context, path string, body any, out any) error {
	return c.doJSON(ctx, http.MethodPut, path, body, out)
}

// Delete issues a DELETE and discards any response body.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, "", nil, nil)
}

// SendMultipart issues a POST or PUT whose body is an already-encoded
// multipart form.
func (c *Client) SendMultipart(ctx context.Context, method, path, contentType string, body []byte) error {
	return c.do(ctx, method, path, contentType, bytes.NewReader(body), nil)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("restclient: marshal %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(encoded)
	}
	return c.do(ctx, method, path, "application/json", reader, out)
}

// do builds the request, attaches the correlation id, executes it and maps
// non-2xx responses to *ServerError.
func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("restclient: build %s %s: %w", method, path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	c.log.Debugw("request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warnw("request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return fmt.Errorf("restclient: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		serverErr := decodeServerError(resp)
		c.log.Warnw("server error", "method", method, "path", path,
			"request_id", requestID, "status", resp.StatusCode, "message", serverErr.Message)
		return serverErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("restclient: decode %s %s response: %w", method, path, err)
		}
	}
	return nil
}

// decodeServerError extracts the server's message when the error body carries
// one; otherwise the error falls back to a generic status line.
func decodeServerError(resp *http.Response) *ServerError {
	serverErr := &ServerError{Status: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return serverErr
	}
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			serverErr.Message = body.Message
		} else {
			serverErr.Message = body.Error
		}
	}
	return serverErr
}
