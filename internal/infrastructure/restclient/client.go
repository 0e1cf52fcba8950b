// Package restclient implements the typed client for the consumed REST
// backend: a thin JSON request wrapper plus the product and user API modules.
package restclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/storefront-labs/admin-console/internal/core/domain/backend"
)

// Client performs JSON round trips against the backend. It does exactly one
// request per call; retries belong to the query layer above.
type Client struct {
	baseURL    string
	httpClient *http.Client
	headers    map[string]string
	logger     *logrus.Logger
}

// NewClient creates a backend client. timeout bounds each round trip; zero
// means no client-side timeout.
func NewClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		headers:    make(map[string]string),
		logger:     logger,
	}
}

// WithHeader adds a header sent on every request. The JSON content type
// default is kept unless explicitly overridden.
func (c *Client) WithHeader(key, value string) *Client {
	c.headers[key] = value
	return c
}

// Request performs one HTTP round trip. body (when non-nil) is JSON-encoded;
// the response body (when out is non-nil) is JSON-decoded into out. Transport
// failures map to *backend.NetworkError, non-2xx responses to
// *backend.StatusError.
func (c *Client) Request(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &backend.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		c.logger.WithFields(logrus.Fields{
			"method": method,
			"path":   path,
			"status": resp.StatusCode,
		}).Debug("backend returned non-2xx status")
		return &backend.StatusError{Code: resp.StatusCode, Status: http.StatusText(resp.StatusCode)}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}
