// Package api is a minimal authenticated JSON client for the remote CI
// API. The credential travels only in a request header set from process
// memory; it is never placed in a URL, an argument list or an error.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pipewatch/cli/internal/errors"
)

// DefaultBaseURL is the production API endpoint
const DefaultBaseURL = "https://circleci.com/api/v2"

// ErrorResponse represents a non-2xx response from the API. It carries the
// best-effort message from the response body, never the raw body itself.
type ErrorResponse struct {
	StatusCode int
	Status     string
	URL        string
	Message    string
}

// Error implements the error interface
func (e *ErrorResponse) Error() string {
	return fmt.Sprintf("request to %s failed: %d %s: %s", e.URL, e.StatusCode, e.Status, e.Message)
}

// IsNotFound returns true if the error is a 404 Not Found
func (e *ErrorResponse) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized returns true if the error is a 401 Unauthorized
func (e *ErrorResponse) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// Client performs authenticated requests against the remote API
type Client struct {
	baseURL   string
	token     string
	userAgent string
	client    *http.Client
}

// ClientOption is a function that modifies a Client
type ClientOption func(*Client)

// WithBaseURL sets the base URL for API requests
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithUserAgent sets the User-Agent header for requests
func WithUserAgent(userAgent string) ClientOption {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithHTTPClient sets the underlying HTTP client
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.client = client
	}
}

// NewClient creates a new client presenting the given token
func NewClient(token string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		token:     token,
		userAgent: "pipewatch-cli",
		client:    http.DefaultClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get performs a GET request to the specified endpoint and unmarshals the
// JSON response into v. A non-2xx status yields an API-category error
// wrapping *ErrorResponse; connectivity and envelope failures yield a
// transport-category error.
func (c *Client) Get(ctx context.Context, endpoint string, v interface{}) error {
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}

	reqURL, err := url.JoinPath(c.baseURL, endpoint)
	if err != nil {
		return errors.NewTransportError(err, "failed to build request URL")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return errors.NewTransportError(err, "failed to create request")
	}

	req.Header.Set("Circle-Token", c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.NewTransportError(sanitizeURLError(err), "failed to reach "+reqURL,
			"check your network connection and the configured API endpoint")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.NewTransportError(err, "failed to read response from "+reqURL)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.NewAPIError(&ErrorResponse{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        reqURL,
			Message:    extractMessage(body),
		}, "")
	}

	if v != nil && len(body) > 0 {
		if err := json.Unmarshal(body, v); err != nil {
			return errors.NewTransportError(err, "malformed response from "+reqURL)
		}
	}

	return nil
}

// extractMessage pulls the conventional error field out of a response
// body, falling back to a generic placeholder
func extractMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return "no error message provided"
}

// sanitizeURLError strips the wrapped *url.Error down to its cause so the
// message is not dominated by the full request URL twice
func sanitizeURLError(err error) error {
	if urlErr, ok := err.(*url.Error); ok && urlErr.Err != nil {
		return urlErr.Err
	}
	return err
}
