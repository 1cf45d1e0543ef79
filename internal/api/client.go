// Package api implements the horizon client for the NASA Open APIs.
package api

import (
	"fmt"
	"sync"

	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"

	"github.com/edalrymple/horizon/internal/models"
)

// Client is a handle on the NASA Open APIs. It carries the API key, injects
// it into every request, and tracks the remaining rate-limit quota reported
// by the last successful call.
type Client struct {
	httpClient tls_client.HttpClient
	apiKey     string
	baseURL    string

	mu                 sync.RWMutex
	rateLimitRemaining string
}

// ClientOption is a function that configures the client.
type ClientOption func(*Client)

// WithAPIKey sets the API key. The default is the shared public demo key.
func WithAPIKey(key string) ClientOption {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithBaseURL overrides the API host. Used by tests; production callers never
// need it.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient injects a custom HTTP client.
func WithHTTPClient(httpClient tls_client.HttpClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a new Client.
func New(opts ...ClientOption) (*Client, error) {
	client := &Client{
		apiKey:             models.DemoKey,
		baseURL:            models.BaseURL,
		rateLimitRemaining: models.RateLimitUnknown,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient == nil {
		options := []tls_client.HttpClientOption{
			tls_client.WithTimeoutSeconds(30),
			tls_client.WithClientProfile(profiles.Chrome_120),
		}
		httpClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP client: %w", err)
		}
		client.httpClient = httpClient
	}

	return client, nil
}

// APIKey returns the key the client injects into requests.
func (c *Client) APIKey() string {
	return c.apiKey
}

// RateLimitRemaining returns the quota reported by the most recent successful
// call, or "Unknown" if no call has succeeded yet. The value is kept exactly
// as the server sent it.
func (c *Client) RateLimitRemaining() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rateLimitRemaining
}

func (c *Client) setRateLimitRemaining(v string) {
	c.mu.Lock()
	c.rateLimitRemaining = v
	c.mu.Unlock()
}
