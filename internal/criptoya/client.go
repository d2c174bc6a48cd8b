// Package criptoya is a client for the CriptoYa price-aggregation API
// (https://criptoya.com/api/{ASSET}/{FIAT}/{volume}).
package criptoya

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

//go:generate go run go.uber.org/mock/mockgen -destination=mock_http_client_test.go -package=criptoya_test . HTTPClient

// DefaultBaseURL is the public CriptoYa API root.
const DefaultBaseURL = "https://criptoya.com/api"

// HTTPClient is the subset of *http.Client used by Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches exchange quotes from CriptoYa.
//
// A Client holds no per-request state and is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	header     http.Header
	log        zerolog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient overrides the HTTP client. The default is a plain
// *http.Client without a timeout; cancellation comes from the request context.
func WithHTTPClient(c HTTPClient) ClientOption {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithBaseURL overrides the API root (no trailing slash needed).
func WithBaseURL(u string) ClientOption {
	return func(client *Client) {
		client.baseURL = strings.TrimRight(u, "/")
	}
}

// WithHeader adds headers sent with every request.
func WithHeader(h http.Header) ClientOption {
	return func(client *Client) {
		for k, vs := range h {
			for _, v := range vs {
				client.header.Add(k, v)
			}
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(client *Client) {
		if ua != "" {
			client.header.Set("User-Agent", ua)
		}
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l zerolog.Logger) ClientOption {
	return func(client *Client) {
		client.log = l
	}
}

// NewClient creates a CriptoYa client.
func NewClient(opts ...ClientOption) (*Client, error) {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{},
		header:     http.Header{"Accept": []string{"application/json"}},
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: want http(s)://host[/path]", c.baseURL)
	}
	if c.httpClient == nil {
		return nil, fmt.Errorf("nil http client")
	}
	return c, nil
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// CloseIdleConnections releases pooled connections when the underlying client
// supports it.
func (c *Client) CloseIdleConnections() {
	if hc, ok := c.httpClient.(interface{ CloseIdleConnections() }); ok {
		hc.CloseIdleConnections()
	}
}
