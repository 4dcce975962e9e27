// Package apiclient reads collections from the OctoFit REST API.
//
// Every collection lives at <base URL>/api/<resource>/ and is served either
// as a JSON array or as a pagination envelope {"results": [...]}.
package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dalemusser/octofit/internal/app/system/observability"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 32 << 20

// LocalBaseURL is used when neither a base URL nor a codespace is configured.
const LocalBaseURL = "http://localhost:8000"

// Client issues GET requests against the upstream API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithBearerToken sends token as an OAuth2 bearer token on every request.
// Blank tokens are ignored.
func WithBearerToken(token string) Option {
	return func(c *Client) {
		token = strings.TrimSpace(token)
		if token == "" {
			return
		}
		base := c.httpClient.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
		c.httpClient = &http.Client{
			Timeout:   c.httpClient.Timeout,
			Transport: &oauth2.Transport{Source: src, Base: base},
		}
	}
}

// WithLogger sets the logger used for shape warnings.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.log = logger
		}
	}
}

// New constructs a Client for baseURL, which must be an absolute http or
// https URL. A trailing slash is ignored.
//
// Options are applied in order; WithHTTPClient must precede
// WithBearerToken for the token to wrap the custom client.
func New(baseURL string, opts ...Option) (*Client, error) {
	clean, err := ValidateBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL:    clean,
		httpClient: &http.Client{},
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ValidateBaseURL checks raw and returns it without a trailing slash.
func ValidateBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse base URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("base URL %q must use http or https", raw)
	}
	if u.Host == "" {
		return "", fmt.Errorf("base URL %q has no host", raw)
	}
	return strings.TrimRight(raw, "/"), nil
}

// CodespaceBaseURL returns the forwarded port-8000 URL of a GitHub
// codespace, e.g. "https://fuzzy-goggles-8000.app.github.dev".
func CodespaceBaseURL(codespace string) string {
	return "https://" + strings.TrimSpace(codespace) + "-8000.app.github.dev"
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Endpoint returns the collection URL for resource.
func (c *Client) Endpoint(resource string) string {
	return c.baseURL + "/api/" + url.PathEscape(resource) + "/"
}

// List fetches one collection and returns its records as raw JSON.
//
// Transport failures are returned as is, non-2xx responses as
// *StatusError and malformed bodies as *ParseError. A payload of the wrong
// shape is not an error: it yields an empty list and is logged and counted.
func (c *Client) List(ctx context.Context, resource string) ([]json.RawMessage, error) {
	endpoint := c.Endpoint(resource)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, &StatusError{Code: resp.StatusCode, URL: endpoint}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", endpoint, err)
	}

	items, ok, err := Normalize(body)
	if err != nil {
		return nil, err
	}
	if !ok {
		c.log.Warn("upstream payload is neither an array nor a results envelope; showing empty list",
			zap.String("resource", resource),
			zap.String("url", endpoint))
		observability.RecordShapeMismatch(resource)
	}
	return items, nil
}

// ListAs fetches resource and decodes each record into T.
func ListAs[T any](ctx context.Context, c *Client, resource string) ([]T, error) {
	raw, err := c.List(ctx, resource)
	if err != nil {
		return nil, err
	}
	return Decode[T](raw), nil
}

// Ping reports whether the API host answers HTTP at all. Any response,
// whatever its status, counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/", nil)
	if err != nil {
		return err
	}
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	resp.Body.Close()
	c.log.Debug("upstream ping",
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}
