// Package apisports provides the HTTP client for the api-sports basketball
// API.
//
// api-sports wraps every payload in a {get, parameters, errors, results,
// response} envelope and authenticates with a static header key. Rate
// limiting is handled via a token bucket limiter.
package apisports

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/albapepper/hoops-collector/internal/provider"
)

// DefaultBaseURL is the public basketball endpoint.
const DefaultBaseURL = "https://v1.basketball.api-sports.io"

var (
	// ErrUnavailable is satisfied by every error the client returns.
	ErrUnavailable = errors.New("basketball source unavailable")
	// ErrInvalidRequest marks requests rejected before any network call.
	ErrInvalidRequest = errors.New("invalid source request")
)

// Call outcomes reported to an Observer.
const (
	OutcomeOK       = "ok"
	OutcomeError    = "error"
	OutcomeRejected = "rejected"
)

// Observer is notified once per operation.
type Observer func(endpoint, outcome string, elapsed time.Duration)

// Client is the shared HTTP client for all basketball endpoints.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
	logger     *slog.Logger
	observe    Observer
	now        func() time.Time
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default 30s-timeout HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithObserver installs a per-call hook, typically a metrics recorder.
func WithObserver(o Observer) Option {
	return func(c *Client) { c.observe = o }
}

// WithClock overrides the clock used to pick today's date for live games.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// NewClient creates a basketball HTTP client with rate limiting.
// A non-positive requestsPerMinute disables the limiter.
func NewClient(baseURL, apiKey string, requestsPerMinute int, logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	limit := rate.Inf
	if requestsPerMinute > 0 {
		limit = rate.Limit(float64(requestsPerMinute) / 60.0)
	}
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		limiter:    rate.NewLimiter(limit, 1),
		logger:     logger,
		observe:    func(string, string, time.Duration) {},
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get performs a rate-limited GET request and returns the raw body.
func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("x-apisports-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("api-sports %s returned %d: %s", path, resp.StatusCode, truncate(body, 200))
	}
	return body, nil
}

// fetch runs one operation end to end: request, envelope decode and
// source-reported error check. Failures are logged with the attempted
// parameters and wrapped in ErrUnavailable.
func fetch[T any](ctx context.Context, c *Client, op, path string, params url.Values) (*provider.Envelope[T], error) {
	start := time.Now()
	env, err := fetchEnvelope[T](ctx, c, path, params)
	if err != nil {
		c.observe(path, OutcomeError, time.Since(start))
		c.logger.Error("Failed to fetch "+op, "params", params.Encode(), "error", err)
		return nil, fmt.Errorf("%w: fetch %s: %w", ErrUnavailable, op, err)
	}
	c.observe(path, OutcomeOK, time.Since(start))
	return env, nil
}

func fetchEnvelope[T any](ctx context.Context, c *Client, path string, params url.Values) (*provider.Envelope[T], error) {
	body, err := c.get(ctx, path, params)
	if err != nil {
		return nil, err
	}
	var env provider.Envelope[T]
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(env.Errors) > 0 {
		return nil, fmt.Errorf("source errors: %s", strings.Join(env.Errors, "; "))
	}
	return &env, nil
}

// reject logs a precondition failure and returns it without calling out.
func (c *Client) reject(path string, level slog.Level, msg string, params url.Values) error {
	c.observe(path, OutcomeRejected, 0)
	c.logger.Log(context.Background(), level, msg, "params", params.Encode())
	return fmt.Errorf("%w: %w: %s", ErrUnavailable, ErrInvalidRequest, msg)
}

// CheckReachability probes /status. Any failure reports false.
func (c *Client) CheckReachability(ctx context.Context) bool {
	start := time.Now()
	if _, err := c.get(ctx, "/status", nil); err != nil {
		c.observe("/status", OutcomeError, time.Since(start))
		c.logger.Error("API connection test failed", "error", err)
		return false
	}
	c.observe("/status", OutcomeOK, time.Since(start))
	c.logger.Info("API connection test successful")
	return true
}

// truncate returns a truncated string representation for error messages.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
