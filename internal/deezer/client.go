// Package deezer is a minimal client for the public Deezer search API.
package deezer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"songsearch/internal/domain"
)

// DefaultEndpoint is the public track search endpoint.
const DefaultEndpoint = "https://api.deezer.com/search"

// ErrSearchFailed covers every way a search can fail: transport errors,
// non-2xx responses, API error bodies and undecodable payloads.
var ErrSearchFailed = errors.New("deezer search failed")

// Doer is the subset of *http.Client the client needs.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config holds configuration for the Deezer client
type Config struct {
	Endpoint string        // Default: DefaultEndpoint
	Timeout  time.Duration // 0 leaves the transport default (no timeout)

	// Deezer allows 50 requests every 5 seconds per client.
	RequestsPerWindow int           // Default: 50
	Window            time.Duration // Default: 5s

	// HTTP overrides the client built from Timeout, mainly for tests.
	HTTP Doer
}

// Client issues search requests against Deezer
type Client struct {
	http     Doer
	limiter  *rate.Limiter
	endpoint string
	log      *zap.Logger
}

// NewClient creates a new Deezer client
func NewClient(cfg Config, log *zap.Logger) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.RequestsPerWindow <= 0 {
		cfg.RequestsPerWindow = 50
	}
	if cfg.Window <= 0 {
		cfg.Window = 5 * time.Second
	}
	if cfg.HTTP == nil {
		cfg.HTTP = &http.Client{Timeout: cfg.Timeout}
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Client{
		http:     cfg.HTTP,
		limiter:  rate.NewLimiter(rate.Every(cfg.Window/time.Duration(cfg.RequestsPerWindow)), cfg.RequestsPerWindow),
		endpoint: cfg.Endpoint,
		log:      log.Named("deezer"),
	}
}

// Endpoint returns the search URL the client talks to
func (c *Client) Endpoint() string {
	return c.endpoint
}

// SearchTracks runs one GET <endpoint>?q=<query> and returns the data array
// unchanged in order. Any failure wraps ErrSearchFailed.
func (c *Client) SearchTracks(ctx context.Context, query string) ([]domain.Track, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limiter: %w", ErrSearchFailed, err)
	}

	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: endpoint %q: %w", ErrSearchFailed, c.endpoint, err)
	}
	params := u.Query()
	params.Set("q", query)
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", ErrSearchFailed, err)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSearchFailed, err)
	}
	defer resp.Body.Close()

	c.log.Debug("search response",
		zap.String("query", query),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s", ErrSearchFailed, resp.Status)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", ErrSearchFailed, err)
	}
	if body.Error != nil {
		return nil, fmt.Errorf("%w: %s (%d): %s", ErrSearchFailed, body.Error.Type, body.Error.Code, body.Error.Message)
	}

	tracks := make([]domain.Track, len(body.Data))
	for i, item := range body.Data {
		tracks[i] = item.toDomain()
	}
	return tracks, nil
}
