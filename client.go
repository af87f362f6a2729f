package twitterx

import (
	"errors"
	"net/http"
	"sync"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Version is the library version.
const Version = "0.3.0"

// Client is a thin client for the RapidAPI Twitter/X data API. Each public
// method maps to one GET endpoint and returns the raw *http.Response; no
// JSON deserialization happens at this layer, and non-2xx statuses are
// returned as ordinary responses, not errors. The caller owns the response
// body and must close it.
//
// A Client is safe for concurrent use. The rate-limit snapshot is updated
// under a lock, so concurrent callers always observe a complete snapshot
// from some 200 response, never a torn one.
type Client struct {
	cfg     ClientConfig
	http    Doer
	owned   *http.Client // non-nil when the client built its own transport
	headers http.Header
	sem     *semaphore.Weighted // nil when the in-flight bound is disabled
	pacer   *rate.Limiter       // nil when ThrottleRPS is unset

	mu        sync.Mutex
	rateLimit RateLimit
	closed    bool
}

// NewClient creates a client for the given configuration. The returned
// client owns its connection pool unless cfg.HTTPClient is supplied; either
// way, Close must be called when the client is no longer needed.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("api key is required")
	}
	cfg.defaults()

	c := &Client{
		cfg:     cfg,
		http:    cfg.HTTPClient,
		headers: rapidAPIHeaders(cfg.APIKey, cfg.Host, cfg.ContentType, cfg.UserAgent),
	}
	if c.http == nil {
		c.owned = &http.Client{Timeout: cfg.Timeout}
		c.http = c.owned
	}
	if cfg.MaxConcurrent > 0 {
		c.sem = semaphore.NewWeighted(cfg.MaxConcurrent)
	}
	if cfg.ThrottleRPS > 0 {
		c.pacer = rate.NewLimiter(rate.Limit(cfg.ThrottleRPS), 1)
	}
	return c, nil
}

// RateLimit returns the quota state observed on the most recent HTTP 200
// response. The zero value means no successful request has completed yet.
// After a failed or non-200 call the snapshot is stale: it still describes
// the last success, not the failed call.
func (c *Client) RateLimit() RateLimit {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rateLimit
}

// setRateLimit replaces the snapshot wholesale.
func (c *Client) setRateLimit(rl RateLimit) {
	c.mu.Lock()
	c.rateLimit = rl
	c.mu.Unlock()
}

// Close releases the client's connection pool. It is idempotent. Operations
// invoked after Close fail with ErrClientClosed. An injected HTTPClient is
// left untouched; its lifetime belongs to the caller.
func (c *Client) Close() error {
	c.mu.Lock()
	already := c.closed
	c.closed = true
	c.mu.Unlock()
	if already {
		return nil
	}
	if c.owned != nil {
		c.owned.CloseIdleConnections()
	}
	return nil
}

func (c *Client) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}
