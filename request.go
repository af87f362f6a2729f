package twitterx

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// do executes one logical operation: it resolves the endpoint from the
// table, issues a single GET, updates the rate-limit snapshot on a 200, and
// hands the raw response back. It never retries and never treats a non-2xx
// status as an error.
func (c *Client) do(ctx context.Context, op string, params url.Values) (*http.Response, error) {
	ep, ok := Endpoints[op]
	if !ok {
		return nil, fmt.Errorf("unknown operation: %s", op)
	}
	if c.isClosed() {
		return nil, ErrClientClosed
	}

	if c.sem != nil {
		if err := c.sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		defer c.sem.Release(1)
	}
	if c.pacer != nil {
		if err := c.pacer.Wait(ctx); err != nil {
			return nil, err
		}
	}

	c.cfg.Logger.Info(ep.Label,
		slog.String("params", params.Encode()),
		slog.Int("remaining", c.RateLimit().Remaining))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ep.URL(c.cfg.Host, params), nil)
	if err != nil {
		return nil, err
	}
	req.Header = c.headers.Clone()

	start := time.Now()
	resp, err := c.http.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		c.recordAPICall(op, 0, elapsed)
		// Transport failures (timeout, refused connection, DNS) propagate
		// unchanged; the snapshot keeps describing the last success.
		return nil, err
	}

	if resp.StatusCode == http.StatusOK {
		rl, parseErr := parseRateLimit(resp.Header)
		if parseErr != nil {
			resp.Body.Close()
			c.recordAPICall(op, resp.StatusCode, elapsed)
			return nil, fmt.Errorf("%s: %w", ep.Label, parseErr)
		}
		c.setRateLimit(rl)
	}

	c.cfg.Logger.Debug(ep.Label,
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", elapsed),
		slog.Int("remaining", c.RateLimit().Remaining))

	c.recordAPICall(op, resp.StatusCode, elapsed)
	return resp, nil
}

// recordAPICall calls the metrics hook if configured.
func (c *Client) recordAPICall(op string, status int, elapsed time.Duration) {
	if c.cfg.MetricsHook != nil {
		c.cfg.MetricsHook(op, status, elapsed)
	}
}

// pageParams adds the pagination parameters the endpoint supports. The
// cursor is omitted entirely when empty rather than sent as an empty string.
func pageParams(params url.Values, mode pageMode, page Page) {
	switch mode {
	case pageFull:
		params.Set("limit", strconv.Itoa(page.limit()))
		if page.Cursor != "" {
			params.Set("cursor", page.Cursor)
		}
	case pageCursorOnly:
		if page.Cursor != "" {
			params.Set("cursor", page.Cursor)
		}
	}
}
