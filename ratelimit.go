package twitterx

import (
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// RapidAPI reports per-key quota state on every response via these headers.
const (
	headerRateLimitLimit     = "x-ratelimit-rapid-free-plans-hard-limit-limit"
	headerRateLimitRemaining = "x-ratelimit-rapid-free-plans-hard-limit-remaining"
	headerRateLimitReset     = "x-ratelimit-rapid-free-plans-hard-limit-reset"
)

// RateLimit is the per-key quota state as last observed on an HTTP 200
// response. A zero value means the quota is unknown (no successful request
// has been made yet). Instances are immutable; the client replaces its
// snapshot wholesale, never mutates one in place.
type RateLimit struct {
	// Limit is the total request quota for the key's plan.
	Limit int

	// Remaining is the number of requests left in the current window.
	Remaining int

	// Reset is the number of seconds until the quota window resets.
	Reset int
}

// ResetAt returns the absolute time the quota window resets, relative to now.
func (r RateLimit) ResetAt(now time.Time) time.Time {
	return now.Add(time.Duration(r.Reset) * time.Second)
}

func (r RateLimit) String() string {
	return fmt.Sprintf("RateLimit(limit=%d, remaining=%d, reset=%ds)", r.Limit, r.Remaining, r.Reset)
}

// parseRateLimit extracts the quota snapshot from response headers. A missing
// or non-numeric header is a hard failure: a corrupted quota view is worse
// than a surfaced error.
func parseRateLimit(h http.Header) (RateLimit, error) {
	limit, err := intHeader(h, headerRateLimitLimit)
	if err != nil {
		return RateLimit{}, err
	}
	remaining, err := intHeader(h, headerRateLimitRemaining)
	if err != nil {
		return RateLimit{}, err
	}
	reset, err := intHeader(h, headerRateLimitReset)
	if err != nil {
		return RateLimit{}, err
	}
	return RateLimit{Limit: limit, Remaining: remaining, Reset: reset}, nil
}

func intHeader(h http.Header, name string) (int, error) {
	v := h.Get(name)
	if v == "" {
		return 0, &RateLimitHeaderError{Header: name, Value: v, Err: errHeaderMissing}
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, &RateLimitHeaderError{Header: name, Value: v, Err: err}
	}
	return n, nil
}
