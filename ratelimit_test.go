package twitterx

import (
	"errors"
	"net/http"
	"testing"
	"time"
)

func quotaHeaders(limit, remaining, reset string) http.Header {
	h := http.Header{}
	if limit != "" {
		h.Set(headerRateLimitLimit, limit)
	}
	if remaining != "" {
		h.Set(headerRateLimitRemaining, remaining)
	}
	if reset != "" {
		h.Set(headerRateLimitReset, reset)
	}
	return h
}

func TestParseRateLimit(t *testing.T) {
	tests := []struct {
		name                    string
		limit, remaining, reset string
		want                    RateLimit
		wantHeader              string // non-empty when a parse error is expected
	}{
		{"all present", "500", "499", "900", RateLimit{500, 499, 900}, ""},
		{"zero values", "0", "0", "0", RateLimit{}, ""},
		{"missing limit", "", "499", "900", RateLimit{}, headerRateLimitLimit},
		{"missing remaining", "500", "", "900", RateLimit{}, headerRateLimitRemaining},
		{"missing reset", "500", "499", "", RateLimit{}, headerRateLimitReset},
		{"non-numeric limit", "lots", "499", "900", RateLimit{}, headerRateLimitLimit},
		{"non-numeric reset", "500", "499", "15m", RateLimit{}, headerRateLimitReset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseRateLimit(quotaHeaders(tt.limit, tt.remaining, tt.reset))
			if tt.wantHeader == "" {
				if err != nil {
					t.Fatalf("parseRateLimit() error = %v, want nil", err)
				}
				if got != tt.want {
					t.Fatalf("parseRateLimit() = %+v, want %+v", got, tt.want)
				}
				return
			}
			var hdrErr *RateLimitHeaderError
			if !errors.As(err, &hdrErr) {
				t.Fatalf("parseRateLimit() error = %v, want *RateLimitHeaderError", err)
			}
			if hdrErr.Header != tt.wantHeader {
				t.Fatalf("offending header = %q, want %q", hdrErr.Header, tt.wantHeader)
			}
		})
	}
}

func TestRateLimitResetAt(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rl := RateLimit{Limit: 500, Remaining: 499, Reset: 900}
	want := now.Add(15 * time.Minute)
	if got := rl.ResetAt(now); !got.Equal(want) {
		t.Fatalf("ResetAt() = %v, want %v", got, want)
	}
}

func TestRateLimitHeaderErrorMessage(t *testing.T) {
	missing := &RateLimitHeaderError{Header: headerRateLimitLimit, Err: errHeaderMissing}
	if missing.Error() == "" {
		t.Fatal("expected message for missing header")
	}
	bad := &RateLimitHeaderError{Header: headerRateLimitReset, Value: "soon", Err: errors.New("bad syntax")}
	if bad.Error() == "" {
		t.Fatal("expected message for bad value")
	}
	if !errors.Is(missing, errHeaderMissing) {
		t.Fatal("expected Unwrap to expose the cause")
	}
}
