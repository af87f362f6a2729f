package twitterx

import (
	"log/slog"
	"net/http"
	"os"
	"time"
)

// Doer issues a single HTTP request. *http.Client satisfies it; tests inject
// fakes to observe or suppress network I/O.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// MetricsHook is called once per completed request for external metrics
// collection. status is the HTTP status code, or 0 when the transport failed
// before producing a response.
type MetricsHook func(operation string, status int, elapsed time.Duration)

// ClientConfig holds all configuration for the Twitter/X client.
type ClientConfig struct {
	// APIKey is the RapidAPI key forwarded on every request. Required.
	APIKey string

	// Host is the RapidAPI host. Default: DefaultHost.
	Host string

	// Timeout applies per request on the owned HTTP client. Default: 20s.
	// Ignored when HTTPClient is supplied.
	Timeout time.Duration

	// HTTPClient overrides the owned transport. When set, the caller keeps
	// ownership and Close does not touch it.
	HTTPClient Doer

	// Logger receives the per-request log records. When nil a default
	// text logger is built, at Debug level if Verbose is set, Info
	// otherwise.
	Logger *slog.Logger

	// Verbose selects the Debug level for the default logger. It has no
	// effect when Logger is supplied.
	Verbose bool

	// MaxConcurrent bounds in-flight requests sharing this client.
	// Default: 100. Negative disables the bound.
	MaxConcurrent int64

	// ThrottleRPS, when positive, spaces outgoing requests to at most this
	// many per second. This is local pacing to conserve remote quota, not
	// a retry mechanism; nothing is ever retried.
	ThrottleRPS float64

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// ContentType overrides the Content-Type header. By default the host
	// string is sent, matching the remote API's expected wire format.
	ContentType string

	// MetricsHook is called on each completed request.
	MetricsHook MetricsHook
}

// defaults fills in zero-value config fields.
func (cfg *ClientConfig) defaults() {
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 20 * time.Second
	}
	if cfg.MaxConcurrent == 0 {
		cfg.MaxConcurrent = 100
	}
	if cfg.Logger == nil {
		level := slog.LevelInfo
		if cfg.Verbose {
			level = slog.LevelDebug
		}
		cfg.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	}
}
