// Package metrics provides a Prometheus-backed implementation of the
// client's metrics hook.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder counts requests and observes latency per operation. Wire it with:
//
//	rec := metrics.NewRecorder(prometheus.DefaultRegisterer)
//	client, err := twitterx.NewClient(twitterx.ClientConfig{
//		APIKey:      key,
//		MetricsHook: rec.Record,
//	})
type Recorder struct {
	requests    *prometheus.CounterVec
	rateLimited *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewRecorder registers the collectors on reg and returns the recorder.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "twitterx_requests_total",
				Help: "Requests issued to the Twitter/X API, by operation and HTTP status",
			},
			[]string{"operation", "status"},
		),
		rateLimited: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "twitterx_rate_limited_total",
				Help: "Requests rejected by the remote API with HTTP 429",
			},
			[]string{"operation"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "twitterx_request_duration_seconds",
				Help: "Wall-clock time per request to the Twitter/X API",
			},
			[]string{"operation"},
		),
	}
}

// Record satisfies twitterx.MetricsHook. A status of 0 means the transport
// failed before producing a response.
func (r *Recorder) Record(operation string, status int, elapsed time.Duration) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	r.requests.WithLabelValues(operation, label).Inc()
	if status == http.StatusTooManyRequests {
		r.rateLimited.WithLabelValues(operation).Inc()
	}
	r.duration.WithLabelValues(operation).Observe(elapsed.Seconds())
}
