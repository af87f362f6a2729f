package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorderCountsByOperationAndStatus(t *testing.T) {
	rec := NewRecorder(prometheus.NewRegistry())

	rec.Record("Search", http.StatusOK, 120*time.Millisecond)
	rec.Record("Search", http.StatusOK, 80*time.Millisecond)
	rec.Record("Search", http.StatusTooManyRequests, 10*time.Millisecond)
	rec.Record("Trends", 0, time.Second) // transport failure

	assert.Equal(t, 2.0, testutil.ToFloat64(rec.requests.WithLabelValues("Search", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.requests.WithLabelValues("Search", "429")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.requests.WithLabelValues("Trends", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.rateLimited.WithLabelValues("Search")))
	assert.Equal(t, 0.0, testutil.ToFloat64(rec.rateLimited.WithLabelValues("Trends")))
}

func TestRecorderRegistersOnCustomRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := NewRecorder(reg)
	rec.Record("Search", http.StatusOK, time.Millisecond)

	families, err := reg.Gather()
	assert.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "twitterx_requests_total")
	assert.Contains(t, names, "twitterx_request_duration_seconds")
}
