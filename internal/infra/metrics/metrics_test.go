package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_RecordRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordRequest(http.MethodPost, "/sessions", http.StatusCreated, 20*time.Millisecond)
	c.RecordRequest(http.MethodPost, "/sessions", http.StatusCreated, 30*time.Millisecond)
	c.RecordRequest(http.MethodPost, "/sessions", http.StatusUnauthorized, 30*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.httpRequests.WithLabelValues(http.MethodPost, "/sessions", "201")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.httpRequests.WithLabelValues(http.MethodPost, "/sessions", "401")))
	assert.Equal(t, 1, testutil.CollectAndCount(c.httpDuration))
}

func TestCollector_ObserveHashAndRateLimit(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.ObserveHash("hash", 40*time.Millisecond)
	c.ObserveHash("check", 40*time.Millisecond)
	c.RecordRateLimited("login")

	assert.Equal(t, 2, testutil.CollectAndCount(c.hashDuration))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.rateLimitDenied.WithLabelValues("login")))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	reg := NewRegistry()
	c := NewCollector(reg)
	c.RecordRateLimited("login")

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `forum_rate_limit_denied_total{limiter="login"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
