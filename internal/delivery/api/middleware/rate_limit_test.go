package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"forum/config"
	domainerrors "forum/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRecorder struct{ denied map[string]int }

func (r *countingRecorder) RecordRateLimited(limiter string) {
	r.denied[limiter]++
}

func newTestLimiter(t *testing.T, perMinute float64, burst int) (*RateLimiter, *countingRecorder) {
	t.Helper()

	recorder := &countingRecorder{denied: map[string]int{}}
	rl := NewRateLimiter(RateLimiterParams{
		Name:     "login",
		Config:   &config.RateLimitConfig{Enabled: true, PerMinute: perMinute, Burst: burst, IdleTimeout: time.Hour},
		Recorder: recorder,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	t.Cleanup(rl.Stop)

	return rl, recorder
}

func serveFrom(rl *RateLimiter, remoteAddr string) error {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/sessions", nil)
	req.RemoteAddr = remoteAddr
	c := e.NewContext(req, httptest.NewRecorder())

	return rl.Limit(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c)
}

func TestRateLimiter_PerClientBucket(t *testing.T) {
	rl, recorder := newTestLimiter(t, 60, 2)

	require.NoError(t, serveFrom(rl, "198.51.100.1:1000"))
	require.NoError(t, serveFrom(rl, "198.51.100.1:1001"))

	err := serveFrom(rl, "198.51.100.1:1002")
	assert.True(t, errors.Is(err, domainerrors.ErrTooManyRequests))
	assert.Equal(t, 1, recorder.denied["login"])

	// Another client has its own bucket.
	assert.NoError(t, serveFrom(rl, "198.51.100.2:1000"))
	assert.Equal(t, 2, rl.ClientCount())
}

func TestRateLimiter_Refills(t *testing.T) {
	rl, _ := newTestLimiter(t, 60, 1)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	require.NoError(t, serveFrom(rl, "198.51.100.1:1"))
	assert.Error(t, serveFrom(rl, "198.51.100.1:1"))

	now = now.Add(time.Second)
	assert.NoError(t, serveFrom(rl, "198.51.100.1:1"))
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {
	rl, _ := newTestLimiter(t, 60, 5)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	require.NoError(t, serveFrom(rl, "198.51.100.1:1"))
	now = now.Add(30 * time.Minute)
	require.NoError(t, serveFrom(rl, "198.51.100.2:1"))

	now = now.Add(40 * time.Minute)
	rl.evictIdle()

	assert.Equal(t, 1, rl.ClientCount())
}

func TestRateLimiter_StopIsIdempotent(t *testing.T) {
	rl, _ := newTestLimiter(t, 60, 1)

	rl.Stop()
	assert.NotPanics(t, rl.Stop)
}
