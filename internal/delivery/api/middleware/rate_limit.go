package middleware

import (
	"log/slog"
	"math"
	"strconv"
	"sync"
	"time"

	"forum/config"
	deliverycontext "forum/internal/delivery/context"
	domainerrors "forum/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const defaultLimiterIdleTimeout = 10 * time.Minute

// RateLimitRecorder counts rejected requests per limiter name.
type RateLimitRecorder interface {
	RecordRateLimited(limiter string)
}

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	name        string
	limit       rate.Limit
	burst       int
	idleTimeout time.Duration
	recorder    RateLimitRecorder
	logger      *slog.Logger
	now         func() time.Time

	mu      sync.Mutex
	clients map[string]*clientLimiter

	stopOnce sync.Once
	stopCh   chan struct{}
}

type RateLimiterParams struct {
	Name     string
	Config   *config.RateLimitConfig
	Recorder RateLimitRecorder // Optional.
	Logger   *slog.Logger
}

// NewRateLimiter starts a background loop that evicts idle clients. Call Stop to end it.
func NewRateLimiter(params RateLimiterParams) *RateLimiter {
	idle := params.Config.IdleTimeout
	if idle <= 0 {
		idle = defaultLimiterIdleTimeout
	}
	burst := params.Config.Burst
	if burst < 1 {
		burst = 1
	}

	rl := &RateLimiter{
		name:        params.Name,
		limit:       rate.Limit(params.Config.PerMinute / 60),
		burst:       burst,
		idleTimeout: idle,
		recorder:    params.Recorder,
		logger:      params.Logger,
		now:         time.Now,
		clients:     make(map[string]*clientLimiter),
		stopCh:      make(chan struct{}),
	}

	go rl.cleanupLoop()

	return rl
}

func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// Limit rejects a request with 429 once its client has exhausted the bucket.
func (rl *RateLimiter) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		clientIP := c.RealIP()
		if rl.allow(clientIP) {
			return next(c)
		}

		if rl.recorder != nil {
			rl.recorder.RecordRateLimited(rl.name)
		}
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), rl.logger).Warn("Rate limit exceeded",
			slog.String("limiter", rl.name),
			slog.String("remote_ip", clientIP),
		)
		c.Response().Header().Set("Retry-After", strconv.Itoa(rl.retryAfterSeconds()))

		return domainerrors.ErrTooManyRequests.WrapMessage(rl.name)
	}
}

func (rl *RateLimiter) allow(key string) bool {
	now := rl.now()

	rl.mu.Lock()
	cl, ok := rl.clients[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[key] = cl
	}
	cl.lastAccess = now
	rl.mu.Unlock()

	return cl.limiter.AllowN(now, 1)
}

func (rl *RateLimiter) retryAfterSeconds() int {
	if rl.limit <= 0 {
		return int(rl.idleTimeout.Seconds())
	}

	return max(1, int(math.Ceil(1/float64(rl.limit))))
}

// ClientCount is the number of tracked clients.
func (rl *RateLimiter) ClientCount() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	return len(rl.clients)
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.idleTimeout)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.evictIdle()
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *RateLimiter) evictIdle() {
	cutoff := rl.now().Add(-rl.idleTimeout)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, cl := range rl.clients {
		if cl.lastAccess.Before(cutoff) {
			delete(rl.clients, key)
		}
	}
}
