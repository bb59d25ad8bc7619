package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
)

// RequestRecorder receives one observation per served request.
type RequestRecorder interface {
	RecordRequest(method, route string, status int, duration time.Duration)
}

type MetricsMiddleware struct {
	recorder RequestRecorder
}

func NewMetricsMiddleware(recorder RequestRecorder) *MetricsMiddleware {
	return &MetricsMiddleware{recorder: recorder}
}

// Handle labels requests by route template so path parameters do not explode cardinality.
// It must wrap a middleware that has already rendered errors.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		m.recorder.RecordRequest(c.Request().Method, route, c.Response().Status, time.Since(start))

		return err
	}
}
