// Package context carries per-request values between the forum middlewares,
// handlers and usecases: the request ID, the request-scoped logger and the
// authenticated account.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"
	KeyAccountID ContextKey = "account_id"

	HeaderXRequestID = "X-Request-Id"

	// MaxRequestIDLen bounds client supplied IDs before they reach logs and headers.
	MaxRequestIDLen = 128
)

// ResolveRequestID returns candidate when it is a usable request ID: non-empty,
// at most MaxRequestIDLen bytes of printable ASCII without spaces. Anything
// else is replaced by a fresh UUID.
func ResolveRequestID(candidate string) string {
	if validRequestID(candidate) {
		return candidate
	}

	return uuid.NewString()
}

func validRequestID(id string) bool {
	if id == "" || len(id) > MaxRequestIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}

	return true
}

// GetRequestID returns the request ID stored by the request-ID middleware.
// Outside that middleware it resolves the inbound header the same way and
// stores the result, so repeated calls on one request agree.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	id := ResolveRequestID(c.Request().Header.Get(HeaderXRequestID))
	SetRequestID(c, id)

	return id
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger returns the request-scoped logger, or nil outside a request.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// SetAccountID records the account an access token was issued to.
func SetAccountID(c echo.Context, accountID uuid.UUID) {
	c.Set(string(KeyAccountID), accountID)
}

// GetAccountID returns the authenticated account. uuid.Nil counts as unset.
func GetAccountID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(string(KeyAccountID)).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}

	return id, true
}
