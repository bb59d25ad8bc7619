package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestRequestID(t *testing.T) {
	c := newEchoContext()
	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))

	ctx := WithRequestID(context.Background(), "req-2")
	assert.Equal(t, "req-2", ctx.Value(KeyRequestID))
}

func TestResolveRequestID(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		keep      bool
	}{
		{name: "printable ascii", candidate: "abc-123_XYZ", keep: true},
		{name: "max length", candidate: strings.Repeat("a", MaxRequestIDLen), keep: true},
		{name: "empty", candidate: ""},
		{name: "too long", candidate: strings.Repeat("a", MaxRequestIDLen+1)},
		{name: "contains space", candidate: "abc 123"},
		{name: "contains newline", candidate: "abc\n123"},
		{name: "non ascii", candidate: "réq"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveRequestID(tt.candidate)
			if tt.keep {
				assert.Equal(t, tt.candidate, got)

				return
			}
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

func TestGetRequestID_FallbackMatchesMiddleware(t *testing.T) {
	t.Run("valid header is reused", func(t *testing.T) {
		c := newEchoContext()
		c.Request().Header.Set(HeaderXRequestID, "client-id")

		assert.Equal(t, "client-id", GetRequestID(c))
	})

	t.Run("invalid header is replaced once", func(t *testing.T) {
		c := newEchoContext()
		c.Request().Header.Set(HeaderXRequestID, "bad id")

		first := GetRequestID(c)
		assert.NotEqual(t, "bad id", first)
		assert.Equal(t, first, GetRequestID(c))
	})
}

func TestLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "abc"))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestAccountID(t *testing.T) {
	c := newEchoContext()

	_, ok := GetAccountID(c)
	assert.False(t, ok)

	id := uuid.New()
	SetAccountID(c, id)

	got, ok := GetAccountID(c)
	assert.True(t, ok)
	assert.Equal(t, id, got)
}
