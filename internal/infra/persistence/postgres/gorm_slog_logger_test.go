package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"forum/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedLogger(debug bool) (*gormSlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, cfg).(*gormSlogLogger), &buf
}

func TestGormSlogLogger_Trace(t *testing.T) {
	l, buf := newBufferedLogger(false)
	sqlFn := func() (string, int64) { return `SELECT * FROM "users"`, 1 }

	l.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Empty(t, buf.String(), "successful fast queries are not logged outside debug")

	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	l.Trace(context.Background(), time.Now(), sqlFn, errors.New("connection reset"))
	assert.Contains(t, buf.String(), "GORM query failed")
	assert.Contains(t, buf.String(), "connection reset")

	buf.Reset()
	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)
	assert.Contains(t, buf.String(), "GORM slow query")

	buf.Reset()
	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn, errors.New("ignored"))
	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_ParamsFilter(t *testing.T) {
	quiet, _ := newBufferedLogger(false)
	sql, params := quiet.ParamsFilter(context.Background(), "SELECT $1", "secret")
	assert.Equal(t, "SELECT $1", sql)
	assert.Nil(t, params)

	verbose, _ := newBufferedLogger(true)
	_, params = verbose.ParamsFilter(context.Background(), "SELECT $1", "secret")
	assert.Equal(t, []any{"secret"}, params)
}
