package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"forum/config"
	"forum/internal/domain/lifecycle"
	"forum/internal/errors"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Client owns the primary connection pool, any replica pools and the pool monitor.
type Client struct {
	DB *gorm.DB

	sqlDB         *sql.DB
	cancelMonitor context.CancelFunc
}

// New connects to the primary, registers read replicas through dbresolver,
// pings and starts the pool monitor. Close releases everything.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Client, error) {
	if cfg.Postgres == nil {
		return nil, errors.New("postgres configuration is missing")
	}
	pgCfg := cfg.Postgres

	db, err := gorm.Open(postgres.Open(pgCfg.MasterURL()), &gorm.Config{
		// Explicit transactions go through the transaction manager.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(logger, cfg),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	if len(pgCfg.Replicas) > 0 {
		replicas := make([]gorm.Dialector, 0, len(pgCfg.Replicas))
		for _, replica := range pgCfg.Replicas {
			replicas = append(replicas, postgres.Open(pgCfg.URL(replica)))
		}

		resolver := dbresolver.Register(dbresolver.Config{
			Replicas: replicas,
			Policy:   dbresolver.RandomPolicy{},
		})
		if pgCfg.MaxIdleConns > 0 {
			resolver.SetMaxIdleConns(pgCfg.MaxIdleConns)
		}
		if pgCfg.MaxOpenConns > 0 {
			resolver.SetMaxOpenConns(pgCfg.MaxOpenConns)
		}
		if pgCfg.ConnMaxLifetime > 0 {
			resolver.SetConnMaxLifetime(pgCfg.ConnMaxLifetime)
		}

		if err := db.Use(resolver); err != nil {
			return nil, errors.Wrap(err, "failed to register read replicas")
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	applyPool(sqlDB, pgCfg)

	pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()

		return nil, errors.Wrap(err, "failed to ping PostgreSQL")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())
	go monitorDBPool(monitorCtx, logger, sqlDB, dbPoolMonitorInterval)

	logger.Info("Connected to PostgreSQL",
		slog.String("host", pgCfg.Master.Host),
		slog.String("database", pgCfg.DBName),
		slog.Int("replicas", len(pgCfg.Replicas)),
	)

	return &Client{DB: db, sqlDB: sqlDB, cancelMonitor: cancelMonitor}, nil
}

// Close stops the monitor and closes the primary pool.
func (c *Client) Close() error {
	c.cancelMonitor()

	return errors.Wrap(c.sqlDB.Close(), "failed to close PostgreSQL")
}

func applyPool(pool *sql.DB, cfg *config.PostgresConfig) {
	if cfg.MaxIdleConns > 0 {
		pool.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.MaxOpenConns > 0 {
		pool.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		pool.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration
			prev = cur

			if waitDelta <= 0 {
				continue
			}

			attrs := []slog.Attr{
				slog.Int64("waitCountDelta", waitDelta),
				slog.Duration("waitDurationDelta", waitDurationDelta),
				slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
				slog.Int("maxOpenConns", cur.MaxOpenConnections),
				slog.Int("openConns", cur.OpenConnections),
				slog.Int("inUseConns", cur.InUse),
			}
			level := slog.LevelDebug
			if waitDurationDelta >= dbPoolWarnDurationThreshold {
				level = slog.LevelWarn
			}
			logger.LogAttrs(ctx, level, "Postgres pool wait", attrs...)
		}
	}
}
