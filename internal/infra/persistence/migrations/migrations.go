// Package migrations applies the embedded SQL schema with golang-migrate.
package migrations

import (
	"embed"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"forum/internal/errors"
)

//go:embed sql/*.sql
var migrationsFS embed.FS

// Source opens the embedded migration files.
func Source() (source.Driver, error) {
	src, err := iofs.New(migrationsFS, "sql")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migration source")
	}

	return src, nil
}

// NewMigrator binds the embedded migrations to the postgres:// databaseURL.
// Tables and the schema_migrations bookkeeping land in the first schema of its search_path.
func NewMigrator(databaseURL string, logger *slog.Logger) (*migrate.Migrate, error) {
	src, err := Source()
	if err != nil {
		return nil, err
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migrator")
	}
	if logger != nil {
		m.Log = &slogAdapter{logger: logger}
	}

	return m, nil
}

// Up applies every pending migration. An up-to-date database is not an error.
func Up(databaseURL string, logger *slog.Logger) error {
	m, err := NewMigrator(databaseURL, logger)
	if err != nil {
		return err
	}
	defer closeMigrator(m, logger)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "failed to run migrations")
	}

	return nil
}

// Down reverts steps migrations.
func Down(databaseURL string, steps int, logger *slog.Logger) error {
	if steps <= 0 {
		return errors.Errorf("steps must be positive, got %d", steps)
	}

	m, err := NewMigrator(databaseURL, logger)
	if err != nil {
		return err
	}
	defer closeMigrator(m, logger)

	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "failed to revert migrations")
	}

	return nil
}

// Version reports the applied version and whether the last run left the database dirty.
func Version(databaseURL string) (uint, bool, error) {
	m, err := NewMigrator(databaseURL, nil)
	if err != nil {
		return 0, false, err
	}
	defer closeMigrator(m, nil)

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errors.Wrap(err, "failed to read migration version")
	}

	return version, dirty, nil
}

func closeMigrator(m *migrate.Migrate, logger *slog.Logger) {
	srcErr, dbErr := m.Close()
	if logger == nil {
		return
	}
	if err := errors.Join(srcErr, dbErr); err != nil {
		logger.Warn("Failed to close migrator", slog.Any("error", err))
	}
}

type slogAdapter struct {
	logger *slog.Logger
}

func (a *slogAdapter) Printf(format string, v ...any) {
	a.logger.Info(strings.TrimSpace(fmt.Sprintf(format, v...)), slog.String("component", "migrate"))
}

func (a *slogAdapter) Verbose() bool {
	return false
}
