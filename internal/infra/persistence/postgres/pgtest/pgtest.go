// Package pgtest gives integration tests a private, migrated PostgreSQL schema.
//
// Tests are skipped unless FORUM_TEST_DATABASE_URL holds a postgres:// URL.
package pgtest

import (
	"context"
	"net/url"
	"os"
	"strings"
	"testing"

	"forum/internal/errors"
	"forum/internal/infra/persistence/migrations"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// EnvDatabaseURL names the variable holding the base connection URL.
const EnvDatabaseURL = "FORUM_TEST_DATABASE_URL"

// Tables in the order they can be truncated.
var Tables = []string{"comments", "answers", "questions", "users"}

// NewIsolatedDB creates a uniquely named schema, migrates it and returns a
// connection whose search_path points at it. The schema is dropped when t ends.
func NewIsolatedDB(t testing.TB) *gorm.DB {
	t.Helper()

	baseURL := os.Getenv(EnvDatabaseURL)
	if baseURL == "" {
		t.Skipf("%s is not set", EnvDatabaseURL)
	}

	admin, err := open(baseURL)
	if err != nil {
		t.Fatalf("connect admin: %v", err)
	}
	t.Cleanup(func() { closeDB(admin) })

	ctx := context.Background()
	schema := NewSchemaName()
	if err := migrations.CreateSchema(ctx, admin, schema); err != nil {
		t.Fatalf("%v", err)
	}
	// Cleanups run last-in first-out: db closes, the schema drops, admin closes.
	t.Cleanup(func() {
		if err := migrations.DropSchema(context.Background(), admin, schema); err != nil {
			t.Errorf("%v", err)
		}
	})

	schemaURL, err := WithSearchPath(baseURL, schema)
	if err != nil {
		t.Fatalf("build schema url: %v", err)
	}
	if err := migrations.Up(schemaURL, nil); err != nil {
		t.Fatalf("migrate schema %s: %v", schema, err)
	}

	db, err := open(schemaURL)
	if err != nil {
		t.Fatalf("connect schema %s: %v", schema, err)
	}
	t.Cleanup(func() { closeDB(db) })

	return db
}

// NewSchemaName returns a fresh test schema identifier.
func NewSchemaName() string {
	return migrations.TestSchemaPrefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// WithSearchPath sets the search_path run-time parameter of a postgres:// URL.
func WithSearchPath(databaseURL, schema string) (string, error) {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return "", errors.Wrap(err, "parse database url")
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return "", errors.Errorf("database url must use the postgres scheme, got %q", u.Scheme)
	}

	query := u.Query()
	query.Set("search_path", schema)
	u.RawQuery = query.Encode()

	return u.String(), nil
}

// Truncate empties every forum table and resets identities.
func Truncate(ctx context.Context, db *gorm.DB) error {
	stmt := `TRUNCATE TABLE ` + strings.Join(Tables, ", ") + ` RESTART IDENTITY CASCADE`

	return errors.Wrap(db.WithContext(ctx).Exec(stmt).Error, "truncate tables")
}

func open(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})

	return db, errors.Wrap(err, "open database")
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
