package migrations

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"forum/internal/errors"
)

// TestSchemaPrefix starts every schema created for an isolated integration test.
const TestSchemaPrefix = "test_"

// CreateSchema creates an empty schema named name.
func CreateSchema(ctx context.Context, db *gorm.DB, name string) error {
	return errors.Wrapf(db.WithContext(ctx).Exec(`CREATE SCHEMA `+QuoteIdent(name)).Error, "create schema %s", name)
}

// DropSchema drops schema name and everything in it. A missing schema is not an error.
func DropSchema(ctx context.Context, db *gorm.DB, name string) error {
	return errors.Wrapf(db.WithContext(ctx).Exec(`DROP SCHEMA IF EXISTS `+QuoteIdent(name)+` CASCADE`).Error, "drop schema %s", name)
}

// DropTestSchemas removes schemas left behind by interrupted test runs and
// reports how many were dropped.
func DropTestSchemas(ctx context.Context, db *gorm.DB) (int, error) {
	var schemas []string
	err := db.WithContext(ctx).
		Raw(`SELECT schema_name FROM information_schema.schemata WHERE schema_name LIKE ?`, testSchemaPattern()).
		Scan(&schemas).Error
	if err != nil {
		return 0, errors.Wrap(err, "list test schemas")
	}

	for i, schema := range schemas {
		if err := DropSchema(ctx, db, schema); err != nil {
			return i, err
		}
	}

	return len(schemas), nil
}

// testSchemaPattern matches TestSchemaPrefix literally; _ is a LIKE wildcard.
func testSchemaPattern() string {
	return strings.ReplaceAll(TestSchemaPrefix, "_", `\_`) + "%"
}

// QuoteIdent quotes name as a PostgreSQL identifier.
func QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
