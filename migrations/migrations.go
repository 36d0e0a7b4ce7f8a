// Package migrations embeds the goose SQL migrations for the lot service.
package migrations

import (
	"context"
	"embed"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var FS embed.FS

// Up applies all pending migrations. dialect is a goose dialect name
// ("postgres" or "sqlite3").
func Up(ctx context.Context, db *sqlx.DB, dialect string) error {
	provider, err := goose.NewProvider(goose.Dialect(dialect), db.DB, FS)
	if err != nil {
		return fmt.Errorf("init goose: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// DialectFor maps a database/sql driver name to its goose dialect.
func DialectFor(driverName string) string {
	switch driverName {
	case "sqlite", "sqlite3":
		return string(goose.DialectSQLite3)
	default:
		return string(goose.DialectPostgres)
	}
}
