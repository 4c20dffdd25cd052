// Package migrations versions the database schema with goose. The SQL files
// are embedded so the application converges its own schema at startup; the
// later migrations carry the one-time data repairs for rows written before
// the role field rules existed.
package migrations

import (
	"database/sql"
	"embed"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// Migrate applies all pending migrations.
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "failed to set migration dialect")
	}

	if err := goose.Up(db, "."); err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	return nil
}
