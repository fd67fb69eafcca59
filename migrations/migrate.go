package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Migrate applies all pending migrations for the given engine
// ("postgres" or "sqlite"). The SQL files are embedded per dialect because
// the two engines disagree on auto-increment and timestamp defaults.
func Migrate(db *sql.DB, engine string) error {
	goose.SetBaseFS(embedMigrations)

	var dialect, dir string
	switch engine {
	case "postgres":
		dialect, dir = "pgx", "postgres"
	case "sqlite":
		dialect, dir = "sqlite3", "sqlite"
	default:
		return fmt.Errorf("migration error: unknown engine %q", engine)
	}

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
