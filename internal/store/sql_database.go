package store

import (
	"database/sql"

	"github.com/asalimova/word-inventory/internal/logger"
	"github.com/asalimova/word-inventory/migrations"
)

// DB wraps the shared *sql.DB handle together with the engine label and the
// engine-specific error classifier. Repositories never branch on the engine
// themselves; the classifier is the only engine-aware seam they touch.
type DB struct {
	*sql.DB
	engine          string
	errorClassifier ErrorClassifier
	logger          *logger.Logger
}

// ErrorClassifier recognises constraint violations in driver-level errors.
// The two supported drivers report violations through unrelated error types
// (pgconn.PgError vs sqlite3.Error), so each engine provides its own
// implementation.
type ErrorClassifier interface {
	// IsUniqueViolation reports whether err was caused by a unique
	// constraint or unique index violation.
	IsUniqueViolation(err error) bool

	// IsForeignKeyViolation reports whether err was caused by a foreign
	// key constraint violation.
	IsForeignKeyViolation(err error) bool
}

// Migrate applies all pending schema migrations for the connected engine.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.engine)
}
