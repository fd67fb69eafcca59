package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/asalimova/word-inventory/internal/config"
	"github.com/asalimova/word-inventory/internal/logger"
	"github.com/mattn/go-sqlite3"
)

// NewConnectSQLite opens (creating if necessary) a SQLite database file,
// verifies the connection with a ping and returns a [DB] ready for
// repository construction. The caller is expected to run [DB.Migrate]
// before use.
//
// Foreign key enforcement is off by default in SQLite, so the DSN is
// amended to switch it on. The pool is capped at a single connection: the
// schema relies on immediate constraint errors, and SQLite allows only one
// writer at a time anyway.
func NewConnectSQLite(ctx context.Context, cfg config.Storage, log *logger.Logger) (*DB, error) {
	if dir := filepath.Dir(cfg.DSN); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database directory")
			return nil, fmt.Errorf("error creating database directory: %w", err)
		}
	}

	dsn := cfg.DSN
	if !strings.Contains(dsn, "?") {
		dsn += "?_foreign_keys=on"
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectSQLite").Str("file", cfg.DSN).Msg("connected to database successfully")

	return &DB{
		DB:              conn,
		engine:          config.EngineSQLite,
		errorClassifier: NewSQLiteErrorClassifier(),
		logger:          log,
	}, nil
}

// SQLiteErrorClassifier implements [ErrorClassifier] for SQLite by
// inspecting the extended result code reported by the mattn/go-sqlite3
// driver.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// IsUniqueViolation reports whether err carries the SQLITE_CONSTRAINT_UNIQUE
// or SQLITE_CONSTRAINT_PRIMARYKEY extended code.
func (c *SQLiteErrorClassifier) IsUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}

// IsForeignKeyViolation reports whether err carries the
// SQLITE_CONSTRAINT_FOREIGNKEY extended code.
func (c *SQLiteErrorClassifier) IsForeignKeyViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}
	return false
}
