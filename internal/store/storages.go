package store

import (
	"context"
	"fmt"

	"github.com/asalimova/word-inventory/internal/config"
	"github.com/asalimova/word-inventory/internal/logger"
)

// Storages bundles all repositories behind one constructor so the service
// layer depends on a single value regardless of the active engine.
type Storages struct {
	Users       UserRepository
	Languages   LanguageRepository
	Entries     EntryRepository
	TagMetadata TagMetadataRepository
	Profiles    ProfileRepository
}

// NewStorages connects to the engine selected by cfg.Engine, applies pending
// schema migrations and wires every repository to the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.Engine {
	case config.EnginePostgres:
		db, err = NewConnectPostgres(ctx, cfg, log)
	case config.EngineSQLite:
		db, err = NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unknown storage engine: %q", cfg.Engine)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		Users:       NewUserRepository(db, log),
		Languages:   NewLanguageRepository(db, log),
		Entries:     NewEntryRepository(db, log),
		TagMetadata: NewTagMetadataRepository(db, log),
		Profiles:    NewProfileRepository(db, log),
	}, nil
}
