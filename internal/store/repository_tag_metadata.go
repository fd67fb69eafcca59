package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/asalimova/word-inventory/internal/logger"
	"github.com/asalimova/word-inventory/models"
)

// tagMetadataRepository is the SQL-backed implementation of
// [TagMetadataRepository]. Decoration rows are independent of the tag
// strings stored inside entries; a miss on lookup is an expected outcome.
type tagMetadataRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTagMetadataRepository constructs a [TagMetadataRepository] backed by
// the provided database connection and logger.
func NewTagMetadataRepository(db *DB, logger *logger.Logger) TagMetadataRepository {
	logger.Debug().Msg("creating tag metadata repository")
	return &tagMetadataRepository{
		db:     db,
		logger: logger,
	}
}

// InsertTagMetadata persists decoration for a tag name and returns it with
// the server-assigned ID filled in. A duplicate (user_id, name) pair yields
// [ErrTagMetadataExists].
func (r *tagMetadataRepository) InsertTagMetadata(ctx context.Context, meta models.TagMetadata) (models.TagMetadata, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, insertTagMetadata, meta.UserID, meta.Name, meta.Icon, meta.ColorClass)
	if err := row.Scan(&meta.ID); err != nil {
		if r.db.errorClassifier.IsUniqueViolation(err) {
			return models.TagMetadata{}, ErrTagMetadataExists
		}

		log.Err(err).Str("func", "*tagMetadataRepository.InsertTagMetadata").Msg("error inserting tag metadata")
		return models.TagMetadata{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return meta, nil
}

// ListTagMetadata returns all decoration rows of the given owner ordered by
// tag name.
func (r *tagMetadataRepository) ListTagMetadata(ctx context.Context, userID int64) ([]models.TagMetadata, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listTagMetadata, userID)
	if err != nil {
		log.Err(err).Str("func", "*tagMetadataRepository.ListTagMetadata").Msg("error querying tag metadata")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	metas := make([]models.TagMetadata, 0)
	for rows.Next() {
		var meta models.TagMetadata
		if err = rows.Scan(&meta.ID, &meta.UserID, &meta.Name, &meta.Icon, &meta.ColorClass); err != nil {
			log.Err(err).Str("func", "*tagMetadataRepository.ListTagMetadata").Msg("error scanning tag metadata row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		metas = append(metas, meta)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return metas, nil
}

// FindTagMetadataByName retrieves the decoration for one tag name.
// An absent row yields [ErrTagMetadataNotFound]; callers are expected to
// fall back to the default icon and color class.
func (r *tagMetadataRepository) FindTagMetadataByName(ctx context.Context, userID int64, name string) (models.TagMetadata, error) {
	log := logger.FromContext(ctx)

	var meta models.TagMetadata
	row := r.db.QueryRowContext(ctx, findTagMetadataByName, userID, name)
	if err := row.Scan(&meta.ID, &meta.UserID, &meta.Name, &meta.Icon, &meta.ColorClass); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.TagMetadata{}, ErrTagMetadataNotFound
		}

		log.Err(err).Str("func", "*tagMetadataRepository.FindTagMetadataByName").Msg("error finding tag metadata")
		return models.TagMetadata{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return meta, nil
}

// UpdateTagMetadata replaces the icon and color class of the decoration row
// identified by meta.ID and meta.UserID. A zero-row update yields
// [ErrTagMetadataNotFound].
func (r *tagMetadataRepository) UpdateTagMetadata(ctx context.Context, meta models.TagMetadata) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateTagMetadata, meta.Icon, meta.ColorClass, meta.ID, meta.UserID)
	if err != nil {
		log.Err(err).Str("func", "*tagMetadataRepository.UpdateTagMetadata").Msg("error updating tag metadata")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrTagMetadataNotFound
	}

	return nil
}

// DeleteTagMetadata removes the decoration row identified by id and userID.
// Entries keep their tag strings; only the decoration disappears.
//
// A delete that affects zero rows returns [ErrNothingDeleted].
func (r *tagMetadataRepository) DeleteTagMetadata(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteTagMetadata, id, userID)
	if err != nil {
		log.Err(err).Str("func", "*tagMetadataRepository.DeleteTagMetadata").Msg("error deleting tag metadata")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNothingDeleted
	}

	return nil
}
