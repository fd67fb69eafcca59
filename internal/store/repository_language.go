package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/asalimova/word-inventory/internal/logger"
	"github.com/asalimova/word-inventory/models"
)

// languageRepository is the SQL-backed implementation of [LanguageRepository].
// Every statement filters by user_id, so a language owned by another user is
// indistinguishable from a missing one.
type languageRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewLanguageRepository constructs a [LanguageRepository] backed by the
// provided database connection and logger.
func NewLanguageRepository(db *DB, logger *logger.Logger) LanguageRepository {
	logger.Debug().Msg("creating language repository")
	return &languageRepository{
		db:     db,
		logger: logger,
	}
}

// InsertLanguage persists a new language and returns it with the
// server-assigned ID filled in.
//
// Error handling:
//   - unique violation on (user_id, iso_code) → [ErrLanguageExists];
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *languageRepository) InsertLanguage(ctx context.Context, language models.Language) (models.Language, error) {
	log := logger.FromContext(ctx)

	language.CreatedAt = time.Now().UTC()

	row := r.db.QueryRowContext(ctx, insertLanguage, language.UserID, language.Name, language.ISOCode, language.CreatedAt)
	if err := row.Scan(&language.ID); err != nil {
		if r.db.errorClassifier.IsUniqueViolation(err) {
			log.Warn().Str("func", "*languageRepository.InsertLanguage").Str("iso_code", language.ISOCode).Msg("duplicate iso code")
			return models.Language{}, ErrLanguageExists
		}

		log.Err(err).Str("func", "*languageRepository.InsertLanguage").Msg("error inserting language")
		return models.Language{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return language, nil
}

// GetLanguage retrieves the language identified by id and userID.
// A missing or foreign row yields [ErrLanguageNotFound].
func (r *languageRepository) GetLanguage(ctx context.Context, id, userID int64) (models.Language, error) {
	log := logger.FromContext(ctx)

	var language models.Language
	row := r.db.QueryRowContext(ctx, getLanguage, id, userID)
	if err := row.Scan(&language.ID, &language.UserID, &language.Name, &language.ISOCode, &language.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Language{}, ErrLanguageNotFound
		}

		log.Err(err).Str("func", "*languageRepository.GetLanguage").Msg("error getting language")
		return models.Language{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return language, nil
}

// ListLanguages returns all languages of the given owner ordered by name.
func (r *languageRepository) ListLanguages(ctx context.Context, userID int64) ([]models.Language, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listLanguages, userID)
	if err != nil {
		log.Err(err).Str("func", "*languageRepository.ListLanguages").Msg("error querying languages")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	languages := make([]models.Language, 0)
	for rows.Next() {
		var language models.Language
		if err = rows.Scan(&language.ID, &language.UserID, &language.Name, &language.ISOCode, &language.CreatedAt); err != nil {
			log.Err(err).Str("func", "*languageRepository.ListLanguages").Msg("error scanning language row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		languages = append(languages, language)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return languages, nil
}

// UpdateLanguage replaces the name and ISO code of the language identified
// by language.ID and language.UserID.
//
// Error handling:
//   - unique violation on (user_id, iso_code) → [ErrLanguageExists];
//   - zero affected rows → [ErrLanguageNotFound].
func (r *languageRepository) UpdateLanguage(ctx context.Context, language models.Language) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateLanguage, language.Name, language.ISOCode, language.ID, language.UserID)
	if err != nil {
		if r.db.errorClassifier.IsUniqueViolation(err) {
			return ErrLanguageExists
		}

		log.Err(err).Str("func", "*languageRepository.UpdateLanguage").Msg("error updating language")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrLanguageNotFound
	}

	return nil
}

// DeleteLanguage removes the language identified by id and userID. Entries
// referencing it are removed by the ON DELETE CASCADE constraint.
//
// A delete that affects zero rows returns [ErrNothingDeleted].
func (r *languageRepository) DeleteLanguage(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteLanguage, id, userID)
	if err != nil {
		log.Err(err).Str("func", "*languageRepository.DeleteLanguage").Msg("error deleting language")
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
