package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/asalimova/word-inventory/internal/logger"
	"github.com/asalimova/word-inventory/models"
)

// profileRepository is the SQL-backed implementation of [ProfileRepository].
type profileRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProfileRepository constructs a [ProfileRepository] backed by the
// provided database connection and logger.
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

// GetProfile retrieves the preference row of the given user. Profiles are
// created lazily on first save, so an absent row is not an error: the
// defaults from [models.DefaultProfile] are returned instead.
func (r *profileRepository) GetProfile(ctx context.Context, userID int64) (models.Profile, error) {
	log := logger.FromContext(ctx)

	var profile models.Profile
	row := r.db.QueryRowContext(ctx, getProfile, userID)
	if err := row.Scan(&profile.UserID, &profile.Username, &profile.NativeLanguage, &profile.Theme, &profile.SortPreference); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DefaultProfile(userID), nil
		}

		log.Err(err).Str("func", "*profileRepository.GetProfile").Msg("error getting profile")
		return models.Profile{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return profile, nil
}

// UpsertProfile saves the full preference row, inserting it on first save
// and replacing every column afterwards.
func (r *profileRepository) UpsertProfile(ctx context.Context, profile models.Profile) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, upsertProfile,
		profile.UserID, profile.Username, profile.NativeLanguage,
		profile.Theme, profile.SortPreference,
	)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.UpsertProfile").Msg("error saving profile")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
