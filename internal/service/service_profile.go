package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/asalimova/word-inventory/internal/logger"
	"github.com/asalimova/word-inventory/internal/store"
	"github.com/asalimova/word-inventory/models"
)

// knownThemes is the set of accepted theme preferences.
var knownThemes = map[string]bool{"light": true, "dark": true, "system": true}

// profileService is the concrete implementation of ProfileService.
type profileService struct {
	profileRepository store.ProfileRepository
	logger            *logger.Logger
}

// NewProfileService constructs a ProfileService wired to the given
// repository.
func NewProfileService(profileRepository store.ProfileRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		profileRepository: profileRepository,
		logger:            logger,
	}
}

// GetProfile returns the owner's preferences, falling back to defaults when
// nothing has been saved yet.
func (s *profileService) GetProfile(ctx context.Context, userID int64) (models.Profile, error) {
	return s.profileRepository.GetProfile(ctx, userID)
}

// UpdateProfile validates and saves the full preference set. Unset theme
// and sort fields receive their defaults; unknown values are rejected.
func (s *profileService) UpdateProfile(ctx context.Context, profile models.Profile) error {
	log := logger.FromContext(ctx)

	profile.Username = strings.TrimSpace(profile.Username)
	profile.NativeLanguage = strings.TrimSpace(profile.NativeLanguage)

	if profile.Theme == "" {
		profile.Theme = "system"
	}
	if !knownThemes[profile.Theme] {
		return ErrValidationUnknownTheme
	}

	if profile.SortPreference == "" {
		profile.SortPreference = models.SortDateDesc
	}
	if !profile.SortPreference.Valid() {
		return ErrValidationUnknownSort
	}

	if err := s.profileRepository.UpsertProfile(ctx, profile); err != nil {
		log.Err(err).Int64("user_id", profile.UserID).Msg("profile update ended with error")
		return fmt.Errorf("profile update ended with error: %w", err)
	}

	return nil
}
