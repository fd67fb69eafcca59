package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/asalimova/word-inventory/internal/logger"
	"github.com/asalimova/word-inventory/internal/store"
	"github.com/asalimova/word-inventory/models"
)

// languageService is the concrete implementation of LanguageService.
type languageService struct {
	languageRepository store.LanguageRepository
	logger             *logger.Logger
}

// NewLanguageService constructs a LanguageService wired to the given
// repository.
func NewLanguageService(languageRepository store.LanguageRepository, logger *logger.Logger) LanguageService {
	return &languageService{
		languageRepository: languageRepository,
		logger:             logger,
	}
}

// CreateLanguage validates and persists a new language. The ISO code is
// normalised to lower case because it doubles as a URL slug.
//
// Returns the persisted language or:
//   - ErrInvalidDataProvided if the name is empty after trimming;
//   - store.ErrLanguageExists if the ISO code is already taken.
func (s *languageService) CreateLanguage(ctx context.Context, language models.Language) (models.Language, error) {
	log := logger.FromContext(ctx)

	language.Name = strings.TrimSpace(language.Name)
	language.ISOCode = strings.ToLower(strings.TrimSpace(language.ISOCode))
	if language.Name == "" {
		return models.Language{}, ErrInvalidDataProvided
	}

	created, err := s.languageRepository.InsertLanguage(ctx, language)
	if err != nil {
		log.Err(err).Str("name", language.Name).Msg("language creation ended with error")
		return models.Language{}, fmt.Errorf("language creation ended with error: %w", err)
	}

	return created, nil
}

// ListLanguages returns all languages of the given owner.
func (s *languageService) ListLanguages(ctx context.Context, userID int64) ([]models.Language, error) {
	return s.languageRepository.ListLanguages(ctx, userID)
}

// UpdateLanguage validates and replaces the name and ISO code of an
// existing language.
func (s *languageService) UpdateLanguage(ctx context.Context, language models.Language) error {
	log := logger.FromContext(ctx)

	language.Name = strings.TrimSpace(language.Name)
	language.ISOCode = strings.ToLower(strings.TrimSpace(language.ISOCode))
	if language.Name == "" {
		return ErrInvalidDataProvided
	}

	if err := s.languageRepository.UpdateLanguage(ctx, language); err != nil {
		log.Err(err).Int64("id", language.ID).Msg("language update ended with error")
		return fmt.Errorf("language update ended with error: %w", err)
	}

	return nil
}

// DeleteLanguage removes a language; entries referencing it are removed by
// the database cascade.
func (s *languageService) DeleteLanguage(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)

	if err := s.languageRepository.DeleteLanguage(ctx, id, userID); err != nil {
		log.Err(err).Int64("id", id).Msg("language deletion ended with error")
		return fmt.Errorf("language deletion ended with error: %w", err)
	}

	return nil
}
