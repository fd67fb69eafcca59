package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/asalimova/word-inventory/internal/logger"
	"github.com/asalimova/word-inventory/internal/store"
	"github.com/asalimova/word-inventory/models"
)

// tagMetadataService is the concrete implementation of TagMetadataService.
type tagMetadataService struct {
	tagMetadataRepository store.TagMetadataRepository
	logger                *logger.Logger
}

// NewTagMetadataService constructs a TagMetadataService wired to the given
// repository.
func NewTagMetadataService(tagMetadataRepository store.TagMetadataRepository, logger *logger.Logger) TagMetadataService {
	return &tagMetadataService{
		tagMetadataRepository: tagMetadataRepository,
		logger:                logger,
	}
}

// CreateTagMetadata validates and persists decoration for a tag name.
// Unset icon and color fall back to the defaults; an icon outside the fixed
// icon set is rejected with ErrValidationUnknownIcon.
func (s *tagMetadataService) CreateTagMetadata(ctx context.Context, meta models.TagMetadata) (models.TagMetadata, error) {
	log := logger.FromContext(ctx)

	meta.Name = strings.TrimSpace(meta.Name)
	if meta.Name == "" {
		return models.TagMetadata{}, ErrInvalidDataProvided
	}
	if meta.Icon == "" {
		meta.Icon = models.DefaultTagIcon
	}
	if meta.ColorClass == "" {
		meta.ColorClass = models.DefaultTagColorClass
	}
	if !models.ValidTagIcon(meta.Icon) {
		return models.TagMetadata{}, ErrValidationUnknownIcon
	}

	created, err := s.tagMetadataRepository.InsertTagMetadata(ctx, meta)
	if err != nil {
		log.Err(err).Str("name", meta.Name).Msg("tag metadata creation ended with error")
		return models.TagMetadata{}, fmt.Errorf("tag metadata creation ended with error: %w", err)
	}

	return created, nil
}

// ListTagMetadata returns all decoration rows of the given owner.
func (s *tagMetadataService) ListTagMetadata(ctx context.Context, userID int64) ([]models.TagMetadata, error) {
	return s.tagMetadataRepository.ListTagMetadata(ctx, userID)
}

// GetTagDecoration returns the stored decoration for a tag name. A tag
// without a stored row is not an error: the defaults are returned, so every
// tag string renders with an icon and a color.
func (s *tagMetadataService) GetTagDecoration(ctx context.Context, userID int64, name string) (models.TagMetadata, error) {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return models.TagMetadata{}, ErrInvalidDataProvided
	}

	meta, err := s.tagMetadataRepository.FindTagMetadataByName(ctx, userID, name)
	if err != nil {
		if errors.Is(err, store.ErrTagMetadataNotFound) {
			return models.TagMetadata{
				UserID:     userID,
				Name:       name,
				Icon:       models.DefaultTagIcon,
				ColorClass: models.DefaultTagColorClass,
			}, nil
		}

		log.Err(err).Str("name", name).Msg("tag decoration lookup ended with error")
		return models.TagMetadata{}, fmt.Errorf("tag decoration lookup ended with error: %w", err)
	}

	return meta, nil
}

// UpdateTagMetadata replaces the icon and color class of a decoration row.
func (s *tagMetadataService) UpdateTagMetadata(ctx context.Context, meta models.TagMetadata) error {
	log := logger.FromContext(ctx)

	if meta.Icon == "" {
		meta.Icon = models.DefaultTagIcon
	}
	if meta.ColorClass == "" {
		meta.ColorClass = models.DefaultTagColorClass
	}
	if !models.ValidTagIcon(meta.Icon) {
		return ErrValidationUnknownIcon
	}

	if err := s.tagMetadataRepository.UpdateTagMetadata(ctx, meta); err != nil {
		log.Err(err).Int64("id", meta.ID).Msg("tag metadata update ended with error")
		return fmt.Errorf("tag metadata update ended with error: %w", err)
	}

	return nil
}

// DeleteTagMetadata removes a decoration row. Entries keep the tag string;
// rendering falls back to the default icon and color.
func (s *tagMetadataService) DeleteTagMetadata(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)

	if err := s.tagMetadataRepository.DeleteTagMetadata(ctx, id, userID); err != nil {
		log.Err(err).Int64("id", id).Msg("tag metadata deletion ended with error")
		return fmt.Errorf("tag metadata deletion ended with error: %w", err)
	}

	return nil
}
