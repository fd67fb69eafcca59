// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alina Salimova

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/asalimova/word-inventory/internal/cache"
	"github.com/asalimova/word-inventory/internal/logger"
	"github.com/asalimova/word-inventory/internal/store"
	"github.com/asalimova/word-inventory/models"
)

// entryService is the concrete implementation of EntryService. It owns the
// write path (validation, slug assignment, enrichment orchestration, cache
// invalidation) and the cached listing read path.
type entryService struct {
	entryRepository    store.EntryRepository
	languageRepository store.LanguageRepository
	profileRepository  store.ProfileRepository
	generator          EnrichmentGenerator
	slugs              SlugGenerator
	listings           *cache.ListingCache
	logger             *logger.Logger
}

// NewEntryService constructs an EntryService wired to the given
// repositories, generation client and listing cache.
func NewEntryService(
	entryRepository store.EntryRepository,
	languageRepository store.LanguageRepository,
	profileRepository store.ProfileRepository,
	generator EnrichmentGenerator,
	slugs SlugGenerator,
	listings *cache.ListingCache,
	logger *logger.Logger,
) EntryService {
	return &entryService{
		entryRepository:    entryRepository,
		languageRepository: languageRepository,
		profileRepository:  profileRepository,
		generator:          generator,
		slugs:              slugs,
		listings:           listings,
		logger:             logger,
	}
}

// validateEntryFields normalises and checks the mutable entry fields shared
// by create and update. Translation may be empty only when allowEmptyTranslation
// is set (the enrichment flow can fill it in afterwards).
func validateEntryFields(fields *models.EntryFields, allowEmptyTranslation bool) error {
	fields.Text = strings.TrimSpace(fields.Text)
	fields.Translation = strings.TrimSpace(fields.Translation)
	fields.Notes = strings.TrimSpace(fields.Notes)

	if fields.Text == "" {
		return ErrValidationNoText
	}
	if fields.Translation == "" && !allowEmptyTranslation {
		return ErrValidationNoTranslation
	}
	return nil
}

// CreateEntry validates and persists a new vocabulary entry.
//
// When req.Enrich is set on a word entry, generation runs before the
// insert: a generation failure means no entry is created at all. The
// generated payload is saved in a second statement after the insert; if
// that save fails the entry still exists, EnrichmentSaved is false and
// Warning tells the caller what happened. The failure is reported, never
// silently discarded.
//
// Validation errors:
//   - ErrValidationUnknownKind for a kind outside word/translation;
//   - ErrValidationNoLanguage for a word entry without a language;
//   - ErrValidationNoText / ErrValidationNoTranslation for blank fields
//     (a missing translation is tolerated when enrichment will supply one).
func (s *entryService) CreateEntry(ctx context.Context, userID int64, req models.CreateEntryRequest) (models.CreateEntryResponse, error) {
	log := logger.FromContext(ctx)

	if !req.Kind.Valid() {
		return models.CreateEntryResponse{}, ErrValidationUnknownKind
	}

	entry := models.Entry{
		UserID:      userID,
		Kind:        req.Kind,
		LanguageID:  req.LanguageID,
		Text:        req.Text,
		Translation: req.Translation,
		Notes:       req.Notes,
		Color:       req.Color,
		ImageURL:    req.ImageURL,
		Tags:        req.Tags,
	}

	// Enrichment is a word-entry feature; translation entries ignore it.
	enrichRequested := req.Enrich != nil && req.Kind == models.EntryKindWord

	switch req.Kind {
	case models.EntryKindWord:
		if entry.LanguageID == nil {
			return models.CreateEntryResponse{}, ErrValidationNoLanguage
		}
	case models.EntryKindTranslation:
		entry.LanguageID = nil
	}

	fields := models.EntryFields{Text: entry.Text, Translation: entry.Translation, Notes: entry.Notes}
	if err := validateEntryFields(&fields, enrichRequested && req.Enrich.Translation); err != nil {
		return models.CreateEntryResponse{}, err
	}
	entry.Text, entry.Translation, entry.Notes = fields.Text, fields.Translation, fields.Notes

	var payload json.RawMessage
	if enrichRequested {
		language, err := s.languageRepository.GetLanguage(ctx, *entry.LanguageID, userID)
		if err != nil {
			log.Err(err).Int64("language_id", *entry.LanguageID).Msg("language lookup ended with error")
			return models.CreateEntryResponse{}, fmt.Errorf("language lookup ended with error: %w", err)
		}

		profile, err := s.profileRepository.GetProfile(ctx, userID)
		if err != nil {
			return models.CreateEntryResponse{}, fmt.Errorf("profile lookup ended with error: %w", err)
		}

		payload, err = s.generator.Generate(ctx, models.EnrichRequest{
			WordText:       entry.Text,
			LanguageName:   language.Name,
			Options:        *req.Enrich,
			NativeLanguage: profile.NativeLanguage,
		})
		if err != nil {
			// Generation runs first on purpose: no entry exists yet,
			// so nothing is left behind on failure.
			return models.CreateEntryResponse{}, err
		}

		if entry.Translation == "" {
			entry.Translation = translationFromPayload(payload)
		}
		if entry.Translation == "" {
			return models.CreateEntryResponse{}, ErrValidationNoTranslation
		}
	}

	entry.Slug = s.slugs.Generate()

	created, err := s.entryRepository.InsertEntry(ctx, entry)
	if err != nil {
		log.Err(err).Str("text", entry.Text).Msg("entry creation ended with error")
		return models.CreateEntryResponse{}, fmt.Errorf("entry creation ended with error: %w", err)
	}

	resp := models.CreateEntryResponse{Entry: created, EnrichmentSaved: true}

	if payload != nil {
		if err = s.entryRepository.UpdateEnrichment(ctx, created.ID, userID, payload); err != nil {
			log.Err(err).Int64("id", created.ID).Msg("enrichment save ended with error")
			resp.EnrichmentSaved = false
			resp.Warning = "entry was saved but its enrichment could not be stored"
		} else {
			resp.Entry.Enrichment = payload
		}
	}

	// Invalidated once, after the last write of the insert→enrichment-save
	// sequence; a listing read in between must not repopulate the cache
	// with the entry missing its payload.
	s.listings.InvalidateOwner(userID)

	return resp, nil
}

// GetEntry returns one entry of the given owner.
func (s *entryService) GetEntry(ctx context.Context, id, userID int64) (models.Entry, error) {
	return s.entryRepository.GetEntry(ctx, id, userID)
}

// ListEntries returns the owner's entries narrowed by filter. An invalid or
// missing sort order falls back to the owner's stored preference.
//
// Listings are served from the per-owner cache when possible; the cache is
// populated on miss and invalidated by every successful write.
func (s *entryService) ListEntries(ctx context.Context, userID int64, filter models.EntryFilter, sort models.SortOrder) ([]models.Entry, error) {
	log := logger.FromContext(ctx)

	if filter.Kind != "" && !filter.Kind.Valid() {
		return nil, ErrValidationUnknownKind
	}

	if !sort.Valid() {
		profile, err := s.profileRepository.GetProfile(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("profile lookup ended with error: %w", err)
		}
		sort = profile.SortPreference
		if !sort.Valid() {
			sort = models.SortDateDesc
		}
	}

	key := cache.Key(userID, filter, sort)
	if entries, ok := s.listings.Get(key); ok {
		return entries, nil
	}

	entries, err := s.entryRepository.ListEntries(ctx, userID, filter, sort)
	if err != nil {
		log.Err(err).Msg("entry listing ended with error")
		return nil, fmt.Errorf("entry listing ended with error: %w", err)
	}
	s.listings.Set(key, entries)

	return entries, nil
}

// UpdateEntry replaces all mutable fields of an entry and returns the
// updated record.
func (s *entryService) UpdateEntry(ctx context.Context, id, userID int64, fields models.EntryFields) (models.Entry, error) {
	log := logger.FromContext(ctx)

	if err := validateEntryFields(&fields, false); err != nil {
		return models.Entry{}, err
	}

	if err := s.entryRepository.UpdateEntry(ctx, id, userID, fields); err != nil {
		log.Err(err).Int64("id", id).Msg("entry update ended with error")
		return models.Entry{}, fmt.Errorf("entry update ended with error: %w", err)
	}
	s.listings.InvalidateOwner(userID)

	return s.entryRepository.GetEntry(ctx, id, userID)
}

// DeleteEntry removes an entry. A delete of an already-gone row surfaces as
// store.ErrNothingDeleted rather than an idempotent success.
func (s *entryService) DeleteEntry(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)

	if err := s.entryRepository.DeleteEntry(ctx, id, userID); err != nil {
		log.Err(err).Int64("id", id).Msg("entry deletion ended with error")
		return fmt.Errorf("entry deletion ended with error: %w", err)
	}
	s.listings.InvalidateOwner(userID)

	return nil
}

// RandomEntrySlug picks a random entry of the given kind, excluding the one
// currently shown. An invalid kind defaults to word, the common "next random
// word" navigation. An empty slug (not an error) means the owner has no
// other entry to jump to.
func (s *entryService) RandomEntrySlug(ctx context.Context, userID int64, kind models.EntryKind, excludeSlug string) (string, error) {
	if !kind.Valid() {
		kind = models.EntryKindWord
	}

	slug, err := s.entryRepository.RandomEntrySlug(ctx, userID, kind, excludeSlug)
	if err != nil {
		if errors.Is(err, store.ErrEntryNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("random entry lookup ended with error: %w", err)
	}

	return slug, nil
}

// Enrich runs a standalone generation without touching any entry: the
// preview flow used while the user is still filling the creation form.
// Nothing is persisted.
//
// When the request carries no native language, the owner's stored
// preference is used.
func (s *entryService) Enrich(ctx context.Context, userID int64, req models.EnrichRequest) (models.EnrichResponse, error) {
	log := logger.FromContext(ctx)

	req.WordText = strings.TrimSpace(req.WordText)
	req.LanguageName = strings.TrimSpace(req.LanguageName)
	if req.WordText == "" {
		return models.EnrichResponse{}, ErrValidationNoWordText
	}
	if req.LanguageName == "" {
		return models.EnrichResponse{}, ErrValidationNoLanguageName
	}

	if req.NativeLanguage == "" {
		profile, err := s.profileRepository.GetProfile(ctx, userID)
		if err != nil {
			return models.EnrichResponse{}, fmt.Errorf("profile lookup ended with error: %w", err)
		}
		req.NativeLanguage = profile.NativeLanguage
	}

	payload, err := s.generator.Generate(ctx, req)
	if err != nil {
		log.Err(err).Str("word", req.WordText).Msg("enrichment generation ended with error")
		return models.EnrichResponse{}, err
	}

	resolved, err := models.ResolveEnrichment(payload)
	if err != nil {
		return models.EnrichResponse{}, fmt.Errorf("error resolving enrichment payload: %w", err)
	}

	return models.EnrichResponse{
		Success:     true,
		Translation: translationFromPayload(payload),
		AIData:      payload,
		Resolved:    resolved,
	}, nil
}

// translationFromPayload extracts the "translation" field of a generated
// payload when it resolved to plain text, or returns "".
func translationFromPayload(payload json.RawMessage) string {
	resolved, err := models.ResolveEnrichment(payload)
	if err != nil {
		return ""
	}
	if field, ok := resolved["translation"]; ok && field.Kind == models.FieldText {
		return strings.TrimSpace(field.Text)
	}
	return ""
}
