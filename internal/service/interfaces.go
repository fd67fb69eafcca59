package service

import (
	"context"
	"encoding/json"

	"github.com/asalimova/word-inventory/models"
)

// AuthService handles user registration, credential verification and the
// JWT token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.Token, error)
	ValidateToken(tokenString string) (models.Token, error)
}

// LanguageService manages the languages a user studies.
type LanguageService interface {
	CreateLanguage(ctx context.Context, language models.Language) (models.Language, error)
	ListLanguages(ctx context.Context, userID int64) ([]models.Language, error)
	UpdateLanguage(ctx context.Context, language models.Language) error
	DeleteLanguage(ctx context.Context, id, userID int64) error
}

// EntryService manages vocabulary entries, including the AI enrichment
// flows and the cached listing read path.
type EntryService interface {
	CreateEntry(ctx context.Context, userID int64, req models.CreateEntryRequest) (models.CreateEntryResponse, error)
	GetEntry(ctx context.Context, id, userID int64) (models.Entry, error)
	ListEntries(ctx context.Context, userID int64, filter models.EntryFilter, sort models.SortOrder) ([]models.Entry, error)
	UpdateEntry(ctx context.Context, id, userID int64, fields models.EntryFields) (models.Entry, error)
	DeleteEntry(ctx context.Context, id, userID int64) error
	RandomEntrySlug(ctx context.Context, userID int64, kind models.EntryKind, excludeSlug string) (string, error)
	Enrich(ctx context.Context, userID int64, req models.EnrichRequest) (models.EnrichResponse, error)
}

// TagMetadataService manages per-owner tag decoration.
type TagMetadataService interface {
	CreateTagMetadata(ctx context.Context, meta models.TagMetadata) (models.TagMetadata, error)
	ListTagMetadata(ctx context.Context, userID int64) ([]models.TagMetadata, error)
	GetTagDecoration(ctx context.Context, userID int64, name string) (models.TagMetadata, error)
	UpdateTagMetadata(ctx context.Context, meta models.TagMetadata) error
	DeleteTagMetadata(ctx context.Context, id, userID int64) error
}

// ProfileService manages per-user preferences.
type ProfileService interface {
	GetProfile(ctx context.Context, userID int64) (models.Profile, error)
	UpdateProfile(ctx context.Context, profile models.Profile) error
}

// PracticeService builds practice decks from the user's vocabulary.
type PracticeService interface {
	BuildDeck(ctx context.Context, userID int64, game string, size int) (models.PracticeDeck, error)
}

// EnrichmentGenerator is the hosted text-generation caller used by the
// entry service. Satisfied by [enrich.Generator].
type EnrichmentGenerator interface {
	Generate(ctx context.Context, req models.EnrichRequest) (json.RawMessage, error)
}

// SlugGenerator produces stable random identifiers for new entries.
// Satisfied by [utils.UUIDGenerator].
type SlugGenerator interface {
	Generate() string
}
