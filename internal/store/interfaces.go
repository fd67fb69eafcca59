package store

import (
	"context"
	"encoding/json"

	"github.com/asalimova/word-inventory/models"
)

// UserRepository persists and retrieves user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// LanguageRepository manages a user's studied languages. Every method is
// scoped by owner; rows belonging to other users are invisible.
type LanguageRepository interface {
	InsertLanguage(ctx context.Context, language models.Language) (models.Language, error)
	GetLanguage(ctx context.Context, id, userID int64) (models.Language, error)
	ListLanguages(ctx context.Context, userID int64) ([]models.Language, error)
	UpdateLanguage(ctx context.Context, language models.Language) error
	DeleteLanguage(ctx context.Context, id, userID int64) error
}

// EntryRepository manages vocabulary entries. Every method is scoped by
// owner; a row belonging to another user behaves exactly like a missing row.
type EntryRepository interface {
	InsertEntry(ctx context.Context, entry models.Entry) (models.Entry, error)
	GetEntry(ctx context.Context, id, userID int64) (models.Entry, error)
	ListEntries(ctx context.Context, userID int64, filter models.EntryFilter, sort models.SortOrder) ([]models.Entry, error)
	UpdateEntry(ctx context.Context, id, userID int64, fields models.EntryFields) error
	UpdateEnrichment(ctx context.Context, id, userID int64, payload json.RawMessage) error
	DeleteEntry(ctx context.Context, id, userID int64) error
	RandomEntrySlug(ctx context.Context, userID int64, kind models.EntryKind, excludeSlug string) (string, error)
}

// TagMetadataRepository manages per-owner tag decoration records.
type TagMetadataRepository interface {
	InsertTagMetadata(ctx context.Context, meta models.TagMetadata) (models.TagMetadata, error)
	ListTagMetadata(ctx context.Context, userID int64) ([]models.TagMetadata, error)
	FindTagMetadataByName(ctx context.Context, userID int64, name string) (models.TagMetadata, error)
	UpdateTagMetadata(ctx context.Context, meta models.TagMetadata) error
	DeleteTagMetadata(ctx context.Context, id, userID int64) error
}

// ProfileRepository manages per-user preference rows. Profiles are created
// lazily: reads of an absent row yield defaults instead of an error.
type ProfileRepository interface {
	GetProfile(ctx context.Context, userID int64) (models.Profile, error)
	UpsertProfile(ctx context.Context, profile models.Profile) error
}
