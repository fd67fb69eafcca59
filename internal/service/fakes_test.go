package service

import (
	"context"
	"encoding/json"

	"github.com/asalimova/word-inventory/models"
)

// Hand-rolled fakes with overridable function fields. A nil field means the
// call is unexpected for that test and returns zero values.

type fakeUserRepository struct {
	createUserFn      func(ctx context.Context, user models.User) (models.User, error)
	findUserByLoginFn func(ctx context.Context, login string) (models.User, error)
}

func (f *fakeUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if f.createUserFn == nil {
		return user, nil
	}
	return f.createUserFn(ctx, user)
}

func (f *fakeUserRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	if f.findUserByLoginFn == nil {
		return models.User{}, nil
	}
	return f.findUserByLoginFn(ctx, login)
}

type fakeLanguageRepository struct {
	insertLanguageFn func(ctx context.Context, language models.Language) (models.Language, error)
	getLanguageFn    func(ctx context.Context, id, userID int64) (models.Language, error)
	deleteLanguageFn func(ctx context.Context, id, userID int64) error
}

func (f *fakeLanguageRepository) InsertLanguage(ctx context.Context, language models.Language) (models.Language, error) {
	if f.insertLanguageFn == nil {
		return language, nil
	}
	return f.insertLanguageFn(ctx, language)
}

func (f *fakeLanguageRepository) GetLanguage(ctx context.Context, id, userID int64) (models.Language, error) {
	if f.getLanguageFn == nil {
		return models.Language{ID: id, UserID: userID, Name: "German", ISOCode: "de"}, nil
	}
	return f.getLanguageFn(ctx, id, userID)
}

func (f *fakeLanguageRepository) ListLanguages(context.Context, int64) ([]models.Language, error) {
	return nil, nil
}

func (f *fakeLanguageRepository) UpdateLanguage(context.Context, models.Language) error {
	return nil
}

func (f *fakeLanguageRepository) DeleteLanguage(ctx context.Context, id, userID int64) error {
	if f.deleteLanguageFn == nil {
		return nil
	}
	return f.deleteLanguageFn(ctx, id, userID)
}

type fakeTagMetadataRepository struct {
	insertFn func(ctx context.Context, meta models.TagMetadata) (models.TagMetadata, error)
	updateFn func(ctx context.Context, meta models.TagMetadata) error
}

func (f *fakeTagMetadataRepository) InsertTagMetadata(ctx context.Context, meta models.TagMetadata) (models.TagMetadata, error) {
	if f.insertFn == nil {
		meta.ID = 1
		return meta, nil
	}
	return f.insertFn(ctx, meta)
}

func (f *fakeTagMetadataRepository) ListTagMetadata(context.Context, int64) ([]models.TagMetadata, error) {
	return nil, nil
}

func (f *fakeTagMetadataRepository) FindTagMetadataByName(context.Context, int64, string) (models.TagMetadata, error) {
	return models.TagMetadata{}, nil
}

func (f *fakeTagMetadataRepository) UpdateTagMetadata(ctx context.Context, meta models.TagMetadata) error {
	if f.updateFn == nil {
		return nil
	}
	return f.updateFn(ctx, meta)
}

func (f *fakeTagMetadataRepository) DeleteTagMetadata(context.Context, int64, int64) error {
	return nil
}

type fakeProfileRepository struct {
	getProfileFn func(ctx context.Context, userID int64) (models.Profile, error)
	upsertFn     func(ctx context.Context, profile models.Profile) error
}

func (f *fakeProfileRepository) GetProfile(ctx context.Context, userID int64) (models.Profile, error) {
	if f.getProfileFn == nil {
		return models.DefaultProfile(userID), nil
	}
	return f.getProfileFn(ctx, userID)
}

func (f *fakeProfileRepository) UpsertProfile(ctx context.Context, profile models.Profile) error {
	if f.upsertFn == nil {
		return nil
	}
	return f.upsertFn(ctx, profile)
}

type fakeEntryRepository struct {
	insertFn           func(ctx context.Context, entry models.Entry) (models.Entry, error)
	getFn              func(ctx context.Context, id, userID int64) (models.Entry, error)
	listFn             func(ctx context.Context, userID int64, filter models.EntryFilter, sort models.SortOrder) ([]models.Entry, error)
	updateFn           func(ctx context.Context, id, userID int64, fields models.EntryFields) error
	updateEnrichmentFn func(ctx context.Context, id, userID int64, payload json.RawMessage) error
	deleteFn           func(ctx context.Context, id, userID int64) error
	randomFn           func(ctx context.Context, userID int64, kind models.EntryKind, excludeSlug string) (string, error)

	insertCalls int
	listCalls   int
}

func (f *fakeEntryRepository) InsertEntry(ctx context.Context, entry models.Entry) (models.Entry, error) {
	f.insertCalls++
	if f.insertFn == nil {
		entry.ID = 1
		return entry, nil
	}
	return f.insertFn(ctx, entry)
}

func (f *fakeEntryRepository) GetEntry(ctx context.Context, id, userID int64) (models.Entry, error) {
	if f.getFn == nil {
		return models.Entry{ID: id, UserID: userID}, nil
	}
	return f.getFn(ctx, id, userID)
}

func (f *fakeEntryRepository) ListEntries(ctx context.Context, userID int64, filter models.EntryFilter, sort models.SortOrder) ([]models.Entry, error) {
	f.listCalls++
	if f.listFn == nil {
		return []models.Entry{}, nil
	}
	return f.listFn(ctx, userID, filter, sort)
}

func (f *fakeEntryRepository) UpdateEntry(ctx context.Context, id, userID int64, fields models.EntryFields) error {
	if f.updateFn == nil {
		return nil
	}
	return f.updateFn(ctx, id, userID, fields)
}

func (f *fakeEntryRepository) UpdateEnrichment(ctx context.Context, id, userID int64, payload json.RawMessage) error {
	if f.updateEnrichmentFn == nil {
		return nil
	}
	return f.updateEnrichmentFn(ctx, id, userID, payload)
}

func (f *fakeEntryRepository) DeleteEntry(ctx context.Context, id, userID int64) error {
	if f.deleteFn == nil {
		return nil
	}
	return f.deleteFn(ctx, id, userID)
}

func (f *fakeEntryRepository) RandomEntrySlug(ctx context.Context, userID int64, kind models.EntryKind, excludeSlug string) (string, error) {
	if f.randomFn == nil {
		return "", nil
	}
	return f.randomFn(ctx, userID, kind, excludeSlug)
}

type fakeGenerator struct {
	generateFn func(ctx context.Context, req models.EnrichRequest) (json.RawMessage, error)
	calls      int
}

func (f *fakeGenerator) Generate(ctx context.Context, req models.EnrichRequest) (json.RawMessage, error) {
	f.calls++
	if f.generateFn == nil {
		return json.RawMessage(`{"translation":"dog"}`), nil
	}
	return f.generateFn(ctx, req)
}

type fakeSlugGenerator struct{}

func (f *fakeSlugGenerator) Generate() string { return "fixed-slug" }
