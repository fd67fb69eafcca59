package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/asalimova/word-inventory/internal/logger"
	"github.com/asalimova/word-inventory/internal/service"
	"github.com/asalimova/word-inventory/internal/utils"
	"github.com/asalimova/word-inventory/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// Each mock implements its service interface through overridable function
// fields so that tests only define the calls they expect.

type mockAuthService struct {
	registerUserFn  func(ctx context.Context, user models.User) (models.User, error)
	loginFn         func(ctx context.Context, user models.User) (models.Token, error)
	validateTokenFn func(tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.Token, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) ValidateToken(tokenString string) (models.Token, error) {
	return m.validateTokenFn(tokenString)
}

type mockLanguageService struct {
	createFn func(ctx context.Context, language models.Language) (models.Language, error)
	listFn   func(ctx context.Context, userID int64) ([]models.Language, error)
	updateFn func(ctx context.Context, language models.Language) error
	deleteFn func(ctx context.Context, id, userID int64) error
}

func (m *mockLanguageService) CreateLanguage(ctx context.Context, language models.Language) (models.Language, error) {
	return m.createFn(ctx, language)
}

func (m *mockLanguageService) ListLanguages(ctx context.Context, userID int64) ([]models.Language, error) {
	return m.listFn(ctx, userID)
}

func (m *mockLanguageService) UpdateLanguage(ctx context.Context, language models.Language) error {
	return m.updateFn(ctx, language)
}

func (m *mockLanguageService) DeleteLanguage(ctx context.Context, id, userID int64) error {
	return m.deleteFn(ctx, id, userID)
}

type mockEntryService struct {
	createFn     func(ctx context.Context, userID int64, req models.CreateEntryRequest) (models.CreateEntryResponse, error)
	getFn        func(ctx context.Context, id, userID int64) (models.Entry, error)
	listFn       func(ctx context.Context, userID int64, filter models.EntryFilter, sort models.SortOrder) ([]models.Entry, error)
	updateFn     func(ctx context.Context, id, userID int64, fields models.EntryFields) (models.Entry, error)
	deleteFn     func(ctx context.Context, id, userID int64) error
	randomSlugFn func(ctx context.Context, userID int64, kind models.EntryKind, excludeSlug string) (string, error)
	enrichFn     func(ctx context.Context, userID int64, req models.EnrichRequest) (models.EnrichResponse, error)
}

func (m *mockEntryService) CreateEntry(ctx context.Context, userID int64, req models.CreateEntryRequest) (models.CreateEntryResponse, error) {
	return m.createFn(ctx, userID, req)
}

func (m *mockEntryService) GetEntry(ctx context.Context, id, userID int64) (models.Entry, error) {
	return m.getFn(ctx, id, userID)
}

func (m *mockEntryService) ListEntries(ctx context.Context, userID int64, filter models.EntryFilter, sort models.SortOrder) ([]models.Entry, error) {
	return m.listFn(ctx, userID, filter, sort)
}

func (m *mockEntryService) UpdateEntry(ctx context.Context, id, userID int64, fields models.EntryFields) (models.Entry, error) {
	return m.updateFn(ctx, id, userID, fields)
}

func (m *mockEntryService) DeleteEntry(ctx context.Context, id, userID int64) error {
	return m.deleteFn(ctx, id, userID)
}

func (m *mockEntryService) RandomEntrySlug(ctx context.Context, userID int64, kind models.EntryKind, excludeSlug string) (string, error) {
	return m.randomSlugFn(ctx, userID, kind, excludeSlug)
}

func (m *mockEntryService) Enrich(ctx context.Context, userID int64, req models.EnrichRequest) (models.EnrichResponse, error) {
	return m.enrichFn(ctx, userID, req)
}

type mockTagMetadataService struct {
	createFn     func(ctx context.Context, meta models.TagMetadata) (models.TagMetadata, error)
	listFn       func(ctx context.Context, userID int64) ([]models.TagMetadata, error)
	decorationFn func(ctx context.Context, userID int64, name string) (models.TagMetadata, error)
	updateFn     func(ctx context.Context, meta models.TagMetadata) error
	deleteFn     func(ctx context.Context, id, userID int64) error
}

func (m *mockTagMetadataService) CreateTagMetadata(ctx context.Context, meta models.TagMetadata) (models.TagMetadata, error) {
	return m.createFn(ctx, meta)
}

func (m *mockTagMetadataService) ListTagMetadata(ctx context.Context, userID int64) ([]models.TagMetadata, error) {
	return m.listFn(ctx, userID)
}

func (m *mockTagMetadataService) GetTagDecoration(ctx context.Context, userID int64, name string) (models.TagMetadata, error) {
	return m.decorationFn(ctx, userID, name)
}

func (m *mockTagMetadataService) UpdateTagMetadata(ctx context.Context, meta models.TagMetadata) error {
	return m.updateFn(ctx, meta)
}

func (m *mockTagMetadataService) DeleteTagMetadata(ctx context.Context, id, userID int64) error {
	return m.deleteFn(ctx, id, userID)
}

type mockProfileService struct {
	getFn    func(ctx context.Context, userID int64) (models.Profile, error)
	updateFn func(ctx context.Context, profile models.Profile) error
}

func (m *mockProfileService) GetProfile(ctx context.Context, userID int64) (models.Profile, error) {
	return m.getFn(ctx, userID)
}

func (m *mockProfileService) UpdateProfile(ctx context.Context, profile models.Profile) error {
	return m.updateFn(ctx, profile)
}

type mockPracticeService struct {
	buildDeckFn func(ctx context.Context, userID int64, game string, size int) (models.PracticeDeck, error)
}

func (m *mockPracticeService) BuildDeck(ctx context.Context, userID int64, game string, size int) (models.PracticeDeck, error) {
	return m.buildDeckFn(ctx, userID, game, size)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testUserID int64 = 42

// newTestHandler builds a Handler with the given services; nil fields stay
// nil, so a test reaching an unmocked service panics loudly.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	return NewHandler(svcs, "test", logger.Nop())
}

// authedRequest builds a request carrying testUserID in its context, as the
// auth middleware would.
func authedRequest(t *testing.T, method, target, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := context.WithValue(req.Context(), utils.UserIDCtxKey, testUserID)
	return req.WithContext(ctx)
}

// jsonBody serialises v to a JSON string for use as a request body.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
