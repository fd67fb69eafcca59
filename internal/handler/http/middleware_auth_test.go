package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/asalimova/word-inventory/internal/service"
	"github.com/asalimova/word-inventory/internal/utils"
	"github.com/asalimova/word-inventory/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authMiddlewareFixture wires the auth middleware around a probe handler
// that records whether it was reached and with which user ID.
type authMiddlewareFixture struct {
	handler http.Handler

	reached bool
	userID  int64
	hadID   bool
}

func newAuthMiddlewareFixture(t *testing.T, validateTokenFn func(string) (models.Token, error)) *authMiddlewareFixture {
	t.Helper()

	f := &authMiddlewareFixture{}

	h := newTestHandler(t, &service.Services{
		AuthService: &mockAuthService{validateTokenFn: validateTokenFn},
	})

	f.handler = h.auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.reached = true
		f.userID, f.hadID = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	return f
}

// TestAuth_ValidToken verifies that a valid bearer token lets the request
// through with the user ID stored in the context.
func TestAuth_ValidToken(t *testing.T) {
	f := newAuthMiddlewareFixture(t, func(tokenString string) (models.Token, error) {
		require.Equal(t, "good-token", tokenString)
		return models.Token{UserID: testUserID}, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/api/entries", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()

	f.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, f.reached)
	require.True(t, f.hadID)
	assert.Equal(t, testUserID, f.userID)
}

// TestAuth_MissingHeader verifies the 401 on an absent Authorization header.
func TestAuth_MissingHeader(t *testing.T) {
	f := newAuthMiddlewareFixture(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/entries", nil)
	rec := httptest.NewRecorder()

	f.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, f.reached)
}

// TestAuth_MalformedHeader verifies the 401 on a header without a token part.
func TestAuth_MalformedHeader(t *testing.T) {
	f := newAuthMiddlewareFixture(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/entries", nil)
	req.Header.Set("Authorization", "Bearer")
	rec := httptest.NewRecorder()

	f.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, f.reached)
}

// TestAuth_InvalidToken verifies the 401 when token validation fails.
func TestAuth_InvalidToken(t *testing.T) {
	f := newAuthMiddlewareFixture(t, func(string) (models.Token, error) {
		return models.Token{}, errors.New("token has invalid claims: token is expired")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/entries", nil)
	req.Header.Set("Authorization", "Bearer stale-token")
	rec := httptest.NewRecorder()

	f.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, f.reached)
}

// getTokenFromAuthHeader is shared by the middleware; cover its edge cases
// directly.
func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "bearer token", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "any scheme accepted", header: "Token xyz", want: "xyz"},
		{name: "no token part", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "empty token part", header: "Bearer ", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
