package http

import (
	"net/http"
	"strconv"

	"github.com/asalimova/word-inventory/internal/utils"
	"github.com/go-chi/chi/v5"
)

// userIDFromRequest reads the authenticated user's ID placed in the request
// context by the auth middleware. A missing ID means the handler was reached
// outside the authenticated route group; the request is rejected with 401
// and ok is false.
func userIDFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
	}
	return userID, ok
}

// idFromURL parses the {id} route parameter as a base-10 int64.
func idFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
