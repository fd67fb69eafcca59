package http

import (
	"errors"
	"net/http"

	"github.com/asalimova/word-inventory/internal/enrich"
	"github.com/asalimova/word-inventory/internal/service"
	"github.com/asalimova/word-inventory/internal/store"
	"github.com/asalimova/word-inventory/internal/utils"
	"github.com/asalimova/word-inventory/models"
)

// codeWordNotRecognized marks the one failure the client must tell apart
// from a generic upstream problem: the model looked at the input and said
// it is not a word.
const codeWordNotRecognized = "WORD_NOT_RECOGNIZED"

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	service.ErrValidationNoText:         http.StatusBadRequest,
	service.ErrValidationNoTranslation:  http.StatusBadRequest,
	service.ErrValidationUnknownKind:    http.StatusBadRequest,
	service.ErrValidationNoLanguage:     http.StatusBadRequest,
	service.ErrValidationNoWordText:     http.StatusBadRequest,
	service.ErrValidationNoLanguageName: http.StatusBadRequest,
	service.ErrValidationUnknownIcon:    http.StatusBadRequest,
	service.ErrValidationUnknownSort:    http.StatusBadRequest,
	service.ErrValidationUnknownTheme:   http.StatusBadRequest,
	service.ErrUnknownGame:              http.StatusBadRequest,

	store.ErrLoginAlreadyExists:  http.StatusConflict,
	store.ErrEntryExists:         http.StatusConflict,
	store.ErrLanguageExists:      http.StatusConflict,
	store.ErrTagMetadataExists:   http.StatusConflict,
	store.ErrNoUserWasFound:      http.StatusNotFound,
	store.ErrEntryNotFound:       http.StatusNotFound,
	store.ErrLanguageNotFound:    http.StatusNotFound,
	store.ErrTagMetadataNotFound: http.StatusNotFound,
	store.ErrLanguageInUse:       http.StatusBadRequest,

	// A delete that removed nothing is a reportable server-side failure,
	// not an idempotent success.
	store.ErrNothingDeleted: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,

	enrich.ErrWordNotRecognized: http.StatusUnprocessableEntity,
	enrich.ErrGeneration:        http.StatusBadGateway,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err to an HTTP status and writes the uniform JSON error
// body. Internal failures get a generic message so database details never
// reach the client.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	resp := models.ErrorResponse{Error: err.Error()}
	if status == http.StatusInternalServerError {
		resp.Error = http.StatusText(http.StatusInternalServerError)
	}
	if errors.Is(err, enrich.ErrWordNotRecognized) {
		resp.Code = codeWordNotRecognized
	}

	utils.WriteJSON(w, resp, status)
}
