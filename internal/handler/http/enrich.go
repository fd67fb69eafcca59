package http

import (
	"encoding/json"
	"net/http"

	"github.com/asalimova/word-inventory/internal/logger"
	"github.com/asalimova/word-inventory/internal/utils"
	"github.com/asalimova/word-inventory/models"
)

func (h *Handler) enrichWord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.EnrichRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	// The authenticated user always wins over the body's optional userId.
	req.UserID = userID

	resp, err := h.services.EntryService.Enrich(r.Context(), userID, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.enrichWord").Msg("error enriching word")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
