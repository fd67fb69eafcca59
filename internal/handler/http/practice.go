package http

import (
	"net/http"
	"strconv"

	"github.com/asalimova/word-inventory/internal/logger"
	"github.com/asalimova/word-inventory/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getPracticeDeck(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	game := chi.URLParam(r, "game")

	// A missing or malformed size falls back to the service default.
	size, _ := strconv.Atoi(r.URL.Query().Get("size"))

	deck, err := h.services.PracticeService.BuildDeck(r.Context(), userID, game, size)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getPracticeDeck").Msg("error building practice deck")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, deck, http.StatusOK)
}
