package http

import (
	"encoding/json"
	"net/http"

	"github.com/asalimova/word-inventory/internal/logger"
	"github.com/asalimova/word-inventory/internal/utils"
	"github.com/asalimova/word-inventory/models"
)

func (h *Handler) listLanguages(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	languages, err := h.services.LanguageService.ListLanguages(r.Context(), userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listLanguages").Msg("error listing languages")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, languages, http.StatusOK)
}

func (h *Handler) createLanguage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var language models.Language
	if err := json.NewDecoder(r.Body).Decode(&language); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	language.UserID = userID

	created, err := h.services.LanguageService.CreateLanguage(r.Context(), language)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createLanguage").Msg("error creating language")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateLanguage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	id, err := idFromURL(r)
	if err != nil {
		http.Error(w, "invalid language id", http.StatusBadRequest)
		return
	}

	var language models.Language
	if err := json.NewDecoder(r.Body).Decode(&language); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	language.ID = id
	language.UserID = userID

	if err := h.services.LanguageService.UpdateLanguage(r.Context(), language); err != nil {
		log.Err(err).Str("func", "*Handler.updateLanguage").Msg("error updating language")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) deleteLanguage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	id, err := idFromURL(r)
	if err != nil {
		http.Error(w, "invalid language id", http.StatusBadRequest)
		return
	}

	if err := h.services.LanguageService.DeleteLanguage(r.Context(), id, userID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteLanguage").Msg("error deleting language")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
