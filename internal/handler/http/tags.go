package http

import (
	"encoding/json"
	"net/http"

	"github.com/asalimova/word-inventory/internal/logger"
	"github.com/asalimova/word-inventory/internal/utils"
	"github.com/asalimova/word-inventory/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listTagMetadata(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	tags, err := h.services.TagMetadataService.ListTagMetadata(r.Context(), userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listTagMetadata").Msg("error listing tag metadata")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, tags, http.StatusOK)
}

func (h *Handler) createTagMetadata(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var meta models.TagMetadata
	if err := json.NewDecoder(r.Body).Decode(&meta); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	meta.UserID = userID

	created, err := h.services.TagMetadataService.CreateTagMetadata(r.Context(), meta)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createTagMetadata").Msg("error creating tag metadata")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// getTagDecoration resolves the icon and color for one tag name; a tag
// without stored metadata falls back to defaults instead of a 404.
func (h *Handler) getTagDecoration(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	meta, err := h.services.TagMetadataService.GetTagDecoration(r.Context(), userID, chi.URLParam(r, "name"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.getTagDecoration").Msg("error resolving tag decoration")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, meta, http.StatusOK)
}

func (h *Handler) updateTagMetadata(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	id, err := idFromURL(r)
	if err != nil {
		http.Error(w, "invalid tag id", http.StatusBadRequest)
		return
	}

	var meta models.TagMetadata
	if err := json.NewDecoder(r.Body).Decode(&meta); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	meta.ID = id
	meta.UserID = userID

	if err := h.services.TagMetadataService.UpdateTagMetadata(r.Context(), meta); err != nil {
		log.Err(err).Str("func", "*Handler.updateTagMetadata").Msg("error updating tag metadata")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) deleteTagMetadata(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	id, err := idFromURL(r)
	if err != nil {
		http.Error(w, "invalid tag id", http.StatusBadRequest)
		return
	}

	if err := h.services.TagMetadataService.DeleteTagMetadata(r.Context(), id, userID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteTagMetadata").Msg("error deleting tag metadata")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
