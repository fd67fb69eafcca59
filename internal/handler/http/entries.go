// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alina Salimova

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/asalimova/word-inventory/internal/logger"
	"github.com/asalimova/word-inventory/internal/utils"
	"github.com/asalimova/word-inventory/models"
)

// listEntriesFilter builds an [models.EntryFilter] and sort order from the
// listing query parameters:
//
//	GET /api/entries?kind=word&language_id=3&sort=alpha_asc
//
// Absent parameters keep their zero values; the service applies the owner's
// stored sort preference when sort is empty.
func listEntriesFilter(r *http.Request) (models.EntryFilter, models.SortOrder, error) {
	query := r.URL.Query()

	filter := models.EntryFilter{
		Kind: models.EntryKind(query.Get("kind")),
	}

	if rawLanguageID := query.Get("language_id"); rawLanguageID != "" {
		languageID, err := strconv.ParseInt(rawLanguageID, 10, 64)
		if err != nil {
			return models.EntryFilter{}, "", err
		}
		filter.LanguageID = &languageID
	}

	return filter, models.SortOrder(query.Get("sort")), nil
}

func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	filter, sort, err := listEntriesFilter(r)
	if err != nil {
		http.Error(w, "invalid language_id filter", http.StatusBadRequest)
		return
	}

	entries, err := h.services.EntryService.ListEntries(r.Context(), userID, filter, sort)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listEntries").Msg("error listing entries")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) createEntry(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	resp, err := h.services.EntryService.CreateEntry(r.Context(), userID, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createEntry").Msg("error creating entry")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusCreated)
}

func (h *Handler) getEntry(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	id, err := idFromURL(r)
	if err != nil {
		http.Error(w, "invalid entry id", http.StatusBadRequest)
		return
	}

	entry, err := h.services.EntryService.GetEntry(r.Context(), id, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getEntry").Msg("error getting entry")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, entry, http.StatusOK)
}

func (h *Handler) updateEntry(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	id, err := idFromURL(r)
	if err != nil {
		http.Error(w, "invalid entry id", http.StatusBadRequest)
		return
	}

	var req models.UpdateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.EntryService.UpdateEntry(r.Context(), id, userID, req.EntryFields)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateEntry").Msg("error updating entry")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	id, err := idFromURL(r)
	if err != nil {
		http.Error(w, "invalid entry id", http.StatusBadRequest)
		return
	}

	if err := h.services.EntryService.DeleteEntry(r.Context(), id, userID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteEntry").Msg("error deleting entry")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// randomEntry returns the slug of a random entry, excluding the slug named
// in the "exclude" query parameter so the client never lands on the word it
// is already showing. An empty slug in the response means the owner has no
// other entry to offer.
func (h *Handler) randomEntry(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	slug, err := h.services.EntryService.RandomEntrySlug(r.Context(), userID,
		models.EntryKind(query.Get("kind")), query.Get("exclude"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.randomEntry").Msg("error picking random entry")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.RandomEntryResponse{Slug: slug}, http.StatusOK)
}
