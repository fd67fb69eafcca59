package http

import (
	"encoding/json"
	"net/http"

	"github.com/asalimova/word-inventory/internal/logger"
	"github.com/asalimova/word-inventory/internal/utils"
	"github.com/asalimova/word-inventory/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	profile, err := h.services.ProfileService.GetProfile(r.Context(), userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getProfile").Msg("error getting profile")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var profile models.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	profile.UserID = userID

	if err := h.services.ProfileService.UpdateProfile(r.Context(), profile); err != nil {
		log.Err(err).Str("func", "*Handler.updateProfile").Msg("error updating profile")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
