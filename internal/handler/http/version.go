package http

import (
	"net/http"

	"github.com/asalimova/word-inventory/internal/utils"
	"github.com/asalimova/word-inventory/models"
)

func (h *Handler) getVersion(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.VersionResponse{Version: h.version}, http.StatusOK)
}
