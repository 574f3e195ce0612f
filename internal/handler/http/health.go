package http

import (
	"net/http"

	"github.com/avkarpov/itemvault/internal/utils"
	"github.com/avkarpov/itemvault/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{
		Status:  "ok",
		Version: h.services.AppInfoService.GetAppVersion(r.Context()),
	}, http.StatusOK)
}
