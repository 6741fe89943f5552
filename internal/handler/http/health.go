package http

import (
	"net/http"

	"github.com/MKhiriev/trademark-relay/internal/utils"
	"github.com/MKhiriev/trademark-relay/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{Status: "ok"}, http.StatusOK)
}
