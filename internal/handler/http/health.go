package http

import (
	"net/http"

	"github.com/MKhiriev/game-stats/internal/logger"
)

const (
	statusOK          = "ok"
	statusUnavailable = "unavailable"
)

type healthResponse struct {
	Status string `json:"status"`
}

// health serves GET /api/health. It answers 503 when the source database
// cannot be reached.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.services.StatisticsService.Health(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Msg("health check failed")
		writeJSON(w, r, healthResponse{Status: statusUnavailable}, http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, r, healthResponse{Status: statusOK}, http.StatusOK)
}
