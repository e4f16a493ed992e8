package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/game-stats/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON marshals data and writes it with the given status. A marshaling
// failure is answered with 500.
func writeJSON(w http.ResponseWriter, r *http.Request, data any, statusCode int) {
	body, err := json.Marshal(data)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing data to JSON")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err = w.Write(body); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// writeError answers with the status mapped from err. Server-side failures
// are logged and reported without details.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Int("status", status).Msg("request failed")
		message = http.StatusText(status)
	}

	writeJSON(w, r, errorResponse{Error: message}, status)
}
