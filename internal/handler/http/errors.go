package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/clawdock/clawdock/internal/service"
)

// errorResponse is the JSON error envelope of the admin API.
type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Err(err).Msg("error encoding response body")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, errorResponse{Error: message})
}

// mapServiceError maps service-layer errors to HTTP responses.
func mapServiceError(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrEmptyUser):
		return http.StatusBadRequest, "user is required"
	case errors.Is(err, service.ErrEmptyActivityType):
		return http.StatusBadRequest, "activity type is required"
	default:
		return http.StatusInternalServerError, "error recording activity"
	}
}
