package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"gemino/internal/models"
	"gemino/internal/services"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(message string) models.ErrorResponse {
	return models.ErrorResponse{Error: message}
}

// handleServiceError maps service failures onto status codes. Only the safe message of
// an UpstreamError is written; the cause has already been logged by the service.
func handleServiceError(w http.ResponseWriter, logger *zap.Logger, err error) {
	switch e := err.(type) {
	case *services.InvalidRequestError:
		writeJSON(w, http.StatusBadRequest, errorResp(e.Message))
	case *services.UpstreamError:
		writeJSON(w, http.StatusInternalServerError, errorResp(e.Message))
	default:
		logger.Error("unhandled service error", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResp("Internal server error"))
	}
}
