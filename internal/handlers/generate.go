package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"gemino/internal/middleware"
	"gemino/internal/models"
)

type replyGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type GenerateHandler struct {
	generator replyGenerator
	logger    *zap.Logger
}

func NewGenerateHandler(generator replyGenerator, logger *zap.Logger) *GenerateHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GenerateHandler{
		generator: generator,
		logger:    logger,
	}
}

// Generate handles POST /generate. Every call is independent: no history is kept.
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateRequest
	// An empty body is treated like {} so it falls through to the prompt check.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Debug("invalid request body",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err),
		)
		writeJSON(w, http.StatusBadRequest, errorResp("Invalid request body"))
		return
	}

	reply, err := h.generator.Generate(r.Context(), string(req.Prompt))
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, models.GenerateResponse{Reply: reply})
}
