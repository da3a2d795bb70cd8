package api

import (
	"errors"
	"net/http"

	"pcstore-be/internal/ai"
	"pcstore-be/internal/logger"
	"pcstore-be/internal/transport"

	"go.uber.org/zap"
)

func (h *Handler) GenerateDescription(w http.ResponseWriter, r *http.Request) {
	var req ai.DescriptionRequest
	if !decode(w, r, &req) {
		return
	}

	text, err := h.AI.GenerateDescription(r.Context(), req.DeviceType, req.Issue)
	if err != nil {
		if errors.Is(err, ai.ErrNotConfigured) || errors.Is(err, ai.ErrInvalidInput) {
			respondError(w, r, err)
			return
		}
		logger.FromCtx(r.Context()).Error("description generation failed", zap.Error(err))
		transport.WriteError(w, http.StatusBadGateway, "Failed to generate description", err)
		return
	}

	transport.WriteJSON(w, http.StatusOK, map[string]string{"description": text})
}
