package handlers

import (
	"net/http"

	"phrase-svc/app/dto"
	"phrase-svc/app/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	phraseService *services.PhraseService
	logger        *zap.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(phraseService *services.PhraseService, logger *zap.Logger) *HealthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HealthHandler{phraseService: phraseService, logger: logger}
}

// Health handles health check
func (h *HealthHandler) Health(c *gin.Context) {
	respondJSON(c, http.StatusOK, dto.StatusResponse{Status: "healthy"})
}

// Ready reports whether the phrase store can be read
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.phraseService.Ready(c.Request.Context()); err != nil {
		h.logger.Warn("readiness check failed", zap.Error(err))
		respondJSON(c, http.StatusServiceUnavailable, dto.StatusResponse{Status: "unavailable"})
		return
	}
	respondJSON(c, http.StatusOK, dto.StatusResponse{Status: "ready"})
}
