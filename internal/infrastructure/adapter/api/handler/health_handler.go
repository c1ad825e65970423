package handler

import (
	"context"
	"net/http"

	"github.com/fintrackhq/fintrack-api/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// Pinger verifies connectivity to the backing store
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the database round-trip health probe
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check handles the GET /api/v1/health endpoint
func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, dto.HealthResponse{
			OK:    false,
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.HealthResponse{OK: true})
}
