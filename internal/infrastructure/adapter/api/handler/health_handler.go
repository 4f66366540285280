package handler

import (
	"net/http"

	coreport "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/port/core"
	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/infrastructure/adapter/api/dto"
	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/infrastructure/adapter/database"
	"github.com/gin-gonic/gin"
)

// HealthHandler reports service and database health
type HealthHandler struct {
	dbManager *database.Manager
	logger    coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(dbManager *database.Manager, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{
		dbManager: dbManager,
		logger:    logger,
	}
}

// Health handles the GET /health endpoint
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.dbManager.Ping(c.Request.Context()); err != nil {
		h.logger.Error("Health check failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusServiceUnavailable, dto.ApiResponse{
			Success: false,
			Error: &dto.ApiError{
				Code:    "DATABASE_UNAVAILABLE",
				Message: "Database is not reachable",
			},
		})
		return
	}

	pool := h.dbManager.PoolMetrics()
	c.JSON(http.StatusOK, dto.SuccessResponse(map[string]any{
		"status": "healthy",
		"database": map[string]any{
			"open_connections": pool.OpenConnections,
			"in_use":           pool.InUse,
			"idle":             pool.IdleConnections,
		},
	}, ""))
}
