package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/cuongbtq/jobboard/internal/api/dto"
	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 2 * time.Second

// Health handles GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	database := "connected"
	if h.db == nil {
		database = "unconfigured"
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
		defer cancel()

		if err := h.db.HealthCheck(ctx); err != nil {
			h.logger.Warn("Database health check failed", slog.Any("error", err))
			database = "unavailable"
		}
	}

	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "OK",
		Message:   "Job board API is running",
		Database:  database,
		Timestamp: time.Now().UTC(),
	})
}

// Test handles GET /test
// Reports whether required settings are present, never their values
func (h *SystemHandler) Test(c *gin.Context) {
	resp := dto.TestResponse{
		Status:    "OK",
		Message:   "API is working",
		Database:  "Not Set",
		JWTSecret: "Not Set",
		Timestamp: time.Now().UTC(),
	}

	if h.config != nil {
		if h.config.Database.Host != "" && h.config.Database.Database != "" {
			resp.Database = "Set"
		}
		if h.config.Auth.JWTSecret != "" {
			resp.JWTSecret = "Set"
		}
		resp.Environment = h.config.App.Environment
	}

	c.JSON(http.StatusOK, resp)
}
