package handler

import (
	"net/http"

	"github.com/cuongbtq/jobboard/internal/api/domain"
	"github.com/cuongbtq/jobboard/internal/api/dto"
	"github.com/gin-gonic/gin"
)

// Stats handles GET /admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.admin.Stats(c.Request.Context(), Caller(c))
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.StatsResponse{Success: true, Stats: stats})
}

// Activity handles GET /admin/activity?limit=
func (h *AdminHandler) Activity(c *gin.Context) {
	var query dto.ActivityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		RespondError(c, h.logger, domain.BadRequest("Invalid limit", "limit"))
		return
	}

	events, err := h.admin.Activity(c.Request.Context(), Caller(c), query.Limit)
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ActivityResponse{Success: true, Events: dto.NonEmpty(events)})
}
