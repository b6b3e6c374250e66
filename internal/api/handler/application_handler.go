package handler

import (
	"net/http"

	"github.com/cuongbtq/jobboard/internal/api/dto"
	"github.com/cuongbtq/jobboard/internal/api/service"
	"github.com/gin-gonic/gin"
)

// CreateApplication handles POST /applications
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	var req service.ApplyInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, h.logger, err)
		return
	}

	app, err := h.applications.Apply(c.Request.Context(), Caller(c), req)
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ApplicationResponse{Success: true, Application: app})
}

// ListApplications handles GET /applications
// Employers see applications to their jobs, job seekers their own
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	apps, err := h.applications.List(c.Request.Context(), Caller(c))
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ApplicationsResponse{Success: true, Applications: dto.NonEmpty(apps)})
}

// GetApplication handles GET /applications/:id
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	app, err := h.applications.Get(c.Request.Context(), Caller(c), c.Param("id"))
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ApplicationResponse{Success: true, Application: app})
}
