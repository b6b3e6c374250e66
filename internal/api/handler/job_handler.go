package handler

import (
	"log/slog"
	"net/http"

	"github.com/cuongbtq/jobboard/internal/api/dto"
	"github.com/cuongbtq/jobboard/internal/api/service"
	"github.com/gin-gonic/gin"
)

// ListJobs handles GET /jobs
// Filters by search (title, company, description), type and location
func (h *JobHandler) ListJobs(c *gin.Context) {
	var query dto.ListJobsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondInvalidBody(c, h.logger, err)
		return
	}

	jobs, err := h.jobs.List(c.Request.Context(), query.ToFilter())
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}

	h.logger.Debug("Jobs listed",
		slog.String("query", c.Request.URL.RawQuery),
		slog.Int("count", len(jobs)),
	)

	c.JSON(http.StatusOK, dto.JobsResponse{Success: true, Jobs: dto.NonEmpty(jobs)})
}

// CreateJob handles POST /jobs
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req service.CreateJobInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, h.logger, err)
		return
	}

	job, err := h.jobs.Create(c.Request.Context(), Caller(c), req)
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.JobResponse{Success: true, Job: job})
}

// GetJob handles GET /jobs/:id
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.jobs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.JobDetailResponse{Success: true, Job: dto.NewJobDetail(job)})
}
