package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/cuongbtq/jobboard/internal/api/domain"
	"github.com/cuongbtq/jobboard/internal/api/policy"
	"github.com/cuongbtq/jobboard/shared/metrics"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// CreateJobInput is the body of POST /jobs
type CreateJobInput struct {
	Title        string         `json:"title" validate:"required"`
	Description  string         `json:"description" validate:"required"`
	Company      string         `json:"company" validate:"required"`
	Location     string         `json:"location" validate:"required"`
	Salary       string         `json:"salary"`
	Type         domain.JobType `json:"type" validate:"omitempty,oneof=full-time part-time contract internship"`
	Requirements []string       `json:"requirements"`
}

var createJobMessages = map[string]string{
	"required":   "Please provide all required fields",
	"type.oneof": "Type must be one of full-time, part-time, contract, internship",
}

type JobService struct {
	jobs         JobStore
	applications ApplicationStore
	events       EventPublisher
	logger       *slog.Logger
	now          func() time.Time
}

func NewJobService(jobs JobStore, applications ApplicationStore, events EventPublisher, logger *slog.Logger) *JobService {
	return &JobService{
		jobs:         jobs,
		applications: applications,
		events:       events,
		logger:       logger,
		now:          time.Now,
	}
}

// List returns the postings matching filter, newest first
func (s *JobService) List(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	filter.Location = strings.TrimSpace(filter.Location)
	return s.jobs.ListJobs(ctx, filter)
}

// Create posts a job owned by caller
func (s *JobService) Create(ctx context.Context, caller *domain.Account, in CreateJobInput) (*domain.Job, error) {
	if err := policy.Authorize(caller, policy.ActionCreateJob, ""); err != nil {
		return nil, err
	}

	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Company = strings.TrimSpace(in.Company)
	in.Location = strings.TrimSpace(in.Location)
	if err := validateInput(in, createJobMessages); err != nil {
		return nil, err
	}

	if in.Type == "" {
		in.Type = domain.JobTypeFullTime
	}

	requirements := lo.Filter(lo.Map(in.Requirements, func(r string, _ int) string {
		return strings.TrimSpace(r)
	}), func(r string, _ int) bool {
		return r != ""
	})

	now := s.now().UTC()
	job := &domain.Job{
		ID:           uuid.NewString(),
		Title:        in.Title,
		Description:  in.Description,
		Company:      in.Company,
		Location:     in.Location,
		Salary:       strings.TrimSpace(in.Salary),
		Type:         in.Type,
		Requirements: requirements,
		EmployerID:   caller.ID,
		Employer:     &domain.Contact{ID: caller.ID, Name: caller.Name, Email: caller.Email},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.jobs.CreateJob(ctx, job); err != nil {
		return nil, err
	}

	metrics.JobsCreated.Inc()
	s.events.Publish(ctx, newEvent(domain.EventJobCreated, caller.ID, job.ID,
		map[string]any{"title": job.Title, "company": job.Company}, now))

	s.logger.Info("Job created",
		slog.String("job_id", job.ID),
		slog.String("employer_id", caller.ID),
	)

	return job, nil
}

// Get returns a posting with its applications, read from the ledger
func (s *JobService) Get(ctx context.Context, id string) (*domain.Job, error) {
	if !isUUID(id) {
		return nil, domain.ErrJobNotFound
	}

	job, err := s.jobs.GetJobByID(ctx, id)
	if err != nil {
		return nil, err
	}

	apps, err := s.applications.ListByJob(ctx, id)
	if err != nil {
		return nil, err
	}

	// lo.Map never returns nil, so a job without applications gets an empty list
	job.Applications = lo.Map(apps, func(app domain.Application, _ int) domain.Application {
		app.Job = nil
		app.Applicant = nil
		return app
	})
	return job, nil
}
