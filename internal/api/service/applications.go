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

// ApplyInput is the body of POST /applications
type ApplyInput struct {
	JobID       string `json:"jobId" validate:"required"`
	CoverLetter string `json:"coverLetter" validate:"required"`
}

var applyMessages = map[string]string{
	"required": "Please provide job ID and cover letter",
}

var errApplicationNotFound = domain.NotFound("Application not found")

type ApplicationService struct {
	jobs         JobStore
	applications ApplicationStore
	events       EventPublisher
	logger       *slog.Logger
	now          func() time.Time
}

func NewApplicationService(jobs JobStore, applications ApplicationStore, events EventPublisher, logger *slog.Logger) *ApplicationService {
	return &ApplicationService{
		jobs:         jobs,
		applications: applications,
		events:       events,
		logger:       logger,
		now:          time.Now,
	}
}

// Apply records caller's application to a job. A second application to the
// same job fails with domain.ErrAlreadyApplied, also when two race.
func (s *ApplicationService) Apply(ctx context.Context, caller *domain.Account, in ApplyInput) (*domain.Application, error) {
	if err := policy.Authorize(caller, policy.ActionApply, ""); err != nil {
		return nil, err
	}

	in.JobID = strings.TrimSpace(in.JobID)
	in.CoverLetter = strings.TrimSpace(in.CoverLetter)
	if err := validateInput(in, applyMessages); err != nil {
		return nil, err
	}

	if !isUUID(in.JobID) {
		return nil, domain.ErrJobNotFound
	}

	job, err := s.jobs.GetJobByID(ctx, in.JobID)
	if err != nil {
		return nil, err
	}

	applied, err := s.applications.HasApplied(ctx, job.ID, caller.ID)
	if err != nil {
		return nil, err
	}
	if applied {
		return nil, domain.ErrAlreadyApplied
	}

	now := s.now().UTC()
	app := &domain.Application{
		ID:          uuid.NewString(),
		JobID:       job.ID,
		ApplicantID: caller.ID,
		Status:      domain.ApplicationPending,
		CoverLetter: in.CoverLetter,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.applications.CreateApplication(ctx, app); err != nil {
		return nil, err
	}

	metrics.ApplicationsSubmitted.Inc()
	s.events.Publish(ctx, newEvent(domain.EventApplicationSubmitted, caller.ID, app.ID,
		map[string]any{"jobId": job.ID, "employerId": job.EmployerID}, now))

	s.logger.Info("Application submitted",
		slog.String("application_id", app.ID),
		slog.String("job_id", job.ID),
		slog.String("applicant_id", caller.ID),
	)

	return app, nil
}

// List returns the applications caller may see: employers get those on
// their own jobs, job seekers their own, admins everything.
func (s *ApplicationService) List(ctx context.Context, caller *domain.Account) ([]domain.Application, error) {
	if err := policy.Authorize(caller, policy.ActionListApplications, ""); err != nil {
		return nil, err
	}

	switch caller.Role {
	case domain.RoleEmployer:
		apps, err := s.applications.ListByEmployer(ctx, caller.ID)
		if err != nil {
			return nil, err
		}
		return lo.Map(apps, forEmployer), nil
	case domain.RoleJobSeeker:
		apps, err := s.applications.ListByApplicant(ctx, caller.ID)
		if err != nil {
			return nil, err
		}
		return lo.Map(apps, forApplicant), nil
	default:
		return s.applications.ListAllApplications(ctx)
	}
}

// Get returns one application to its applicant, the job's employer or an admin
func (s *ApplicationService) Get(ctx context.Context, caller *domain.Account, id string) (*domain.Application, error) {
	if !isUUID(id) {
		return nil, errApplicationNotFound
	}

	app, err := s.applications.GetApplication(ctx, id)
	if err != nil {
		return nil, err
	}

	err = policy.Authorize(caller, policy.ActionViewApplication, app.ApplicantID)
	if err != nil && app.Job != nil {
		if policy.Authorize(caller, policy.ActionViewApplication, app.Job.EmployerID) == nil {
			err = nil
		}
	}
	if err != nil {
		return nil, err
	}
	return app, nil
}

// forEmployer drops the job location; the employer already knows its postings
func forEmployer(app domain.Application, _ int) domain.Application {
	if app.Job != nil {
		job := *app.Job
		job.Location = ""
		app.Job = &job
	}
	return app
}

// forApplicant drops the applicant, who is the caller
func forApplicant(app domain.Application, _ int) domain.Application {
	app.Applicant = nil
	return app
}
