package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cuongbtq/jobboard/internal/api/domain"
	"github.com/cuongbtq/jobboard/shared/postgresql"
	"github.com/lib/pq"
)

type applicationRow struct {
	ID          string    `db:"id"`
	JobID       string    `db:"job_id"`
	ApplicantID string    `db:"applicant_id"`
	Status      string    `db:"status"`
	CoverLetter string    `db:"cover_letter"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`

	JobTitle      string `db:"job_title"`
	JobCompany    string `db:"job_company"`
	JobLocation   string `db:"job_location"`
	JobEmployerID string `db:"job_employer_id"`

	ApplicantName       string         `db:"applicant_name"`
	ApplicantEmail      string         `db:"applicant_email"`
	ApplicantPhone      string         `db:"applicant_phone"`
	ApplicantAddress    string         `db:"applicant_address"`
	ApplicantSkills     pq.StringArray `db:"applicant_skills"`
	ApplicantExperience string         `db:"applicant_experience"`
	ApplicantResume     string         `db:"applicant_resume"`
}

func (r *applicationRow) toDomain() domain.Application {
	return domain.Application{
		ID:          r.ID,
		JobID:       r.JobID,
		ApplicantID: r.ApplicantID,
		Status:      domain.ApplicationStatus(r.Status),
		CoverLetter: r.CoverLetter,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (r *applicationRow) toAnnotated() domain.Application {
	app := r.toDomain()
	app.Job = &domain.JobSummary{
		ID:         r.JobID,
		Title:      r.JobTitle,
		Company:    r.JobCompany,
		Location:   r.JobLocation,
		EmployerID: r.JobEmployerID,
	}
	app.Applicant = &domain.Contact{
		ID:    r.ApplicantID,
		Name:  r.ApplicantName,
		Email: r.ApplicantEmail,
		Profile: &domain.Profile{
			Phone:      r.ApplicantPhone,
			Address:    r.ApplicantAddress,
			Skills:     nonNil(r.ApplicantSkills),
			Experience: r.ApplicantExperience,
			Resume:     r.ApplicantResume,
		},
	}
	return app
}

const ledgerSelect = `
	SELECT
		ap.id, ap.job_id, ap.applicant_id, ap.status, ap.cover_letter, ap.created_at, ap.updated_at,
		j.title AS job_title, j.company AS job_company, j.location AS job_location,
		j.employer_id AS job_employer_id,
		u.name AS applicant_name, u.email AS applicant_email, u.phone AS applicant_phone,
		u.address AS applicant_address, u.skills AS applicant_skills,
		u.experience AS applicant_experience, u.resume AS applicant_resume
	FROM applications ap
	JOIN jobs j ON j.id = ap.job_id
	JOIN accounts u ON u.id = ap.applicant_id
`

// CreateApplication inserts a single ledger row. The (job, applicant)
// unique constraint turns a lost race into domain.ErrAlreadyApplied.
func (s *Storage) CreateApplication(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (
			id, job_id, applicant_id, status, cover_letter, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
	`

	_, err := s.db.ExecContext(ctx, query,
		app.ID,
		app.JobID,
		app.ApplicantID,
		string(app.Status),
		app.CoverLetter,
		app.CreatedAt,
		app.UpdatedAt,
	)
	if postgresql.IsUniqueViolation(err, constraintApplicationPerUser) {
		return domain.ErrAlreadyApplied
	}
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

// HasApplied reports whether applicantID already applied to jobID
func (s *Storage) HasApplied(ctx context.Context, jobID, applicantID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM applications WHERE job_id = $1 AND applicant_id = $2)`
	if err := s.db.GetContext(ctx, &exists, query, jobID, applicantID); err != nil {
		return false, fmt.Errorf("failed to check application: %w", err)
	}
	return exists, nil
}

// GetApplication returns a single application with its job and applicant attached
func (s *Storage) GetApplication(ctx context.Context, id string) (*domain.Application, error) {
	var row applicationRow
	err := s.db.GetContext(ctx, &row, ledgerSelect+` WHERE ap.id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("Application not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get application: %w", err)
	}

	app := row.toAnnotated()
	return &app, nil
}

// ListByEmployer returns applications to jobs owned by employerID, newest first
func (s *Storage) ListByEmployer(ctx context.Context, employerID string) ([]domain.Application, error) {
	return s.listLedger(ctx, ` WHERE j.employer_id = $1 ORDER BY ap.created_at DESC, ap.id DESC`, employerID)
}

// ListByApplicant returns applicantID's own applications, newest first
func (s *Storage) ListByApplicant(ctx context.Context, applicantID string) ([]domain.Application, error) {
	return s.listLedger(ctx, ` WHERE ap.applicant_id = $1 ORDER BY ap.created_at DESC, ap.id DESC`, applicantID)
}

// ListByJob is the derived application list of a job, in submission order
func (s *Storage) ListByJob(ctx context.Context, jobID string) ([]domain.Application, error) {
	return s.listLedger(ctx, ` WHERE ap.job_id = $1 ORDER BY ap.created_at ASC, ap.id ASC`, jobID)
}

// ListAllApplications returns the whole ledger, newest first
func (s *Storage) ListAllApplications(ctx context.Context) ([]domain.Application, error) {
	return s.listLedger(ctx, ` ORDER BY ap.created_at DESC, ap.id DESC`)
}

func (s *Storage) listLedger(ctx context.Context, clause string, args ...interface{}) ([]domain.Application, error) {
	var rows []applicationRow
	if err := s.db.SelectContext(ctx, &rows, ledgerSelect+clause, args...); err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	apps := make([]domain.Application, len(rows))
	for i := range rows {
		apps[i] = rows[i].toAnnotated()
	}
	return apps, nil
}
