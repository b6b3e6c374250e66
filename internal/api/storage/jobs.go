package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cuongbtq/jobboard/internal/api/domain"
	"github.com/lib/pq"
)

type jobRow struct {
	ID            string         `db:"id"`
	Title         string         `db:"title"`
	Description   string         `db:"description"`
	Company       string         `db:"company"`
	Location      string         `db:"location"`
	Salary        string         `db:"salary"`
	Type          string         `db:"type"`
	Requirements  pq.StringArray `db:"requirements"`
	EmployerID    string         `db:"employer_id"`
	EmployerName  string         `db:"employer_name"`
	EmployerEmail string         `db:"employer_email"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

func (r *jobRow) toDomain() domain.Job {
	return domain.Job{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		Company:      r.Company,
		Location:     r.Location,
		Salary:       r.Salary,
		Type:         domain.JobType(r.Type),
		Requirements: nonNil(r.Requirements),
		EmployerID:   r.EmployerID,
		Employer: &domain.Contact{
			ID:    r.EmployerID,
			Name:  r.EmployerName,
			Email: r.EmployerEmail,
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

const jobSelect = `
	SELECT
		j.id, j.title, j.description, j.company, j.location, j.salary,
		j.type, j.requirements, j.employer_id, j.created_at, j.updated_at,
		a.name AS employer_name, a.email AS employer_email
	FROM jobs j
	JOIN accounts a ON a.id = j.employer_id
`

// CreateJob inserts a posting; the owner must already exist
func (s *Storage) CreateJob(ctx context.Context, job *domain.Job) error {
	query := `
		INSERT INTO jobs (
			id, title, description, company, location, salary,
			type, requirements, employer_id, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11
		)
	`

	_, err := s.db.ExecContext(ctx, query,
		job.ID,
		job.Title,
		job.Description,
		job.Company,
		job.Location,
		job.Salary,
		string(job.Type),
		pq.StringArray(nonNil(job.Requirements)),
		job.EmployerID,
		job.CreatedAt,
		job.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

// GetJobByID returns domain.ErrJobNotFound when no row matches
func (s *Storage) GetJobByID(ctx context.Context, id string) (*domain.Job, error) {
	var row jobRow
	err := s.db.GetContext(ctx, &row, jobSelect+` WHERE j.id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	job := row.toDomain()
	return &job, nil
}

// ListJobs returns every posting matching filter, newest first
func (s *Storage) ListJobs(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	query := jobSelect + ` WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if filter.Search != "" {
		query += fmt.Sprintf(" AND (j.title ILIKE $%d OR j.company ILIKE $%d OR j.description ILIKE $%d)", argIdx, argIdx, argIdx)
		args = append(args, containsPattern(filter.Search))
		argIdx++
	}

	if filter.Type != "" {
		query += fmt.Sprintf(" AND j.type = $%d", argIdx)
		args = append(args, string(filter.Type))
		argIdx++
	}

	if filter.Location != "" {
		query += fmt.Sprintf(" AND j.location ILIKE $%d", argIdx)
		args = append(args, containsPattern(filter.Location))
	}

	query += " ORDER BY j.created_at DESC, j.id DESC"

	var rows []jobRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	jobs := make([]domain.Job, len(rows))
	for i := range rows {
		jobs[i] = rows[i].toDomain()
	}
	return jobs, nil
}
