// Package seed loads demo accounts, jobs and applications. Running it twice
// leaves the database unchanged: accounts are matched by email, jobs by
// employer and title, and applications by the (job, applicant) constraint.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cuongbtq/jobboard/internal/api/domain"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Store is the subset of the API storage the seeder writes through
type Store interface {
	CreateAccount(ctx context.Context, account *domain.Account) error
	GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error)
	CreateJob(ctx context.Context, job *domain.Job) error
	ListJobs(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error)
	CreateApplication(ctx context.Context, app *domain.Application) error
}

type Hasher interface {
	Hash(password string) (string, error)
}

// Result counts the rows a run inserted
type Result struct {
	Accounts     int
	Jobs         int
	Applications int
}

type Seeder struct {
	store  Store
	hasher Hasher
	logger *slog.Logger
	now    func() time.Time
}

func New(store Store, hasher Hasher, logger *slog.Logger) *Seeder {
	return &Seeder{store: store, hasher: hasher, logger: logger, now: time.Now}
}

// Run inserts whatever demo data is missing
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	result := &Result{}

	byEmail := make(map[string]*domain.Account, len(accounts))
	for _, seed := range accounts {
		account, created, err := s.ensureAccount(ctx, seed)
		if err != nil {
			return nil, err
		}
		byEmail[seed.email] = account
		if created {
			result.Accounts++
		}
	}

	byTitle := make(map[string]*domain.Job, len(jobs))
	for _, seed := range jobs {
		employer, ok := byEmail[seed.employerEmail]
		if !ok {
			return nil, fmt.Errorf("job %q references unknown employer %s", seed.title, seed.employerEmail)
		}
		job, created, err := s.ensureJob(ctx, seed, employer)
		if err != nil {
			return nil, err
		}
		byTitle[seed.title] = job
		if created {
			result.Jobs++
		}
	}

	for _, seed := range applications {
		job, ok := byTitle[seed.jobTitle]
		if !ok {
			return nil, fmt.Errorf("application references unknown job %q", seed.jobTitle)
		}
		applicant, ok := byEmail[seed.applicantEmail]
		if !ok {
			return nil, fmt.Errorf("application references unknown applicant %s", seed.applicantEmail)
		}
		created, err := s.ensureApplication(ctx, seed, job, applicant)
		if err != nil {
			return nil, err
		}
		if created {
			result.Applications++
		}
	}

	s.logger.Info("Seed completed",
		slog.Int("accounts_created", result.Accounts),
		slog.Int("jobs_created", result.Jobs),
		slog.Int("applications_created", result.Applications),
	)
	return result, nil
}

func (s *Seeder) ensureAccount(ctx context.Context, seed accountSeed) (*domain.Account, bool, error) {
	existing, err := s.store.GetAccountByEmail(ctx, seed.email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to look up %s: %w", seed.email, err)
	}

	hash, err := s.hasher.Hash(seed.password)
	if err != nil {
		return nil, false, err
	}

	now := s.now()
	profile := seed.profile
	profile.Skills = lo.Ternary(profile.Skills == nil, []string{}, profile.Skills)

	account := &domain.Account{
		ID:           uuid.NewString(),
		Name:         seed.name,
		Email:        seed.email,
		PasswordHash: hash,
		Role:         seed.role,
		Profile:      profile,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.store.CreateAccount(ctx, account); err != nil {
		return nil, false, fmt.Errorf("failed to create %s: %w", seed.email, err)
	}

	s.logger.Debug("Seeded account", slog.String("email", seed.email), slog.String("role", string(seed.role)))
	return account, true, nil
}

func (s *Seeder) ensureJob(ctx context.Context, seed jobSeed, employer *domain.Account) (*domain.Job, bool, error) {
	candidates, err := s.store.ListJobs(ctx, domain.JobFilter{Search: seed.title})
	if err != nil {
		return nil, false, err
	}
	existing, found := lo.Find(candidates, func(j domain.Job) bool {
		return j.EmployerID == employer.ID && j.Title == seed.title
	})
	if found {
		return &existing, false, nil
	}

	now := s.now()
	job := &domain.Job{
		ID:           uuid.NewString(),
		Title:        seed.title,
		Description:  seed.description,
		Company:      seed.company,
		Location:     seed.location,
		Salary:       seed.salary,
		Type:         seed.jobType,
		Requirements: seed.requirements,
		EmployerID:   employer.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.store.CreateJob(ctx, job); err != nil {
		return nil, false, fmt.Errorf("failed to create job %q: %w", seed.title, err)
	}

	s.logger.Debug("Seeded job", slog.String("title", seed.title), slog.String("company", seed.company))
	return job, true, nil
}

func (s *Seeder) ensureApplication(ctx context.Context, seed applicationSeed, job *domain.Job, applicant *domain.Account) (bool, error) {
	now := s.now()
	app := &domain.Application{
		ID:          uuid.NewString(),
		JobID:       job.ID,
		ApplicantID: applicant.ID,
		Status:      seed.status,
		CoverLetter: seed.coverLetter,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.store.CreateApplication(ctx, app)
	if errors.Is(err, domain.ErrAlreadyApplied) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to create application for %q: %w", seed.jobTitle, err)
	}
	return true, nil
}
