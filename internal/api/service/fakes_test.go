package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cuongbtq/jobboard/internal/api/auth"
	"github.com/cuongbtq/jobboard/internal/api/domain"
	"github.com/cuongbtq/jobboard/shared/logger"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// memStore is an in-memory directory, catalog and ledger with the same
// uniqueness rules as the PostgreSQL schema.
type memStore struct {
	mu       sync.Mutex
	accounts map[string]domain.Account
	jobs     map[string]domain.Job
	apps     map[string]domain.Application
	events   []domain.ActivityEvent
	// skipPrecheck makes HasApplied always report false
	skipPrecheck bool
}

func newMemStore() *memStore {
	return &memStore{
		accounts: map[string]domain.Account{},
		jobs:     map[string]domain.Job{},
		apps:     map[string]domain.Application{},
	}
}

func (m *memStore) CreateAccount(_ context.Context, account *domain.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.accounts {
		if a.Email == account.Email {
			return domain.ErrEmailTaken
		}
	}
	m.accounts[account.ID] = *account
	return nil
}

func (m *memStore) GetAccountByID(_ context.Context, id string) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return &a, nil
}

func (m *memStore) GetAccountByEmail(_ context.Context, email string) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.accounts {
		if a.Email == email {
			return &a, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (m *memStore) CreateJob(_ context.Context, job *domain.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs[job.ID] = *job
	return nil
}

func (m *memStore) GetJobByID(_ context.Context, id string) (*domain.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	return &j, nil
}

func (m *memStore) ListJobs(_ context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	contains := func(s, sub string) bool {
		return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
	}

	var out []domain.Job
	for _, j := range m.jobs {
		if filter.Search != "" && !contains(j.Title, filter.Search) &&
			!contains(j.Company, filter.Search) && !contains(j.Description, filter.Search) {
			continue
		}
		if filter.Type != "" && j.Type != filter.Type {
			continue
		}
		if filter.Location != "" && !contains(j.Location, filter.Location) {
			continue
		}
		out = append(out, j)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].CreatedAt.After(out[b].CreatedAt) })
	return out, nil
}

func (m *memStore) CreateApplication(_ context.Context, app *domain.Application) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.apps {
		if a.JobID == app.JobID && a.ApplicantID == app.ApplicantID {
			return domain.ErrAlreadyApplied
		}
	}
	m.apps[app.ID] = *app
	return nil
}

func (m *memStore) HasApplied(_ context.Context, jobID, applicantID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.skipPrecheck {
		return false, nil
	}
	for _, a := range m.apps {
		if a.JobID == jobID && a.ApplicantID == applicantID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) annotate(app domain.Application) domain.Application {
	job := m.jobs[app.JobID]
	applicant := m.accounts[app.ApplicantID]
	profile := applicant.Profile
	app.Job = &domain.JobSummary{ID: job.ID, Title: job.Title, Company: job.Company, Location: job.Location, EmployerID: job.EmployerID}
	app.Applicant = &domain.Contact{ID: applicant.ID, Name: applicant.Name, Email: applicant.Email, Profile: &profile}
	return app
}

func (m *memStore) GetApplication(_ context.Context, id string) (*domain.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	app, ok := m.apps[id]
	if !ok {
		return nil, domain.NotFound("Application not found")
	}
	annotated := m.annotate(app)
	return &annotated, nil
}

func (m *memStore) list(keep func(domain.Application) bool) []domain.Application {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Application
	for _, a := range m.apps {
		if keep(a) {
			out = append(out, m.annotate(a))
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].CreatedAt.Before(out[b].CreatedAt) })
	return out
}

func (m *memStore) ListByEmployer(_ context.Context, employerID string) ([]domain.Application, error) {
	return m.list(func(a domain.Application) bool { return m.jobs[a.JobID].EmployerID == employerID }), nil
}

func (m *memStore) ListByApplicant(_ context.Context, applicantID string) ([]domain.Application, error) {
	return m.list(func(a domain.Application) bool { return a.ApplicantID == applicantID }), nil
}

func (m *memStore) ListByJob(_ context.Context, jobID string) ([]domain.Application, error) {
	return m.list(func(a domain.Application) bool { return a.JobID == jobID }), nil
}

func (m *memStore) ListAllApplications(_ context.Context) ([]domain.Application, error) {
	return m.list(func(domain.Application) bool { return true }), nil
}

func (m *memStore) ListActivity(_ context.Context, limit int) ([]domain.ActivityEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if limit > len(m.events) {
		limit = len(m.events)
	}
	return m.events[:limit], nil
}

func (m *memStore) Stats(_ context.Context) (*domain.Stats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stats := &domain.Stats{
		AccountsByRole:       map[domain.Role]int64{},
		Jobs:                 int64(len(m.jobs)),
		ApplicationsByStatus: map[domain.ApplicationStatus]int64{},
	}
	for _, a := range m.accounts {
		stats.AccountsByRole[a.Role]++
	}
	for _, a := range m.apps {
		stats.ApplicationsByStatus[a.Status]++
	}
	return stats, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.ActivityEvent
}

func (p *recordingPublisher) Publish(_ context.Context, event domain.ActivityEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

const testSecret = "service-test-secret-0123456789"

type fixture struct {
	store        *memStore
	events       *recordingPublisher
	tokens       *auth.TokenIssuer
	auth         *AuthService
	jobs         *JobService
	applications *ApplicationService
	admin        *AdminService
}

func newFixture() *fixture {
	store := newMemStore()
	events := &recordingPublisher{}
	tokens := auth.NewTokenIssuer(testSecret, time.Hour)
	log := logger.NewNop().Logger

	f := &fixture{
		store:        store,
		events:       events,
		tokens:       tokens,
		auth:         NewAuthService(store, auth.NewPasswordHasher(bcrypt.MinCost), tokens, events, log),
		jobs:         NewJobService(store, store, events, log),
		applications: NewApplicationService(store, store, events, log),
		admin:        NewAdminService(store),
	}

	// strictly increasing clock so ordering assertions are deterministic
	var mu sync.Mutex
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		clock = clock.Add(time.Second)
		return clock
	}
	f.auth.now = now
	f.jobs.now = now
	f.applications.now = now
	return f
}

// seedAccount inserts an account directly, bypassing registration rules
func (f *fixture) seedAccount(name string, role domain.Role) *domain.Account {
	account := &domain.Account{
		ID:    uuid.NewString(),
		Name:  name,
		Email: strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@test.com",
		Role:  role,
	}
	f.store.accounts[account.ID] = *account
	return account
}

func (f *fixture) seedJob(owner *domain.Account, title string) *domain.Job {
	job, err := f.jobs.Create(context.Background(), owner, CreateJobInput{
		Title:       title,
		Description: title + " description",
		Company:     "Acme",
		Location:    "Remote",
	})
	if err != nil {
		panic(err)
	}
	return job
}
