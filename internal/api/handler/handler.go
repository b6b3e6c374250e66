package handler

import (
	"context"
	"log/slog"

	"github.com/cuongbtq/jobboard/internal/api/domain"
	"github.com/cuongbtq/jobboard/internal/api/service"
	"github.com/cuongbtq/jobboard/internal/config"
)

// AuthService is the account side of the API
type AuthService interface {
	Register(ctx context.Context, in service.RegisterInput) (*service.Session, error)
	Login(ctx context.Context, in service.LoginInput) (*service.Session, error)
	Authenticate(ctx context.Context, token string) (*domain.Account, error)
	Me(ctx context.Context, caller *domain.Account) (*domain.Account, error)
}

type JobService interface {
	List(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error)
	Create(ctx context.Context, caller *domain.Account, in service.CreateJobInput) (*domain.Job, error)
	Get(ctx context.Context, id string) (*domain.Job, error)
}

type ApplicationService interface {
	Apply(ctx context.Context, caller *domain.Account, in service.ApplyInput) (*domain.Application, error)
	List(ctx context.Context, caller *domain.Account) ([]domain.Application, error)
	Get(ctx context.Context, caller *domain.Account, id string) (*domain.Application, error)
}

type AdminService interface {
	Stats(ctx context.Context, caller *domain.Account) (*domain.Stats, error)
	Activity(ctx context.Context, caller *domain.Account, limit int) ([]domain.ActivityEvent, error)
}

// HealthChecker pings the database
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Dependencies holds all dependencies needed by handlers
type Dependencies struct {
	Logger       *slog.Logger
	Config       *config.Config
	DB           HealthChecker
	Auth         AuthService
	Jobs         JobService
	Applications ApplicationService
	Admin        AdminService
}

// AuthHandler serves /auth
type AuthHandler struct {
	logger *slog.Logger
	auth   AuthService
}

func NewAuthHandler(deps *Dependencies) *AuthHandler {
	return &AuthHandler{logger: deps.Logger, auth: deps.Auth}
}

// JobHandler serves /jobs
type JobHandler struct {
	logger *slog.Logger
	jobs   JobService
}

func NewJobHandler(deps *Dependencies) *JobHandler {
	return &JobHandler{logger: deps.Logger, jobs: deps.Jobs}
}

// ApplicationHandler serves /applications
type ApplicationHandler struct {
	logger       *slog.Logger
	applications ApplicationService
}

func NewApplicationHandler(deps *Dependencies) *ApplicationHandler {
	return &ApplicationHandler{logger: deps.Logger, applications: deps.Applications}
}

// AdminHandler serves /admin
type AdminHandler struct {
	logger *slog.Logger
	admin  AdminService
}

func NewAdminHandler(deps *Dependencies) *AdminHandler {
	return &AdminHandler{logger: deps.Logger, admin: deps.Admin}
}

// SystemHandler serves the unauthenticated status endpoints
type SystemHandler struct {
	logger *slog.Logger
	config *config.Config
	db     HealthChecker
}

func NewSystemHandler(deps *Dependencies) *SystemHandler {
	return &SystemHandler{logger: deps.Logger, config: deps.Config, db: deps.DB}
}
