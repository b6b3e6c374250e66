// Package dto holds the JSON shapes of the HTTP API.
package dto

import (
	"time"

	"github.com/cuongbtq/jobboard/internal/api/domain"
)

// ErrorResponse is returned for every failed request
type ErrorResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

// UserResponse is the short account view returned with a token
type UserResponse struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

func NewUserResponse(account *domain.Account) UserResponse {
	return UserResponse{
		ID:    account.ID,
		Name:  account.Name,
		Email: account.Email,
		Role:  account.Role,
	}
}

type AuthResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

type ProfileResponse struct {
	Success bool            `json:"success"`
	User    *domain.Account `json:"user"`
}

type JobResponse struct {
	Success bool        `json:"success"`
	Job     *domain.Job `json:"job"`
}

// JobDetail always carries the application list, rendering none as []
type JobDetail struct {
	domain.Job
	Applications []domain.Application `json:"applications"`
}

func NewJobDetail(job *domain.Job) *JobDetail {
	return &JobDetail{Job: *job, Applications: NonEmpty(job.Applications)}
}

type JobDetailResponse struct {
	Success bool       `json:"success"`
	Job     *JobDetail `json:"job"`
}

type JobsResponse struct {
	Success bool         `json:"success"`
	Jobs    []domain.Job `json:"jobs"`
}

type ApplicationResponse struct {
	Success     bool                `json:"success"`
	Application *domain.Application `json:"application"`
}

type ApplicationsResponse struct {
	Success      bool                 `json:"success"`
	Applications []domain.Application `json:"applications"`
}

type StatsResponse struct {
	Success bool          `json:"success"`
	Stats   *domain.Stats `json:"stats"`
}

type ActivityResponse struct {
	Success bool                   `json:"success"`
	Events  []domain.ActivityEvent `json:"events"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

// TestResponse reports which settings are present without revealing them
type TestResponse struct {
	Status      string    `json:"status"`
	Message     string    `json:"message"`
	Database    string    `json:"database"`
	JWTSecret   string    `json:"jwtSecret"`
	Environment string    `json:"environment"`
	Timestamp   time.Time `json:"timestamp"`
}
