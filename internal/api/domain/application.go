package domain

import "time"

// ApplicationStatus is free-form in storage; these are the values the board uses
type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "pending"
	ApplicationReviewed    ApplicationStatus = "reviewed"
	ApplicationShortlisted ApplicationStatus = "shortlisted"
	ApplicationRejected    ApplicationStatus = "rejected"
)

// Application links one applicant to one job
type Application struct {
	ID          string            `json:"id"`
	JobID       string            `json:"jobId"`
	ApplicantID string            `json:"applicantId"`
	Status      ApplicationStatus `json:"status"`
	CoverLetter string            `json:"coverLetter"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`

	Job       *JobSummary `json:"job,omitempty"`
	Applicant *Contact    `json:"applicant,omitempty"`
}

// JobSummary annotates an application with its parent job
type JobSummary struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Company    string `json:"company"`
	Location   string `json:"location,omitempty"`
	EmployerID string `json:"-"`
}
