package domain

import "time"

// JobType is the employment type of a posting
type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
)

// Valid reports whether t is a known job type
func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship:
		return true
	}
	return false
}

// Job is a posting owned by an employer account
type Job struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	Salary       string    `json:"salary"`
	Type         JobType   `json:"type"`
	Requirements []string  `json:"requirements"`
	EmployerID   string    `json:"-"`
	Employer     *Contact  `json:"employer,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	// Applications is derived from the ledger on detail reads
	Applications []Application `json:"applications,omitempty"`
}

// JobFilter narrows the public job listing; empty fields match everything
type JobFilter struct {
	Search   string
	Type     JobType
	Location string
}
