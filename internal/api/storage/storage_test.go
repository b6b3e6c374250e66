package storage

import (
	"testing"

	"github.com/cuongbtq/jobboard/internal/api/domain"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Python", want: "%Python%"},
		{in: "100%", want: `%100\%%`},
		{in: "c_sharp", want: `%c\_sharp%`},
		{in: `back\slash`, want: `%back\\slash%`},
		{in: "", want: "%%"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, containsPattern(tt.in))
		})
	}
}

func TestJobRow_ToDomain(t *testing.T) {
	row := jobRow{
		ID:            "job-1",
		Title:         "Backend Developer",
		Type:          "contract",
		EmployerID:    "emp-1",
		EmployerName:  "Jane Employer",
		EmployerEmail: "employer@test.com",
	}

	job := row.toDomain()

	assert.Equal(t, domain.JobTypeContract, job.Type)
	assert.Equal(t, "emp-1", job.EmployerID)
	assert.Equal(t, &domain.Contact{ID: "emp-1", Name: "Jane Employer", Email: "employer@test.com"}, job.Employer)
	// NULL-free arrays keep the JSON shape stable
	assert.Equal(t, []string{}, job.Requirements)
}

func TestApplicationRow_Conversions(t *testing.T) {
	row := applicationRow{
		ID:              "app-1",
		JobID:           "job-1",
		ApplicantID:     "seeker-1",
		Status:          "shortlisted",
		CoverLetter:     "hello",
		JobTitle:        "Backend Developer",
		JobCompany:      "Innovation Labs",
		JobLocation:     "Remote",
		JobEmployerID:   "emp-1",
		ApplicantName:   "Sarah Smith",
		ApplicantEmail:  "sarah@test.com",
		ApplicantSkills: pq.StringArray{"Go", "SQL"},
	}

	plain := row.toDomain()
	assert.Equal(t, domain.ApplicationShortlisted, plain.Status)
	assert.Nil(t, plain.Job)
	assert.Nil(t, plain.Applicant)

	annotated := row.toAnnotated()
	require.NotNil(t, annotated.Job)
	require.NotNil(t, annotated.Applicant)
	assert.Equal(t, "emp-1", annotated.Job.EmployerID)
	assert.Equal(t, "Remote", annotated.Job.Location)
	assert.Equal(t, "Sarah Smith", annotated.Applicant.Name)
	assert.Equal(t, []string{"Go", "SQL"}, annotated.Applicant.Profile.Skills)
}
