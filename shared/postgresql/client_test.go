package postgresql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{Host: "db", Port: 5432, User: "app", Password: "secret", Database: "jobboard"}
	assert.Equal(t, "host=db port=5432 user=app password=secret dbname=jobboard sslmode=disable", cfg.DSN())

	cfg.SSLMode = "require"
	assert.Contains(t, cfg.DSN(), "sslmode=require")
}

func TestIsUniqueViolation(t *testing.T) {
	dup := &pq.Error{Code: UniqueViolation, Constraint: "accounts_email_key"}

	tests := []struct {
		name       string
		err        error
		constraint string
		want       bool
	}{
		{name: "any constraint", err: dup, want: true},
		{name: "matching constraint", err: dup, constraint: "accounts_email_key", want: true},
		{name: "other constraint", err: dup, constraint: "applications_job_applicant_key", want: false},
		{name: "wrapped", err: fmt.Errorf("insert: %w", dup), want: true},
		{name: "other sqlstate", err: &pq.Error{Code: "23503"}, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUniqueViolation(tt.err, tt.constraint))
		})
	}
}
