package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/cuongbtq/jobboard/shared/postgresql"
	"github.com/jmoiron/sqlx"
)

// Constraint names the ledger and directory rely on for conflict detection
const (
	constraintAccountEmail       = "accounts_email_key"
	constraintApplicationPerUser = "applications_job_applicant_key"
)

const schema = `
CREATE TABLE IF NOT EXISTS accounts (
	id            UUID PRIMARY KEY,
	name          TEXT NOT NULL,
	email         TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	role          TEXT NOT NULL,
	phone         TEXT NOT NULL DEFAULT '',
	address       TEXT NOT NULL DEFAULT '',
	skills        TEXT[] NOT NULL DEFAULT '{}',
	experience    TEXT NOT NULL DEFAULT '',
	resume        TEXT NOT NULL DEFAULT '',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CONSTRAINT accounts_email_key UNIQUE (email)
);

CREATE TABLE IF NOT EXISTS jobs (
	id           UUID PRIMARY KEY,
	title        TEXT NOT NULL,
	description  TEXT NOT NULL,
	company      TEXT NOT NULL,
	location     TEXT NOT NULL,
	salary       TEXT NOT NULL DEFAULT '',
	type         TEXT NOT NULL DEFAULT 'full-time',
	requirements TEXT[] NOT NULL DEFAULT '{}',
	employer_id  UUID NOT NULL REFERENCES accounts(id),
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS jobs_employer_id_idx ON jobs (employer_id);
CREATE INDEX IF NOT EXISTS jobs_created_at_idx ON jobs (created_at DESC);

CREATE TABLE IF NOT EXISTS applications (
	id           UUID PRIMARY KEY,
	job_id       UUID NOT NULL REFERENCES jobs(id),
	applicant_id UUID NOT NULL REFERENCES accounts(id),
	status       TEXT NOT NULL DEFAULT 'pending',
	cover_letter TEXT NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CONSTRAINT applications_job_applicant_key UNIQUE (job_id, applicant_id)
);

CREATE INDEX IF NOT EXISTS applications_applicant_id_idx ON applications (applicant_id);

CREATE TABLE IF NOT EXISTS activity_events (
	id          UUID PRIMARY KEY,
	event_type  TEXT NOT NULL,
	actor_id    TEXT NOT NULL DEFAULT '',
	subject_id  TEXT NOT NULL DEFAULT '',
	payload     JSONB,
	occurred_at TIMESTAMPTZ NOT NULL,
	recorded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS activity_events_occurred_at_idx ON activity_events (occurred_at DESC);
`

// Storage is the PostgreSQL-backed directory, catalog and ledger
type Storage struct {
	db *sqlx.DB
}

func NewStorage(pg *postgresql.Client) *Storage {
	return &Storage{db: pg.GetDB()}
}

// Migrate creates the schema if it does not exist yet
func (s *Storage) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s literally anywhere
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
