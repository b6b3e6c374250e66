package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	apidomain "github.com/cuongbtq/jobboard/internal/api/domain"
	"github.com/jmoiron/sqlx"
)

// Storage handles all database operations for the worker
type Storage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewStorage creates a new Storage instance
func NewStorage(db *sqlx.DB, logger *slog.Logger) *Storage {
	return &Storage{
		db:     db,
		logger: logger,
	}
}

// RecordEvent inserts an activity event. Redelivered events hit the primary
// key and are skipped; the result reports whether a row was written.
func (s *Storage) RecordEvent(ctx context.Context, event *apidomain.ActivityEvent) (bool, error) {
	query := `
		INSERT INTO activity_events (id, event_type, actor_id, subject_id, payload, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING
	`

	// lib/pq encodes []byte as bytea, so jsonb goes over as text
	var payload sql.NullString
	if len(event.Payload) > 0 {
		payload = sql.NullString{String: string(event.Payload), Valid: true}
	}

	result, err := s.db.ExecContext(ctx, query,
		event.ID,
		event.Type,
		event.ActorID,
		event.SubjectID,
		payload,
		event.OccurredAt,
	)
	if err != nil {
		return false, fmt.Errorf("failed to record event: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		s.logger.Debug("Activity event already recorded",
			slog.String("event_id", event.ID),
		)
		return false, nil
	}

	return true, nil
}
