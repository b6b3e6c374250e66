package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/cuongbtq/jobboard/internal/api/domain"
)

type activityRow struct {
	ID         string    `db:"id"`
	Type       string    `db:"event_type"`
	ActorID    string    `db:"actor_id"`
	SubjectID  string    `db:"subject_id"`
	Payload    []byte    `db:"payload"`
	OccurredAt time.Time `db:"occurred_at"`
	RecordedAt time.Time `db:"recorded_at"`
}

// ListActivity returns the latest limit events, newest first
func (s *Storage) ListActivity(ctx context.Context, limit int) ([]domain.ActivityEvent, error) {
	query := `
		SELECT id, event_type, actor_id, subject_id, payload, occurred_at, recorded_at
		FROM activity_events
		ORDER BY occurred_at DESC, id DESC
		LIMIT $1
	`

	var rows []activityRow
	if err := s.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}

	events := make([]domain.ActivityEvent, len(rows))
	for i, r := range rows {
		events[i] = domain.ActivityEvent{
			ID:         r.ID,
			Type:       r.Type,
			ActorID:    r.ActorID,
			SubjectID:  r.SubjectID,
			Payload:    r.Payload,
			OccurredAt: r.OccurredAt,
			RecordedAt: r.RecordedAt,
		}
	}
	return events, nil
}

// Stats counts accounts by role, jobs, and applications by status
func (s *Storage) Stats(ctx context.Context) (*domain.Stats, error) {
	stats := &domain.Stats{
		AccountsByRole:       map[domain.Role]int64{},
		ApplicationsByStatus: map[domain.ApplicationStatus]int64{},
	}

	var roles []struct {
		Key   string `db:"key"`
		Count int64  `db:"count"`
	}
	if err := s.db.SelectContext(ctx, &roles, `SELECT role AS key, COUNT(*) AS count FROM accounts GROUP BY role`); err != nil {
		return nil, fmt.Errorf("failed to count accounts: %w", err)
	}
	for _, r := range roles {
		stats.AccountsByRole[domain.Role(r.Key)] = r.Count
	}

	if err := s.db.GetContext(ctx, &stats.Jobs, `SELECT COUNT(*) FROM jobs`); err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}

	var statuses []struct {
		Key   string `db:"key"`
		Count int64  `db:"count"`
	}
	if err := s.db.SelectContext(ctx, &statuses, `SELECT status AS key, COUNT(*) AS count FROM applications GROUP BY status`); err != nil {
		return nil, fmt.Errorf("failed to count applications: %w", err)
	}
	for _, r := range statuses {
		stats.ApplicationsByStatus[domain.ApplicationStatus(r.Key)] = r.Count
	}

	return stats, nil
}
