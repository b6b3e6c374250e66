package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cuongbtq/jobboard/internal/worker/domain"
	"github.com/cuongbtq/jobboard/shared/metrics"
)

// processEvent writes the event to the activity log within the event timeout
func (w *Worker) processEvent(ctx context.Context, msg *domain.EventMessage) error {
	eventCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), w.eventTimeout)
	defer cancel()

	event := msg.Event
	inserted, err := w.store.RecordEvent(eventCtx, &event)
	if err != nil {
		metrics.EventsRecorded.WithLabelValues(domain.OutcomeFailed).Inc()
		return domain.Transient(event.ID, fmt.Errorf("failed to record event: %w", err))
	}

	if !inserted {
		metrics.EventsRecorded.WithLabelValues(domain.OutcomeDuplicate).Inc()
		w.logger.Debug("Duplicate activity event skipped",
			slog.String("event_id", event.ID),
		)
		return nil
	}

	metrics.EventsRecorded.WithLabelValues(domain.OutcomeRecorded).Inc()
	w.logger.Info("Activity event recorded",
		slog.String("event_id", event.ID),
		slog.String("event_type", event.Type),
		slog.String("actor_id", event.ActorID),
	)
	return nil
}
