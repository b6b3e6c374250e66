package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cuongbtq/jobboard/internal/worker/domain"
	"github.com/cuongbtq/jobboard/shared/metrics"
	amqp "github.com/rabbitmq/amqp091-go"
)

// setupConsumer starts a manual-ack consumer tagged with the worker id
func (w *Worker) setupConsumer() (<-chan amqp.Delivery, error) {
	deliveries, err := w.broker.Consume(w.workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to start consuming: %w", err)
	}

	w.logger.Info("RabbitMQ consumer started",
		slog.String("consumer_tag", w.workerID),
	)

	return deliveries, nil
}

// startMessageDispatcher parses deliveries and hands them to the worker pool.
// Unparseable deliveries are rejected without requeue.
func (w *Worker) startMessageDispatcher(ctx context.Context, deliveries <-chan amqp.Delivery) error {
	w.logger.Info("Message dispatcher started",
		slog.String("worker_id", w.workerID),
	)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Message dispatcher stopped - context canceled")
			return nil

		case <-w.stopChan:
			w.logger.Info("Message dispatcher stopped - worker stopping")
			return nil

		case delivery, ok := <-deliveries:
			if !ok {
				w.logger.Warn("RabbitMQ delivery channel closed")
				return ErrDeliveriesClosed
			}

			event, err := domain.ParseEvent(delivery.Body)
			if err != nil {
				w.logger.Error("Dropping invalid activity event",
					slog.String("error", err.Error()),
					slog.String("routing_key", delivery.RoutingKey),
					slog.Int("body_size", len(delivery.Body)),
				)
				metrics.EventsRecorded.WithLabelValues(domain.OutcomeInvalid).Inc()
				if nackErr := delivery.Nack(false, false); nackErr != nil {
					w.logger.Error("Failed to NACK invalid message",
						slog.String("error", nackErr.Error()),
					)
				}
				continue
			}

			msg := &domain.EventMessage{Event: event, Delivery: delivery}

			select {
			case w.eventsChan <- msg:
				w.logger.Debug("Event dispatched to worker pool",
					slog.String("event_id", event.ID),
					slog.Uint64("delivery_tag", delivery.DeliveryTag),
				)
			case <-ctx.Done():
				w.logger.Info("Message dispatcher stopped while dispatching event")
				// hand it back so another consumer can record it
				if nackErr := delivery.Nack(false, true); nackErr != nil {
					w.logger.Error("Failed to NACK message on shutdown",
						slog.String("error", nackErr.Error()),
					)
				}
				return nil
			}
		}
	}
}
