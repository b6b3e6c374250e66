package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cuongbtq/jobboard/internal/worker/domain"
)

// spawnWorkerPool spawns N worker goroutines based on concurrency configuration
func (w *Worker) spawnWorkerPool(ctx context.Context) {
	w.logger.Info("Spawning worker pool",
		slog.Int("concurrency", w.concurrency),
		slog.String("worker_id", w.workerID),
	)

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.workerLoop(ctx, i)
	}
}

// workerLoop records events until the events channel closes or the worker stops
func (w *Worker) workerLoop(ctx context.Context, workerNum int) {
	defer w.wg.Done()

	workerName := fmt.Sprintf("%s-%d", w.workerID, workerNum)
	w.logger.Debug("Worker goroutine started",
		slog.String("worker_name", workerName),
	)

	for {
		select {
		case <-w.stopChan:
			w.logger.Debug("Worker goroutine stopping - stopChan closed",
				slog.String("worker_name", workerName),
			)
			return

		case msg, ok := <-w.eventsChan:
			if !ok {
				w.logger.Debug("Worker goroutine stopping - eventsChan closed",
					slog.String("worker_name", workerName),
				)
				return
			}

			w.handle(ctx, workerName, msg)
		}
	}
}

// handle records one event and settles its delivery
func (w *Worker) handle(ctx context.Context, workerName string, msg *domain.EventMessage) {
	err := w.processEvent(ctx, msg)
	if err == nil {
		if ackErr := msg.Delivery.Ack(false); ackErr != nil {
			w.logger.Error("Failed to ACK message",
				slog.String("worker_name", workerName),
				slog.String("event_id", msg.Event.ID),
				slog.String("error", ackErr.Error()),
			)
		}
		return
	}

	requeue := shouldRequeue(err, msg.Delivery.Redelivered)

	w.logger.Error("Event processing failed",
		slog.String("worker_name", workerName),
		slog.String("event_id", msg.Event.ID),
		slog.Bool("requeue", requeue),
		slog.String("error", err.Error()),
	)

	if nackErr := msg.Delivery.Nack(false, requeue); nackErr != nil {
		w.logger.Error("Failed to NACK message",
			slog.String("worker_name", workerName),
			slog.String("event_id", msg.Event.ID),
			slog.String("error", nackErr.Error()),
		)
	}
}

// shouldRequeue retries transient failures once; a redelivered message that
// fails again is dropped.
func shouldRequeue(err error, redelivered bool) bool {
	if errors.Is(err, domain.ErrInvalidEvent) {
		return false
	}

	var transient *domain.TransientError
	if errors.As(err, &transient) {
		return !redelivered
	}

	return false
}
