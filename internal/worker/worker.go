// Package worker records activity events consumed from RabbitMQ.
package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	apidomain "github.com/cuongbtq/jobboard/internal/api/domain"
	"github.com/cuongbtq/jobboard/internal/worker/domain"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// ErrDeliveriesClosed is returned by Start when the broker stops delivering
var ErrDeliveriesClosed = errors.New("rabbitmq delivery channel closed")

// EventStore persists activity events
type EventStore interface {
	RecordEvent(ctx context.Context, event *apidomain.ActivityEvent) (bool, error)
}

// Broker is the consuming side of the RabbitMQ client
type Broker interface {
	Consume(consumerTag string) (<-chan amqp.Delivery, error)
}

// Config holds worker configuration
type Config struct {
	Logger       *slog.Logger
	Store        EventStore
	Broker       Broker
	Concurrency  int
	EventTimeout time.Duration
	// WorkerID is the consumer tag; generated when empty
	WorkerID string
}

// Worker represents the background activity worker
type Worker struct {
	logger       *slog.Logger
	store        EventStore
	broker       Broker
	concurrency  int
	eventTimeout time.Duration
	workerID     string
	eventsChan   chan *domain.EventMessage
	wg           sync.WaitGroup
	stopChan     chan struct{}
	stopOnce     sync.Once
}

// NewWorker creates a new worker instance
func NewWorker(cfg *Config) *Worker {
	workerID := cfg.WorkerID
	if workerID == "" {
		workerID = "activity-worker-" + uuid.NewString()[:8]
	}

	concurrency := max(cfg.Concurrency, 1)

	eventTimeout := cfg.EventTimeout
	if eventTimeout <= 0 {
		eventTimeout = 10 * time.Second
	}

	return &Worker{
		logger:       cfg.Logger,
		store:        cfg.Store,
		broker:       cfg.Broker,
		concurrency:  concurrency,
		eventTimeout: eventTimeout,
		workerID:     workerID,
		eventsChan:   make(chan *domain.EventMessage),
		stopChan:     make(chan struct{}),
	}
}

// Start consumes deliveries until ctx is canceled or the broker closes the
// delivery channel, in which case it returns ErrDeliveriesClosed.
func (w *Worker) Start(ctx context.Context) error {
	w.logger.Info("Starting worker",
		slog.String("worker_id", w.workerID),
		slog.Int("concurrency", w.concurrency),
		slog.Duration("event_timeout", w.eventTimeout),
	)

	deliveries, err := w.setupConsumer()
	if err != nil {
		return err
	}

	w.spawnWorkerPool(ctx)

	err = w.startMessageDispatcher(ctx, deliveries)

	// no more sends; pool goroutines drain and exit
	close(w.eventsChan)
	return err
}

// Stop gracefully stops the worker and waits for in-flight events
func (w *Worker) Stop() {
	w.logger.Info("Stopping worker...")
	w.stopOnce.Do(func() { close(w.stopChan) })
	w.wg.Wait()
	w.logger.Info("Worker stopped")
}
