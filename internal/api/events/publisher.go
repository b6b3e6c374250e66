// Package events publishes activity events for the worker to record.
package events

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cuongbtq/jobboard/internal/api/domain"
	"github.com/cuongbtq/jobboard/shared/metrics"
)

// Broker is the part of the RabbitMQ client the publisher needs
type Broker interface {
	PublishJSON(ctx context.Context, routingKey string, v any) error
}

// Publisher sends events to the broker in the background, keyed by event
// type. Failures are logged and counted but never returned.
type Publisher struct {
	broker  Broker
	logger  *slog.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewPublisher(broker Broker, logger *slog.Logger, timeout time.Duration) *Publisher {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &Publisher{broker: broker, logger: logger, timeout: timeout}
}

// Publish returns immediately. The send outlives the request that produced
// the event, bounded by timeout.
func (p *Publisher) Publish(ctx context.Context, event domain.ActivityEvent) {
	detached := context.WithoutCancel(ctx)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.send(detached, event)
	}()
}

// Wait blocks until every in-flight publish has finished
func (p *Publisher) Wait() {
	p.wg.Wait()
}

func (p *Publisher) send(ctx context.Context, event domain.ActivityEvent) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err := p.broker.PublishJSON(ctx, event.Type, event); err != nil {
		metrics.EventPublishFailures.Inc()
		p.logger.Warn("Failed to publish activity event",
			slog.String("event_id", event.ID),
			slog.String("event_type", event.Type),
			slog.Any("error", err),
		)
		return
	}

	p.logger.Debug("Activity event published",
		slog.String("event_id", event.ID),
		slog.String("event_type", event.Type),
	)
}

// Discard drops every event; used when RabbitMQ is disabled
type Discard struct{}

func (Discard) Publish(context.Context, domain.ActivityEvent) {}
