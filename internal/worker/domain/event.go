package domain

import (
	"encoding/json"
	"fmt"

	apidomain "github.com/cuongbtq/jobboard/internal/api/domain"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// EventMessage is a parsed delivery waiting for a pool worker
type EventMessage struct {
	Event    apidomain.ActivityEvent
	Delivery amqp.Delivery
}

// ParseEvent decodes a delivery body. Errors wrap ErrInvalidEvent.
func ParseEvent(body []byte) (apidomain.ActivityEvent, error) {
	var event apidomain.ActivityEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return event, fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}

	if _, err := uuid.Parse(event.ID); err != nil {
		return event, fmt.Errorf("%w: id %q is not a UUID", ErrInvalidEvent, event.ID)
	}
	if event.Type == "" {
		return event, fmt.Errorf("%w: missing type", ErrInvalidEvent)
	}
	if event.OccurredAt.IsZero() {
		return event, fmt.Errorf("%w: missing occurredAt", ErrInvalidEvent)
	}
	return event, nil
}
