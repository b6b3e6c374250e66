package domain

import (
	"encoding/json"
	"time"
)

// Activity event types published by the gateway and recorded by the worker
const (
	EventAccountRegistered    = "account.registered"
	EventJobCreated           = "job.created"
	EventApplicationSubmitted = "application.submitted"
)

// ActivityEvent is the wire and storage shape of an audit record
type ActivityEvent struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	ActorID    string          `json:"actorId"`
	SubjectID  string          `json:"subjectId"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	OccurredAt time.Time       `json:"occurredAt"`
	RecordedAt time.Time       `json:"recordedAt,omitempty"`
}

// Stats is the admin overview of the board
type Stats struct {
	AccountsByRole       map[Role]int64              `json:"accountsByRole"`
	Jobs                 int64                       `json:"jobs"`
	ApplicationsByStatus map[ApplicationStatus]int64 `json:"applicationsByStatus"`
}
