package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidEvent marks deliveries that can never be recorded
var ErrInvalidEvent = errors.New("invalid activity event")

// TransientError is a recording failure worth one more delivery attempt
type TransientError struct {
	EventID string
	Err     error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("event %s: transient failure: %v", e.EventID, e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

func Transient(eventID string, err error) error {
	return &TransientError{EventID: eventID, Err: err}
}
