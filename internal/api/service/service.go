// Package service implements the board's use cases on top of storage
// interfaces. Every returned error is either a *domain.Error or an internal failure.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/cuongbtq/jobboard/internal/api/domain"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// AccountStore is the user directory
type AccountStore interface {
	CreateAccount(ctx context.Context, account *domain.Account) error
	GetAccountByID(ctx context.Context, id string) (*domain.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error)
}

// JobStore is the job catalog
type JobStore interface {
	CreateJob(ctx context.Context, job *domain.Job) error
	GetJobByID(ctx context.Context, id string) (*domain.Job, error)
	ListJobs(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error)
}

// ApplicationStore is the application ledger. Listings come back with
// their job and applicant annotations attached.
type ApplicationStore interface {
	CreateApplication(ctx context.Context, app *domain.Application) error
	HasApplied(ctx context.Context, jobID, applicantID string) (bool, error)
	GetApplication(ctx context.Context, id string) (*domain.Application, error)
	ListByEmployer(ctx context.Context, employerID string) ([]domain.Application, error)
	ListByApplicant(ctx context.Context, applicantID string) ([]domain.Application, error)
	ListByJob(ctx context.Context, jobID string) ([]domain.Application, error)
	ListAllApplications(ctx context.Context) ([]domain.Application, error)
}

// ActivityStore serves the admin overview
type ActivityStore interface {
	ListActivity(ctx context.Context, limit int) ([]domain.ActivityEvent, error)
	Stats(ctx context.Context) (*domain.Stats, error)
}

// EventPublisher delivers activity events. Publishing is best effort and
// never fails the request that produced the event.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.ActivityEvent)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

// validateInput checks in against its validate tags. The message is picked
// from messages by "field.tag", then by "tag", for the first failing field;
// every failing field is listed on the returned error.
func validateInput(in any, messages map[string]string) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("failed to validate input: %w", err)
	}

	first := verrs[0]
	message, ok := messages[first.Field()+"."+first.Tag()]
	if !ok {
		message, ok = messages[first.Tag()]
	}
	if !ok {
		message = "Invalid request"
	}

	fields := lo.Uniq(lo.Map(verrs, func(fe validator.FieldError, _ int) string {
		return fe.Field()
	}))
	return domain.BadRequest(message, fields...)
}

func newEvent(eventType, actorID, subjectID string, payload map[string]any, at time.Time) domain.ActivityEvent {
	raw, _ := json.Marshal(payload)
	return domain.ActivityEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		ActorID:    actorID,
		SubjectID:  subjectID,
		Payload:    raw,
		OccurredAt: at,
	}
}

// isUUID guards lookups; a malformed id cannot match any row
func isUUID(id string) bool {
	return uuid.Validate(id) == nil
}
