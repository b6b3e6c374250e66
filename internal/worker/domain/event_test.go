package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEvent(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name: "valid",
			body: `{"id":"5b0c6c36-3f8e-4b8e-9a53-7c1f0f3a2d10","type":"job.created","actorId":"a","subjectId":"j","occurredAt":"2024-01-01T00:00:00Z"}`,
		},
		{name: "not json", body: `{`, wantErr: true},
		{name: "id not a uuid", body: `{"id":"1","type":"job.created","occurredAt":"2024-01-01T00:00:00Z"}`, wantErr: true},
		{name: "missing type", body: `{"id":"5b0c6c36-3f8e-4b8e-9a53-7c1f0f3a2d10","occurredAt":"2024-01-01T00:00:00Z"}`, wantErr: true},
		{name: "missing timestamp", body: `{"id":"5b0c6c36-3f8e-4b8e-9a53-7c1f0f3a2d10","type":"job.created"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := ParseEvent([]byte(tt.body))
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidEvent)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "job.created", event.Type)
			assert.Equal(t, "a", event.ActorID)
		})
	}
}

func TestTransientError(t *testing.T) {
	cause := errors.New("connection reset")
	err := fmt.Errorf("processing: %w", Transient("evt-9", cause))

	var transient *TransientError
	require.ErrorAs(t, err, &transient)
	assert.Equal(t, "evt-9", transient.EventID)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrInvalidEvent)
	assert.Contains(t, err.Error(), "evt-9")
}
