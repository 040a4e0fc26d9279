package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wekeepgrowing/project-planner/internal/domain/entity"
)

type mockBus struct {
	mock.Mock
}

func (m *mockBus) Publish(ctx context.Context, channel string, message interface{}) error {
	args := m.Called(ctx, channel, message)
	return args.Error(0)
}

func TestPublisher_Publish(t *testing.T) {
	evt := entity.Event{
		Type:       entity.EventProjectCreated,
		UserID:     "u-1",
		ProjectID:  "p-1",
		OccurredAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	bus := new(mockBus)
	bus.On("Publish", mock.Anything, "planner.events", evt).Return(nil)

	require.NoError(t, NewPublisher(bus, "planner.events").Publish(context.Background(), evt))
	bus.AssertExpectations(t)

	raw, err := json.Marshal(evt)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"project.created","user_id":"u-1","project_id":"p-1","occurred_at":"2025-03-01T12:00:00Z"}`, string(raw))
}

func TestPublisher_PublishError(t *testing.T) {
	bus := new(mockBus)
	bus.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	err := NewPublisher(bus, "c").Publish(context.Background(), entity.NewEvent(entity.EventTaskDeleted, "u", "p", "t"))
	assert.ErrorContains(t, err, "task.deleted")
	assert.ErrorContains(t, err, "connection reset")
}
