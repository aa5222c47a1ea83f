package events

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	events []*TaskEvent
	err    error
}

func (h *recordingHandler) HandleEvent(ctx context.Context, event *TaskEvent) error {
	h.events = append(h.events, event)
	return h.err
}

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
}

func TestNewTaskEvent(t *testing.T) {
	taskID := uuid.New()
	event := NewTaskEvent(taskID, "web_search", "running", "")

	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, taskID, event.TaskID)
	assert.Equal(t, "web_search", event.TaskType)
	assert.Equal(t, "running", event.Status)
	assert.Empty(t, event.Error)
	assert.False(t, event.OccurredAt.IsZero())
}

func TestEmitEventReachesAllHandlers(t *testing.T) {
	emitter := NewInMemoryEventEmitter(setupTestLogger())

	first := &recordingHandler{}
	second := &recordingHandler{}
	emitter.RegisterHandler(first)
	emitter.RegisterHandler(second)

	event := NewTaskEvent(uuid.New(), "analytics", "completed", "")
	require.NoError(t, emitter.EmitEvent(context.Background(), event))

	require.Len(t, first.events, 1)
	require.Len(t, second.events, 1)
	assert.Equal(t, event.ID, first.events[0].ID)
	assert.Equal(t, event.ID, second.events[0].ID)
}

func TestEmitEventContinuesPastFailingHandler(t *testing.T) {
	emitter := NewInMemoryEventEmitter(setupTestLogger())

	failing := &recordingHandler{err: errors.New("handler broke")}
	healthy := &recordingHandler{}
	emitter.RegisterHandler(failing)
	emitter.RegisterHandler(healthy)

	event := NewTaskEvent(uuid.New(), "research", "failed", "network down")
	err := emitter.EmitEvent(context.Background(), event)

	assert.EqualError(t, err, "handler broke")
	assert.Len(t, healthy.events, 1, "later handlers still receive the event")
}

func TestEmitEventWithNoHandlers(t *testing.T) {
	emitter := NewInMemoryEventEmitter(setupTestLogger())
	event := NewTaskEvent(uuid.New(), "voice", "pending", "")

	assert.NoError(t, emitter.EmitEvent(context.Background(), event))
}

func TestLoggingHandlerNeverFails(t *testing.T) {
	handler := NewLoggingHandler(setupTestLogger())

	withErr := NewTaskEvent(uuid.New(), "device_control", "timed_out", "timeout")
	assert.NoError(t, handler.HandleEvent(context.Background(), withErr))

	clean := NewTaskEvent(uuid.New(), "web_search", "completed", "")
	assert.NoError(t, handler.HandleEvent(context.Background(), clean))
}
