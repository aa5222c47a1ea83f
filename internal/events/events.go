package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TaskEvent records a single task status transition. It carries enough
// information for observers to follow a task's lifecycle without
// depending on the task package.
type TaskEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// TaskID identifies the task that transitioned
	TaskID uuid.UUID `json:"task_id"`

	// TaskType is the capability kind of the task
	TaskType string `json:"task_type"`

	// Status is the status the task transitioned into
	Status string `json:"status"`

	// Error holds the task error for failed and timed out transitions
	Error string `json:"error,omitempty"`

	// OccurredAt is the timestamp of the transition
	OccurredAt time.Time `json:"occurred_at"`
}

// NewTaskEvent creates a TaskEvent for the given transition.
func NewTaskEvent(taskID uuid.UUID, taskType, status, errMsg string) *TaskEvent {
	return &TaskEvent{
		ID:         uuid.New(),
		TaskID:     taskID,
		TaskType:   taskType,
		Status:     status,
		Error:      errMsg,
		OccurredAt: time.Now().UTC(),
	}
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *TaskEvent) error
}

// EventEmitter defines an interface for components that can emit events.
// This allows the orchestrator to publish transitions without direct
// knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	// Returns an error if the event cannot be emitted.
	EmitEvent(ctx context.Context, event *TaskEvent) error
}
