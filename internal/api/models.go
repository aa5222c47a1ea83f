package api

import (
	"time"

	"github.com/dmaher/maestro/internal/task"
)

// QueueTaskRequest represents the request body for submitting a task.
type QueueTaskRequest struct {
	Type    string         `json:"type"    validate:"required,oneof=web_search device_control research analytics presentation voice"`
	Command string         `json:"command" validate:"required,min=1"`
	Options map[string]any `json:"options"`
}

// QueueTaskResponse is returned on successful submission.
type QueueTaskResponse struct {
	TaskID string `json:"task_id"`
	Status string `json:"status"`
}

// TaskResponse represents one task in API responses. Unset timestamps
// render as null rather than the zero time.
type TaskResponse struct {
	ID          string         `json:"id"`
	Type        string         `json:"type"`
	Command     string         `json:"command"`
	Status      string         `json:"status"`
	Priority    int            `json:"priority"`
	Result      map[string]any `json:"result,omitempty"`
	Error       string         `json:"error,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	StartedAt   *time.Time     `json:"started_at"`
	CompletedAt *time.Time     `json:"completed_at"`
}

// SnapshotResponse is the status-partitioned view of all tasks.
type SnapshotResponse struct {
	Pending   []TaskResponse `json:"pending"`
	Running   []TaskResponse `json:"running"`
	Completed []TaskResponse `json:"completed"`
	Failed    []TaskResponse `json:"failed"`
	TimedOut  []TaskResponse `json:"timed_out"`
}

// CapabilitiesResponse lists the enabled capability names.
type CapabilitiesResponse struct {
	Capabilities []string `json:"capabilities"`
}

// taskToResponse converts a task.Task to its API representation.
func taskToResponse(t task.Task) TaskResponse {
	resp := TaskResponse{
		ID:        t.ID.String(),
		Type:      string(t.Type),
		Command:   t.Command,
		Status:    string(t.Status),
		Priority:  t.Priority,
		Result:    t.Result,
		Error:     t.Error,
		CreatedAt: t.CreatedAt,
	}
	if !t.StartedAt.IsZero() {
		started := t.StartedAt
		resp.StartedAt = &started
	}
	if !t.CompletedAt.IsZero() {
		completed := t.CompletedAt
		resp.CompletedAt = &completed
	}
	return resp
}

// snapshotToResponse converts a task.Snapshot to its API representation.
// Partitions marshal as [] rather than null when empty.
func snapshotToResponse(snap task.Snapshot) SnapshotResponse {
	convert := func(tasks []task.Task) []TaskResponse {
		out := make([]TaskResponse, 0, len(tasks))
		for _, t := range tasks {
			out = append(out, taskToResponse(t))
		}
		return out
	}
	return SnapshotResponse{
		Pending:   convert(snap.Pending),
		Running:   convert(snap.Running),
		Completed: convert(snap.Completed),
		Failed:    convert(snap.Failed),
		TimedOut:  convert(snap.TimedOut),
	}
}
