package task

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status represents the current state of a task.
type Status string

// Possible task status values. Completed, Failed, and TimedOut are
// terminal: a task never leaves them.
const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusTimedOut  Status = "timed_out"
)

// Terminal reports whether the status permits no further transitions.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusTimedOut
}

// Type identifies which capability a task is bound to.
type Type string

// The closed set of supported capability kinds.
const (
	TypeWebSearch     Type = "web_search"
	TypeDeviceControl Type = "device_control"
	TypeResearch      Type = "research"
	TypeAnalytics     Type = "analytics"
	TypePresentation  Type = "presentation"
	TypeVoice         Type = "voice"
)

// AllTypes lists every capability kind in declaration order.
var AllTypes = []Type{
	TypeWebSearch,
	TypeDeviceControl,
	TypeResearch,
	TypeAnalytics,
	TypePresentation,
	TypeVoice,
}

// ParseType converts a string into a Type, rejecting anything outside
// the closed capability set.
func ParseType(s string) (Type, error) {
	for _, t := range AllTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTaskType, s)
}

// DefaultPriority is assigned when a task's options carry no explicit
// priority. Priorities range 1-10; higher runs first.
const DefaultPriority = 5

// Task represents one unit of orchestrated work bound to a single
// capability kind.
type Task struct {
	ID        uuid.UUID      `json:"id"`
	Type      Type           `json:"type"`
	Command   string         `json:"command"`
	Options   map[string]any `json:"options,omitempty"`
	Status    Status         `json:"status"`
	Priority  int            `json:"priority"`
	Result    map[string]any `json:"result,omitempty"`
	Error     string         `json:"error,omitempty"`
	CreatedAt time.Time      `json:"created_at"`

	// StartedAt and CompletedAt are zero until the corresponding
	// transition happens.
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
}

// newTask builds a Pending task with a fresh ID. Priority is read from
// options["priority"] and clamped to the 1-10 range.
func newTask(taskType Type, command string, options map[string]any) *Task {
	return &Task{
		ID:        uuid.New(),
		Type:      taskType,
		Command:   command,
		Options:   options,
		Status:    StatusPending,
		Priority:  priorityFromOptions(options),
		CreatedAt: time.Now().UTC(),
	}
}

// clone returns a copy of the task safe to hand out of the store.
// Options and Result maps are shallow-copied; values inside them are
// treated as immutable by convention.
func (t *Task) clone() Task {
	c := *t
	if t.Options != nil {
		c.Options = make(map[string]any, len(t.Options))
		for k, v := range t.Options {
			c.Options[k] = v
		}
	}
	if t.Result != nil {
		c.Result = make(map[string]any, len(t.Result))
		for k, v := range t.Result {
			c.Result[k] = v
		}
	}
	return c
}

// priorityFromOptions extracts the optional priority key, accepting int
// and float64 (JSON) representations.
func priorityFromOptions(options map[string]any) int {
	p := DefaultPriority
	switch v := options["priority"].(type) {
	case int:
		p = v
	case float64:
		p = int(v)
	}
	if p < 1 {
		p = 1
	}
	if p > 10 {
		p = 10
	}
	return p
}

// Collaborator is the contract the core requires of each capability
// adapter: an operation taking a command and options, returning a result
// mapping or an error. Implementations should honor the context deadline
// on a best-effort basis; the core tolerates adapters that cannot be
// interrupted.
type Collaborator interface {
	Execute(ctx context.Context, command string, options map[string]any) (map[string]any, error)
}
