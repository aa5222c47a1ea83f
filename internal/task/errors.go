package task

import "errors"

// Task-scoped errors. Every failure is recorded on a single task and
// queryable through snapshots; nothing here aborts a drain.
var (
	// ErrUnknownTaskType is returned when a submitted type is outside
	// the closed capability set.
	ErrUnknownTaskType = errors.New("unknown task type")

	// ErrTaskNotFound is returned when looking up an id the store has
	// never seen.
	ErrTaskNotFound = errors.New("task not found")

	// ErrCapabilityDisabled is a configuration-kind error: the task's
	// capability is disabled, so no collaborator is ever invoked.
	ErrCapabilityDisabled = errors.New("capability is disabled")

	// ErrInvalidTransition is returned by the store when a status
	// change would violate the Pending → Running → terminal order.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// timeoutErrorMessage is recorded on tasks whose collaborator never
// answered within the deadline. Distinct from Failed so callers can tell
// "adapter refused" from "adapter never answered".
const timeoutErrorMessage = "timeout"
