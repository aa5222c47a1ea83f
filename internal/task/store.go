package task

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store holds every task the orchestrator has ever accepted, keyed by
// id. It is the single source of truth for task state and the only
// resource shared across execution units. Each task has exactly one
// writer while Running, but reads happen concurrently with writes, so
// all access is serialized on a RWMutex.
type Store struct {
	mu    sync.RWMutex
	tasks map[uuid.UUID]*Task
}

// NewStore creates an empty task store.
func NewStore() *Store {
	return &Store{tasks: make(map[uuid.UUID]*Task)}
}

// Create adds a new Pending task and returns a copy of it. IDs are
// never reused: uuid collisions are not a practical concern and the
// store never deletes.
func (s *Store) Create(taskType Type, command string, options map[string]any) Task {
	t := newTask(taskType, command, options)

	s.mu.Lock()
	s.tasks[t.ID] = t
	s.mu.Unlock()

	return t.clone()
}

// Get returns a copy of the task with the given id.
func (s *Store) Get(id uuid.UUID) (Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[id]
	if !ok {
		return Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return t.clone(), nil
}

// List returns copies of all tasks, optionally filtered by status.
func (s *Store) List(statuses ...Status) []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if len(statuses) == 0 {
			out = append(out, t.clone())
			continue
		}
		for _, st := range statuses {
			if t.Status == st {
				out = append(out, t.clone())
				break
			}
		}
	}
	return out
}

// Len returns the total number of known tasks.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

// markRunning transitions a Pending task to Running and stamps
// StartedAt.
func (s *Store) markRunning(id uuid.UUID) error {
	return s.transition(id, StatusPending, func(t *Task) {
		t.Status = StatusRunning
		t.StartedAt = time.Now().UTC()
	})
}

// complete transitions a Running task to Completed and records its
// result. Result and error are mutually exclusive by construction.
func (s *Store) complete(id uuid.UUID, result map[string]any) error {
	return s.transition(id, StatusRunning, func(t *Task) {
		t.Status = StatusCompleted
		t.Result = result
		t.Error = ""
		t.CompletedAt = time.Now().UTC()
	})
}

// fail transitions a task to Failed and records the error description.
// Pending tasks may fail directly (configuration errors happen before
// any collaborator call).
func (s *Store) fail(id uuid.UUID, errMsg string) error {
	return s.transitionAny(id, []Status{StatusPending, StatusRunning}, func(t *Task) {
		t.Status = StatusFailed
		t.Error = errMsg
		t.Result = nil
		t.CompletedAt = time.Now().UTC()
	})
}

// timeout transitions a Running task to TimedOut.
func (s *Store) timeout(id uuid.UUID) error {
	return s.transition(id, StatusRunning, func(t *Task) {
		t.Status = StatusTimedOut
		t.Error = timeoutErrorMessage
		t.Result = nil
		t.CompletedAt = time.Now().UTC()
	})
}

func (s *Store) transition(id uuid.UUID, from Status, apply func(*Task)) error {
	return s.transitionAny(id, []Status{from}, apply)
}

// transitionAny applies the mutation if the task's current status is one
// of the allowed source states. Transitions out of a terminal status are
// always rejected, which keeps the lifecycle monotonic even if a stale
// execution unit reports late.
func (s *Store) transitionAny(id uuid.UUID, from []Status, apply func(*Task)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}

	for _, st := range from {
		if t.Status == st {
			apply(t)
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> requested from %v", ErrInvalidTransition, t.Status, from)
}
