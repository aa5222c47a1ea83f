package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmaher/maestro/internal/config"
	"github.com/dmaher/maestro/internal/events"
	"github.com/dmaher/maestro/internal/redact"
)

// Orchestrator coordinates task submission, scheduling, and bounded
// concurrent execution. Submission is non-blocking; execution happens
// during an explicit ProcessQueue drain. The semaphore channel is the
// system's sole backpressure mechanism: at most MaxConcurrentTasks
// collaborator invocations run at once, and excess queued work waits.
type Orchestrator struct {
	store    *Store
	queue    *Queue
	registry *Registry
	emitter  events.EventEmitter
	logger   *slog.Logger

	// sem holds one token per occupied concurrency slot.
	sem     chan struct{}
	timeout time.Duration
}

// New creates an Orchestrator from the given configuration, registry,
// and event emitter. Configuration is captured by value: each instance
// is independent, so orchestrators in tests never interfere.
func New(
	cfg config.OrchestratorConfig,
	registry *Registry,
	emitter events.EventEmitter,
	logger *slog.Logger,
) *Orchestrator {
	maxConcurrent := cfg.MaxConcurrentTasks
	if maxConcurrent < 1 {
		logger.Warn("invalid max concurrent tasks, using default",
			"specified", cfg.MaxConcurrentTasks,
			"default", 5)
		maxConcurrent = 5
	}

	timeout := time.Duration(cfg.TaskTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 300 * time.Second
	}

	return &Orchestrator{
		store:    NewStore(),
		queue:    NewQueue(),
		registry: registry,
		emitter:  emitter,
		logger:   logger.With("component", "orchestrator"),
		sem:      make(chan struct{}, maxConcurrent),
		timeout:  timeout,
	}
}

// QueueTask accepts a new task and returns its id immediately without
// executing it. Submission and execution are decoupled: the task stays
// Pending until a ProcessQueue drain dispatches it.
func (o *Orchestrator) QueueTask(taskType Type, command string, options map[string]any) (uuid.UUID, error) {
	if _, err := ParseType(string(taskType)); err != nil {
		return uuid.Nil, err
	}

	t := o.store.Create(taskType, command, options)
	o.queue.Push(t.ID, t.Priority)

	o.logger.Info("task queued",
		"task_id", t.ID,
		"task_type", t.Type,
		"priority", t.Priority)
	o.emit(context.Background(), t.ID, t.Type, StatusPending, "")

	return t.ID, nil
}

// ProcessQueue drains the queue, executing up to the concurrency bound
// simultaneously, and blocks until the queue is empty and every
// dispatched task has reached a terminal status. Failures and timeouts
// are recorded per task; nothing aborts the drain.
func (o *Orchestrator) ProcessQueue(ctx context.Context) error {
	o.logger.Info("processing queue", "queued", o.queue.Len())

	var wg sync.WaitGroup
	for {
		// Acquire a slot before pulling work so tasks queued during
		// the drain still start in priority order.
		select {
		case o.sem <- struct{}{}:
		case <-ctx.Done():
			wg.Wait()
			return ctx.Err()
		}

		id, ok := o.queue.Pop()
		if !ok {
			<-o.sem
			break
		}

		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			defer func() { <-o.sem }()
			o.execute(ctx, id)
		}(id)
	}

	wg.Wait()
	o.logger.Info("queue drained")
	return nil
}

// GetTask returns a copy of the task with the given id.
func (o *Orchestrator) GetTask(id uuid.UUID) (Task, error) {
	return o.store.Get(id)
}

// GetAllTasks returns a point-in-time snapshot of all tasks partitioned
// by status. Safe to call at any time, including mid-drain.
func (o *Orchestrator) GetAllTasks() Snapshot {
	return snapshot(o.store)
}

// GetCapabilities returns the names of the enabled capabilities.
func (o *Orchestrator) GetCapabilities() []string {
	return o.registry.Capabilities()
}

// execute runs one dispatched task to a terminal status. This goroutine
// is the task's only writer for its entire Running phase; a timed-out
// collaborator invocation is abandoned, and its late result (delivered
// on the buffered channel) is discarded, never retried.
func (o *Orchestrator) execute(ctx context.Context, id uuid.UUID) {
	t, err := o.store.Get(id)
	if err != nil {
		o.logger.Error("dispatched task missing from store", "task_id", id, "error", err)
		return
	}

	logger := o.logger.With("task_id", t.ID, "task_type", t.Type)

	collaborator, enabled := o.registry.Resolve(t.Type)
	if !enabled {
		// Configuration-kind failure: no collaborator call is made.
		errMsg := fmt.Sprintf("%s: %s", ErrCapabilityDisabled.Error(), t.Type)
		if err := o.store.fail(id, errMsg); err != nil {
			logger.Error("failed to record configuration failure", "error", err)
			return
		}
		logger.Warn("task failed: capability disabled")
		o.emit(ctx, id, t.Type, StatusFailed, errMsg)
		return
	}

	if err := o.store.markRunning(id); err != nil {
		logger.Error("failed to mark task running", "error", err)
		return
	}
	logger.Info("executing task")
	o.emit(ctx, id, t.Type, StatusRunning, "")

	execCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	type outcome struct {
		result map[string]any
		err    error
	}

	// Buffered so an abandoned invocation can always deliver its late
	// result and exit instead of leaking.
	outcomeCh := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				outcomeCh <- outcome{err: fmt.Errorf("collaborator panicked: %v", r)}
			}
		}()
		result, err := collaborator.Execute(execCtx, t.Command, t.Options)
		outcomeCh <- outcome{result: result, err: err}
	}()

	select {
	case out := <-outcomeCh:
		switch {
		case errors.Is(out.err, context.DeadlineExceeded):
			o.recordTimeout(ctx, logger, id, t.Type)
		case out.err != nil:
			errMsg := redact.Error(out.err)
			if err := o.store.fail(id, errMsg); err != nil {
				logger.Error("failed to record task failure", "error", err)
				return
			}
			logger.Error("task failed", "error", errMsg)
			o.emit(ctx, id, t.Type, StatusFailed, errMsg)
		default:
			if err := o.store.complete(id, out.result); err != nil {
				logger.Error("failed to record task completion", "error", err)
				return
			}
			logger.Info("task completed")
			o.emit(ctx, id, t.Type, StatusCompleted, "")
		}

	case <-execCtx.Done():
		// Deadline elapsed with no answer. The slot is released when
		// this function returns regardless of whether the collaborator
		// has actually stopped.
		o.recordTimeout(ctx, logger, id, t.Type)
	}
}

func (o *Orchestrator) recordTimeout(ctx context.Context, logger *slog.Logger, id uuid.UUID, taskType Type) {
	if err := o.store.timeout(id); err != nil {
		logger.Error("failed to record task timeout", "error", err)
		return
	}
	logger.Warn("task timed out", "timeout", o.timeout)
	o.emit(ctx, id, taskType, StatusTimedOut, timeoutErrorMessage)
}

// emit publishes a lifecycle event. Emit failures are logged and never
// affect the task.
func (o *Orchestrator) emit(ctx context.Context, id uuid.UUID, taskType Type, status Status, errMsg string) {
	if o.emitter == nil {
		return
	}
	event := events.NewTaskEvent(id, string(taskType), string(status), errMsg)
	if err := o.emitter.EmitEvent(ctx, event); err != nil {
		o.logger.Warn("event emission failed", "task_id", id, "error", err)
	}
}
