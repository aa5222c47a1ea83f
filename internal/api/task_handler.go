package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/dmaher/maestro/internal/api/shared"
	"github.com/dmaher/maestro/internal/task"
)

// Orchestrator is the slice of the task core the handlers depend on.
type Orchestrator interface {
	QueueTask(taskType task.Type, command string, options map[string]any) (uuid.UUID, error)
	ProcessQueue(ctx context.Context) error
	GetAllTasks() task.Snapshot
	GetCapabilities() []string
}

// TaskHandler handles task-related HTTP requests.
type TaskHandler struct {
	orchestrator Orchestrator
	validator    *validator.Validate
	logger       *slog.Logger
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(orchestrator Orchestrator, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		orchestrator: orchestrator,
		validator:    validator.New(),
		logger:       logger.With("component", "task_handler"),
	}
}

// QueueTask handles POST /api/tasks requests. Submission is
// non-blocking: the task id returns immediately and execution waits for
// the next queue drain.
func (h *TaskHandler) QueueTask(w http.ResponseWriter, r *http.Request) {
	var req QueueTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	taskType, err := task.ParseType(req.Type)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Unknown task type: "+req.Type)
		return
	}

	id, err := h.orchestrator.QueueTask(taskType, req.Command, req.Options)
	if err != nil {
		if errors.Is(err, task.ErrUnknownTaskType) {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Unknown task type: "+req.Type)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to queue task", err)
		return
	}

	// 202 Accepted: processing happens asynchronously.
	shared.RespondWithJSON(w, r, http.StatusAccepted, QueueTaskResponse{
		TaskID: id.String(),
		Status: string(task.StatusPending),
	})
}

// ProcessQueue handles POST /api/tasks/process requests. It drains the
// queue under the concurrency bound and responds with the resulting
// snapshot once the queue is empty.
func (h *TaskHandler) ProcessQueue(w http.ResponseWriter, r *http.Request) {
	if err := h.orchestrator.ProcessQueue(r.Context()); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Queue processing interrupted", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, snapshotToResponse(h.orchestrator.GetAllTasks()))
}

// GetAllTasks handles GET /api/tasks requests with a point-in-time
// status-partitioned snapshot.
func (h *TaskHandler) GetAllTasks(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, snapshotToResponse(h.orchestrator.GetAllTasks()))
}

// GetCapabilities handles GET /api/capabilities requests.
func (h *TaskHandler) GetCapabilities(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, CapabilitiesResponse{
		Capabilities: h.orchestrator.GetCapabilities(),
	})
}
