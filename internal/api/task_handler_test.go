package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmaher/maestro/internal/task"
)

// mockOrchestrator implements the Orchestrator interface for handler tests.
type mockOrchestrator struct {
	queuedType    task.Type
	queuedCommand string
	queuedOptions map[string]any
	queueErr      error
	processErr    error
	processed     bool
	snapshot      task.Snapshot
	capabilities  []string
}

func (m *mockOrchestrator) QueueTask(taskType task.Type, command string, options map[string]any) (uuid.UUID, error) {
	if m.queueErr != nil {
		return uuid.Nil, m.queueErr
	}
	m.queuedType = taskType
	m.queuedCommand = command
	m.queuedOptions = options
	return uuid.New(), nil
}

func (m *mockOrchestrator) ProcessQueue(ctx context.Context) error {
	m.processed = true
	return m.processErr
}

func (m *mockOrchestrator) GetAllTasks() task.Snapshot {
	return m.snapshot
}

func (m *mockOrchestrator) GetCapabilities() []string {
	return m.capabilities
}

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
}

func TestQueueTaskHandler(t *testing.T) {
	mock := &mockOrchestrator{}
	handler := NewTaskHandler(mock, setupTestLogger())

	body := `{"type":"web_search","command":"golang news","options":{"num_results":3,"priority":8}}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.QueueTask(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)

	var resp QueueTaskResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.TaskID)
	assert.Equal(t, "pending", resp.Status)

	assert.Equal(t, task.TypeWebSearch, mock.queuedType)
	assert.Equal(t, "golang news", mock.queuedCommand)
	assert.Equal(t, float64(3), mock.queuedOptions["num_results"])
}

func TestQueueTaskHandlerValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"type":`},
		{"missing type", `{"command":"do it"}`},
		{"missing command", `{"type":"research"}`},
		{"unknown type", `{"type":"mind_reading","command":"guess"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mock := &mockOrchestrator{}
			handler := NewTaskHandler(mock, setupTestLogger())

			req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(tc.body))
			w := httptest.NewRecorder()

			handler.QueueTask(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Empty(t, mock.queuedCommand, "nothing should be queued on a bad request")
		})
	}
}

func TestProcessQueueHandler(t *testing.T) {
	now := time.Now().UTC()
	mock := &mockOrchestrator{
		snapshot: task.Snapshot{
			Completed: []task.Task{{
				ID:          uuid.New(),
				Type:        task.TypeWebSearch,
				Command:     "done already",
				Status:      task.StatusCompleted,
				Priority:    5,
				Result:      map[string]any{"hits": 2},
				CreatedAt:   now,
				StartedAt:   now,
				CompletedAt: now,
			}},
		},
	}
	handler := NewTaskHandler(mock, setupTestLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/tasks/process", nil)
	w := httptest.NewRecorder()

	handler.ProcessQueue(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mock.processed)

	var resp SnapshotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Completed, 1)
	assert.Equal(t, "done already", resp.Completed[0].Command)
	assert.NotNil(t, resp.Completed[0].CompletedAt)
	assert.NotNil(t, resp.Completed[0].StartedAt)
	assert.Empty(t, resp.Pending)
}

func TestProcessQueueHandlerError(t *testing.T) {
	mock := &mockOrchestrator{processErr: errors.New("context canceled")}
	handler := NewTaskHandler(mock, setupTestLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/tasks/process", nil)
	w := httptest.NewRecorder()

	handler.ProcessQueue(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetAllTasksHandler(t *testing.T) {
	mock := &mockOrchestrator{
		snapshot: task.Snapshot{
			Pending: []task.Task{{
				ID:        uuid.New(),
				Type:      task.TypeVoice,
				Command:   "say hello",
				Status:    task.StatusPending,
				Priority:  5,
				CreatedAt: time.Now().UTC(),
			}},
		},
	}
	handler := NewTaskHandler(mock, setupTestLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	w := httptest.NewRecorder()

	handler.GetAllTasks(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp SnapshotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Pending, 1)
	assert.Equal(t, "voice", resp.Pending[0].Type)
	assert.Nil(t, resp.Pending[0].StartedAt, "pending tasks have no start time")

	// Empty partitions are arrays, never null.
	assert.Contains(t, w.Body.String(), `"running":[]`)
}

func TestGetCapabilitiesHandler(t *testing.T) {
	mock := &mockOrchestrator{capabilities: []string{"web_search", "analytics"}}
	handler := NewTaskHandler(mock, setupTestLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/capabilities", nil)
	w := httptest.NewRecorder()

	handler.GetCapabilities(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp CapabilitiesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"web_search", "analytics"}, resp.Capabilities)
}
