package shared

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type submitPayload struct {
	Type    string         `json:"type"`
	Command string         `json:"command"`
	Options map[string]any `json:"options"`
}

func TestDecodeJSON(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/tasks",
			strings.NewReader(`{"type":"web_search","command":"golang","options":{"num_results":3}}`))

		var payload submitPayload
		require.NoError(t, DecodeJSON(req, &payload))
		assert.Equal(t, "web_search", payload.Type)
		assert.Equal(t, "golang", payload.Command)
		assert.Equal(t, float64(3), payload.Options["num_results"])
	})

	t.Run("unknown top-level field rejected", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/tasks",
			strings.NewReader(`{"type":"web_search","command":"golang","prioritty":9}`))

		var payload submitPayload
		assert.Error(t, DecodeJSON(req, &payload))
	})

	t.Run("arbitrary option keys accepted", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/tasks",
			strings.NewReader(`{"type":"analytics","command":"describe","options":{"data":[1,2],"anything":"goes"}}`))

		var payload submitPayload
		assert.NoError(t, DecodeJSON(req, &payload))
	})

	t.Run("malformed JSON", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/tasks", strings.NewReader(`{"type":`))

		var payload submitPayload
		assert.Error(t, DecodeJSON(req, &payload))
	})

	t.Run("empty body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/tasks", nil)

		var payload submitPayload
		assert.Error(t, DecodeJSON(req, &payload))
	})
}
