package capability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmaher/maestro/internal/config"
)

func TestNewResearchWithoutKeyRunsInOutlineMode(t *testing.T) {
	r, err := NewResearch(context.Background(), config.ResearchConfig{}, setupTestLogger())
	require.NoError(t, err)
	assert.Nil(t, r.client)
}

func TestResearchExecuteOutlineMode(t *testing.T) {
	r, err := NewResearch(context.Background(), config.ResearchConfig{}, setupTestLogger())
	require.NoError(t, err)

	result, err := r.Execute(context.Background(), "edge computing", map[string]any{"depth": "shallow"})
	require.NoError(t, err)

	assert.Equal(t, "research", result["type"])
	assert.Equal(t, "edge computing", result["topic"])
	assert.Equal(t, "shallow", result["depth"])
	assert.Equal(t, "outline", result["mode"])

	findings := result["research"].(string)
	assert.Contains(t, findings, "edge computing")
	assert.Contains(t, findings, "1. Overview")
	assert.Contains(t, findings, "3. Current State")
	assert.NotContains(t, findings, "4.", "shallow depth stops at three sections")
}

func TestResearchExecuteDepthDefaultsToMedium(t *testing.T) {
	r, err := NewResearch(context.Background(), config.ResearchConfig{}, setupTestLogger())
	require.NoError(t, err)

	result, err := r.Execute(context.Background(), "topic", nil)
	require.NoError(t, err)
	assert.Equal(t, "medium", result["depth"])

	findings := result["research"].(string)
	assert.Contains(t, findings, "5. Analysis")
}

func TestResearchExecuteRejectsUnknownDepth(t *testing.T) {
	r, err := NewResearch(context.Background(), config.ResearchConfig{}, setupTestLogger())
	require.NoError(t, err)

	_, err = r.Execute(context.Background(), "topic", map[string]any{"depth": "bottomless"})
	assert.ErrorContains(t, err, "unknown research depth")
}
