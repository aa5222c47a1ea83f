package capability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresentationExecute(t *testing.T) {
	p := NewPresentation(setupTestLogger())

	result, err := p.Execute(context.Background(), "Quarterly Review", map[string]any{
		"content": []any{"Revenue is up", "Costs are down"},
		"style":   "minimal",
		"theme":   "dark",
	})
	require.NoError(t, err)

	assert.Equal(t, "presentation", result["type"])
	assert.Equal(t, "Quarterly Review", result["title"])
	assert.Equal(t, "html", result["format"])
	// Title slide plus one per content entry.
	assert.Equal(t, 3, result["slide_count"])

	doc, ok := result["document"].(string)
	require.True(t, ok)
	assert.Contains(t, doc, "<h1>Quarterly Review</h1>")
	assert.Contains(t, doc, "<p>Revenue is up</p>")
	assert.Contains(t, doc, "<p>Costs are down</p>")
	assert.Contains(t, doc, `class="deck dark minimal"`)
}

func TestPresentationExecuteEscapesContent(t *testing.T) {
	p := NewPresentation(setupTestLogger())

	result, err := p.Execute(context.Background(), "<script>alert(1)</script>", map[string]any{
		"content": []any{"<b>bold claim</b>"},
	})
	require.NoError(t, err)

	doc := result["document"].(string)
	assert.NotContains(t, doc, "<script>")
	assert.NotContains(t, doc, "<b>bold claim</b>")
}

func TestPresentationExecuteDefaults(t *testing.T) {
	p := NewPresentation(setupTestLogger())

	result, err := p.Execute(context.Background(), "Empty Deck", nil)
	require.NoError(t, err)

	assert.Equal(t, "professional", result["style"])
	assert.Equal(t, "default", result["theme"])
	assert.Equal(t, 1, result["slide_count"])
}
