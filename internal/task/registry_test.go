package task

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmaher/maestro/internal/config"
)

// stubCollaborator implements the Collaborator contract for tests.
type stubCollaborator struct {
	execFn func(ctx context.Context, command string, options map[string]any) (map[string]any, error)
	calls  int
}

func (s *stubCollaborator) Execute(ctx context.Context, command string, options map[string]any) (map[string]any, error) {
	s.calls++
	if s.execFn != nil {
		return s.execFn(ctx, command, options)
	}
	return map[string]any{"ok": true}, nil
}

func allEnabled() config.CapabilityConfig {
	return config.CapabilityConfig{
		WebSearch:     true,
		DeviceControl: true,
		Research:      true,
		Analytics:     true,
		Presentation:  true,
		Voice:         true,
	}
}

func stubAdapters() Adapters {
	return Adapters{
		WebSearch:     &stubCollaborator{},
		DeviceControl: &stubCollaborator{},
		Research:      &stubCollaborator{},
		Analytics:     &stubCollaborator{},
		Presentation:  &stubCollaborator{},
		Voice:         &stubCollaborator{},
	}
}

func TestRegistryCapabilitiesMatchConfiguration(t *testing.T) {
	registry := NewRegistry(allEnabled(), stubAdapters())

	assert.Equal(t, []string{
		"web_search", "device_control", "research",
		"analytics", "presentation", "voice",
	}, registry.Capabilities())
}

func TestRegistryDisabledFlagsExcluded(t *testing.T) {
	cfg := allEnabled()
	cfg.DeviceControl = false
	cfg.Voice = false

	registry := NewRegistry(cfg, stubAdapters())

	assert.Equal(t, []string{"web_search", "research", "analytics", "presentation"},
		registry.Capabilities())

	_, ok := registry.Resolve(TypeDeviceControl)
	assert.False(t, ok)
	_, ok = registry.Resolve(TypeVoice)
	assert.False(t, ok)

	collab, ok := registry.Resolve(TypeWebSearch)
	require.True(t, ok)
	assert.NotNil(t, collab)
}

func TestRegistryNilCollaboratorTreatedAsDisabled(t *testing.T) {
	adapters := stubAdapters()
	adapters.Research = nil

	registry := NewRegistry(allEnabled(), adapters)

	_, ok := registry.Resolve(TypeResearch)
	assert.False(t, ok)
	assert.NotContains(t, registry.Capabilities(), "research")
}

func TestParseType(t *testing.T) {
	for _, kind := range AllTypes {
		parsed, err := ParseType(string(kind))
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}

	_, err := ParseType("teleportation")
	assert.ErrorIs(t, err, ErrUnknownTaskType)
}
