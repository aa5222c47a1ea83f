package task

import (
	"github.com/dmaher/maestro/internal/config"
)

// Adapters bundles the collaborator for each capability kind. Any entry
// may be nil when its capability is disabled; the registry treats a nil
// collaborator as disabled regardless of the config flag.
type Adapters struct {
	WebSearch     Collaborator
	DeviceControl Collaborator
	Research      Collaborator
	Analytics     Collaborator
	Presentation  Collaborator
	Voice         Collaborator
}

// Registry binds each capability kind to its collaborator based on the
// enable flags read at startup. It is constructed once and read-only
// afterward; there is no runtime reconfiguration.
type Registry struct {
	entries map[Type]registryEntry
}

type registryEntry struct {
	enabled      bool
	collaborator Collaborator
}

// NewRegistry builds the capability registry from configuration.
func NewRegistry(cfg config.CapabilityConfig, adapters Adapters) *Registry {
	entries := map[Type]registryEntry{
		TypeWebSearch:     {cfg.WebSearch, adapters.WebSearch},
		TypeDeviceControl: {cfg.DeviceControl, adapters.DeviceControl},
		TypeResearch:      {cfg.Research, adapters.Research},
		TypeAnalytics:     {cfg.Analytics, adapters.Analytics},
		TypePresentation:  {cfg.Presentation, adapters.Presentation},
		TypeVoice:         {cfg.Voice, adapters.Voice},
	}

	for t, e := range entries {
		if e.collaborator == nil {
			e.enabled = false
			entries[t] = e
		}
	}

	return &Registry{entries: entries}
}

// Resolve returns the collaborator bound to the given kind. The second
// return value is false when the capability is disabled or unknown.
func (r *Registry) Resolve(t Type) (Collaborator, bool) {
	e, ok := r.entries[t]
	if !ok || !e.enabled {
		return nil, false
	}
	return e.collaborator, true
}

// Capabilities returns the names of the enabled capabilities in
// declaration order.
func (r *Registry) Capabilities() []string {
	names := make([]string, 0, len(AllTypes))
	for _, t := range AllTypes {
		if e, ok := r.entries[t]; ok && e.enabled {
			names = append(names, string(t))
		}
	}
	return names
}
