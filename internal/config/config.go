package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server       ServerConfig       `mapstructure:"server"       validate:"required"`
	Orchestrator OrchestratorConfig `mapstructure:"orchestrator" validate:"required"`
	Capabilities CapabilityConfig   `mapstructure:"capabilities"`
	Search       SearchConfig       `mapstructure:"search"`
	Research     ResearchConfig     `mapstructure:"research"`
}

// ServerConfig contains all HTTP server related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// OrchestratorConfig contains the task execution settings.
type OrchestratorConfig struct {
	// MaxConcurrentTasks bounds how many tasks may run simultaneously.
	MaxConcurrentTasks int `mapstructure:"max_concurrent_tasks" validate:"required,gte=1"`

	// TaskTimeoutSeconds is the per-task execution deadline.
	TaskTimeoutSeconds int `mapstructure:"task_timeout_seconds" validate:"required,gte=1"`
}

// CapabilityConfig holds the per-capability enable flags. Flags are read
// once at startup; capability availability is fixed for the process
// lifetime.
type CapabilityConfig struct {
	WebSearch     bool `mapstructure:"web_search"`
	DeviceControl bool `mapstructure:"device_control"`
	Research      bool `mapstructure:"research"`
	Analytics     bool `mapstructure:"analytics"`
	Presentation  bool `mapstructure:"presentation"`
	Voice         bool `mapstructure:"voice"`
}

// SearchConfig contains web search adapter settings.
type SearchConfig struct {
	Provider string `mapstructure:"provider" validate:"omitempty,oneof=duckduckgo searx"`
}

// ResearchConfig contains research adapter settings.
type ResearchConfig struct {
	// GeminiAPIKey is optional; the research adapter degrades to offline
	// outlines when no key is configured.
	GeminiAPIKey string `mapstructure:"gemini_api_key"`
}
