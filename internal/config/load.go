package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables and an optional
// config file. Environment variables take precedence over values from
// config files. Returns a populated Config struct or an error if
// loading or validation fails.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	// Optional config.yaml alongside the binary or in the working
	// directory. A missing file is fine; a malformed one is not.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables use the MAESTRO_ prefix with underscores,
	// e.g. MAESTRO_ORCHESTRATOR_MAX_CONCURRENT_TASKS=10.
	v.SetEnvPrefix("MAESTRO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers the default value for every setting so a bare
// environment still yields a runnable configuration.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")

	v.SetDefault("orchestrator.max_concurrent_tasks", 5)
	v.SetDefault("orchestrator.task_timeout_seconds", 300)

	v.SetDefault("capabilities.web_search", true)
	v.SetDefault("capabilities.device_control", true)
	v.SetDefault("capabilities.research", true)
	v.SetDefault("capabilities.analytics", true)
	v.SetDefault("capabilities.presentation", true)
	v.SetDefault("capabilities.voice", true)

	v.SetDefault("search.provider", "duckduckgo")
	v.SetDefault("research.gemini_api_key", "")
}
