// Package main implements the entry point for the maestro server, which
// exposes the task orchestration engine over HTTP: callers queue
// capability tasks (web search, device control, research, analytics,
// presentations, voice), trigger queue drains, and read status
// snapshots.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmaher/maestro/internal/capability"
	"github.com/dmaher/maestro/internal/config"
	"github.com/dmaher/maestro/internal/events"
	"github.com/dmaher/maestro/internal/platform/logger"
	"github.com/dmaher/maestro/internal/task"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// run loads configuration, wires the orchestrator and its collaborators,
// and serves the HTTP API until interrupted.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)
	appLogger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"max_concurrent_tasks", cfg.Orchestrator.MaxConcurrentTasks,
		"task_timeout_seconds", cfg.Orchestrator.TaskTimeoutSeconds)

	orchestrator, err := buildOrchestrator(context.Background(), cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to build orchestrator: %w", err)
	}
	appLogger.Info("capabilities initialized", "enabled", orchestrator.GetCapabilities())

	router := setupRouter(orchestrator, appLogger)
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info("server listening", "addr", server.Addr)
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-stop:
		appLogger.Info("shutting down", "signal", sig.String())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown failed: %w", err)
		}
	}

	appLogger.Info("server stopped")
	return nil
}

// buildOrchestrator constructs the capability adapters, binds them into
// a registry per the configured enable flags, and creates the
// orchestrator with a logging lifecycle event handler.
func buildOrchestrator(ctx context.Context, cfg *config.Config, appLogger *slog.Logger) (*task.Orchestrator, error) {
	research, err := capability.NewResearch(ctx, cfg.Research, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize research capability: %w", err)
	}

	adapters := task.Adapters{
		WebSearch:     capability.NewWebSearch(cfg.Search, appLogger),
		DeviceControl: capability.NewDeviceControl(appLogger),
		Research:      research,
		Analytics:     capability.NewAnalytics(appLogger),
		Presentation:  capability.NewPresentation(appLogger),
		Voice:         capability.NewVoice(appLogger),
	}
	registry := task.NewRegistry(cfg.Capabilities, adapters)

	emitter := events.NewInMemoryEventEmitter(appLogger)
	emitter.RegisterHandler(events.NewLoggingHandler(appLogger))

	return task.New(cfg.Orchestrator, registry, emitter, appLogger), nil
}
