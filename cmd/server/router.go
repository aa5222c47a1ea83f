package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmaher/maestro/internal/api"
	apiMiddleware "github.com/dmaher/maestro/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func setupRouter(orchestrator api.Orchestrator, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	taskHandler := api.NewTaskHandler(orchestrator, logger)

	r.Route("/api", func(r chi.Router) {
		r.Post("/tasks", taskHandler.QueueTask)
		r.Post("/tasks/process", taskHandler.ProcessQueue)
		r.Get("/tasks", taskHandler.GetAllTasks)
		r.Get("/capabilities", taskHandler.GetCapabilities)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
