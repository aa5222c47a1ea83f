// Package middleware provides HTTP middleware for the task API.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/dmaher/maestro/internal/api/shared"
)

// TraceMiddleware attaches a trace ID to each request's context so
// handler logs and error responses can be correlated. Apply it early
// in the chain.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())

		slog.Debug("request started",
			slog.String("trace_id", shared.GetTraceID(ctx)),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
