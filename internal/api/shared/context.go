package shared

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"log/slog"
	"time"
)

// ContextKey is the type for request-scoped context values.
type ContextKey string

const (
	// TraceIDKey holds the request trace ID in the context.
	TraceIDKey ContextKey = "traceID"

	// traceIDBytes is the trace ID length in bytes (32 hex characters).
	traceIDBytes = 16
)

// SetTraceID attaches a freshly generated trace ID to the context so
// logs and error responses for the same request can be correlated.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID returns the trace ID from the context, or "" if unset.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

func generateTraceID() string {
	b := make([]byte, traceIDBytes)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing is effectively fatal elsewhere; here a
		// time-derived ID keeps request correlation working.
		slog.Error("failed to generate random trace ID, using time-based fallback",
			"error", err)
		binary.BigEndian.PutUint64(b[:8], uint64(time.Now().UnixNano()))
		binary.BigEndian.PutUint64(b[8:], uint64(time.Now().UnixMicro()))
	}
	return hex.EncodeToString(b)
}
