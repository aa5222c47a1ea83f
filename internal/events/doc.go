// Package events provides the task lifecycle event system. The
// orchestrator emits one event per task status transition; handlers
// subscribe through the EventEmitter interface. Event delivery is
// best-effort: a failing handler is logged and never affects task
// execution.
package events
