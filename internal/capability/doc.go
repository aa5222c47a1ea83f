// Package capability contains the six capability adapters the
// orchestrator dispatches to: web search, device control, research,
// analytics, presentation generation, and voice processing. Each adapter
// is a thin wrapper over an external tool or service and implements the
// collaborator contract the task core requires: an Execute method taking
// a command string and an options map, returning a result map or an
// error. Adapters honor the context deadline supplied by the dispatcher
// on a best-effort basis.
package capability
