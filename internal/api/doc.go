// Package api contains the HTTP handlers exposing the orchestrator
// surface: task submission, queue processing, status snapshots, and the
// enabled capability list. Handlers translate between JSON request/
// response shapes and the task package's domain types; they hold no
// orchestration logic of their own.
package api
