// Package task implements the asynchronous task-orchestration core:
// an in-memory task store, a priority queue, a capability registry, and
// a dispatcher that drains the queue under a bounded concurrency limit.
//
// Tasks move monotonically through Pending → Running → one of the
// terminal statuses (Completed, Failed, TimedOut) and never back.
// Submission (QueueTask) is non-blocking; execution happens during an
// explicit ProcessQueue drain, which runs up to MaxConcurrentTasks
// collaborator invocations concurrently and returns once the queue is
// empty. Snapshots of all tasks partitioned by status can be taken at
// any time, including mid-drain.
package task
