package task

import "sort"

// Snapshot is a point-in-time view of every known task partitioned by
// status. Partitions are exhaustive (every task appears) and disjoint
// (each task appears exactly once). Tasks within a partition are sorted
// by creation time for stable output.
type Snapshot struct {
	Pending   []Task `json:"pending"`
	Running   []Task `json:"running"`
	Completed []Task `json:"completed"`
	Failed    []Task `json:"failed"`
	TimedOut  []Task `json:"timed_out"`
}

// Total returns the number of tasks across all partitions.
func (s Snapshot) Total() int {
	return len(s.Pending) + len(s.Running) + len(s.Completed) + len(s.Failed) + len(s.TimedOut)
}

// snapshot builds a Snapshot from the store's current contents. It only
// reads copies, so it is safe to call at any time, including while a
// drain is in progress.
func snapshot(store *Store) Snapshot {
	var snap Snapshot
	for _, t := range store.List() {
		switch t.Status {
		case StatusPending:
			snap.Pending = append(snap.Pending, t)
		case StatusRunning:
			snap.Running = append(snap.Running, t)
		case StatusCompleted:
			snap.Completed = append(snap.Completed, t)
		case StatusFailed:
			snap.Failed = append(snap.Failed, t)
		case StatusTimedOut:
			snap.TimedOut = append(snap.TimedOut, t)
		}
	}

	for _, part := range [][]Task{snap.Pending, snap.Running, snap.Completed, snap.Failed, snap.TimedOut} {
		sort.Slice(part, func(i, j int) bool {
			return part[i].CreatedAt.Before(part[j].CreatedAt)
		})
	}

	return snap
}
