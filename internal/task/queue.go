package task

import (
	"container/heap"
	"sync"

	"github.com/google/uuid"
)

// Queue orders Pending tasks for dispatch: higher priority first, and
// stable FIFO submission order within equal priority. It holds only
// task ids plus ordering keys; the store remains the source of truth
// for task state.
type Queue struct {
	mu   sync.Mutex
	h    pendingHeap
	nseq uint64
}

// NewQueue creates an empty scheduling queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push enqueues a task for later dispatch.
func (q *Queue) Push(id uuid.UUID, priority int) {
	q.mu.Lock()
	defer q.mu.Unlock()

	heap.Push(&q.h, pendingEntry{id: id, priority: priority, seq: q.nseq})
	q.nseq++
}

// Pop removes and returns the id of the next task to dispatch. The
// second return value is false when the queue is empty.
func (q *Queue) Pop() (uuid.UUID, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.h.Len() == 0 {
		return uuid.Nil, false
	}
	entry := heap.Pop(&q.h).(pendingEntry)
	return entry.id, true
}

// Len returns the number of queued tasks.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.h.Len()
}

// pendingEntry is one queued task: its id, its priority, and the
// monotonically increasing sequence number that breaks priority ties in
// submission order.
type pendingEntry struct {
	id       uuid.UUID
	priority int
	seq      uint64
}

type pendingHeap []pendingEntry

func (h pendingHeap) Len() int { return len(h) }

func (h pendingHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority > h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h pendingHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *pendingHeap) Push(x any) {
	*h = append(*h, x.(pendingEntry))
}

func (h *pendingHeap) Pop() any {
	old := *h
	n := len(old)
	entry := old[n-1]
	*h = old[:n-1]
	return entry
}
