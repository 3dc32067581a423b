package main

import (
	"sync"
)

// WorkQueue hands a fixed set of file paths to upload workers. Pop is the only
// way in or out: workers never see the backing slice, so the exactly-once
// guarantee holds no matter how many of them race for items.
type WorkQueue struct {
	lock      sync.Mutex
	pending   []string
	completed int
	total     int
}

func NewWorkQueue(paths []string) *WorkQueue {
	pending := make([]string, len(paths))
	copy(pending, paths)
	return &WorkQueue{
		pending: pending,
		total:   len(pending),
	}
}

// Pop removes one path and returns it together with its 1-based sequence
// number for progress display. ok is false once the queue is drained.
func (q *WorkQueue) Pop() (path string, n int, ok bool) {
	q.lock.Lock()
	defer q.lock.Unlock()

	if len(q.pending) == 0 {
		return "", q.completed, false
	}

	path = q.pending[len(q.pending)-1]
	q.pending = q.pending[:len(q.pending)-1]
	q.completed++

	return path, q.completed, true
}

// Completed reports how many items have been handed out so far. Display only.
func (q *WorkQueue) Completed() int {
	q.lock.Lock()
	defer q.lock.Unlock()
	return q.completed
}

func (q *WorkQueue) Total() int {
	return q.total
}
