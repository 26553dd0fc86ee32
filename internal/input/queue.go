// Package input turns keyboard events into queued player commands.
package input

import (
	"sync"

	"github.com/samdwyer/stonefall/internal/world"
)

// Queue buffers commands between the input goroutine and the game loop.
type Queue struct {
	mu      sync.Mutex
	pending []world.Command
}

// NewQueue creates an empty command queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends a command.
func (q *Queue) Push(c world.Command) {
	q.mu.Lock()
	q.pending = append(q.pending, c)
	q.mu.Unlock()
}

// Drain empties the queue and returns its commands newest first.
// Several keys pressed within one tick are applied in reverse order.
func (q *Queue) Drain() []world.Command {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) == 0 {
		return nil
	}
	out := make([]world.Command, 0, len(q.pending))
	for len(q.pending) > 0 {
		last := len(q.pending) - 1
		out = append(out, q.pending[last])
		q.pending = q.pending[:last]
	}
	return out
}

// Len returns the number of pending commands.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Clear drops all pending commands.
func (q *Queue) Clear() {
	q.mu.Lock()
	q.pending = q.pending[:0]
	q.mu.Unlock()
}
