package core

import "sync"

const (
	defaultQueueCap     = 16
	compactMinCap       = 64 // Don't compact if capacity is less than this
	compactShrinkFactor = 4  // Trigger compaction when len < cap/4
)

// workQueue is a mutex-guarded FIFO shared between arbitrary producer
// goroutines and exactly one consumer. A condition variable carries the wake
// signal; the consumer's empty-check and wait happen under the same mutex,
// so an enqueue between the check and the wait cannot lose its wakeup.
type workQueue struct {
	mu     sync.Mutex
	wake   *sync.Cond
	items  []*workItem
	closed bool
}

func newWorkQueue() *workQueue {
	q := &workQueue{
		items: make([]*workItem, 0, defaultQueueCap),
	}
	q.wake = sync.NewCond(&q.mu)
	return q
}

// push appends an item and wakes the consumer on the empty-to-non-empty
// edge. With a single consumer, no other push needs to signal.
func (q *workQueue) push(it *workItem) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrExecutorClosed
	}

	q.items = append(q.items, it)
	if len(q.items) == 1 {
		q.wake.Signal()
	}
	return nil
}

// pop blocks until an item is available or the queue is closed.
// Once closed, pop returns false even if items remain: the consumer stops
// dequeuing and drain settles the leftovers.
func (q *workQueue) pop() (*workItem, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.items) == 0 && !q.closed {
		q.wake.Wait()
	}
	if q.closed {
		return nil, false
	}

	it := q.items[0]
	// Zero out the element in the underlying array to prevent memory leak
	q.items[0] = nil
	q.items = q.items[1:]
	q.maybeCompactLocked()

	return it, true
}

// close marks the queue closed and wakes the consumer so a worker blocked on
// an empty queue observes the stop promptly.
func (q *workQueue) close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	q.wake.Broadcast()
}

// drain removes and returns every remaining item. Called after the consumer
// exits so the leftovers' futures can be failed instead of leaking waiters.
func (q *workQueue) drain() []*workItem {
	q.mu.Lock()
	defer q.mu.Unlock()

	leftovers := q.items
	q.items = make([]*workItem, 0, defaultQueueCap)
	return leftovers
}

func (q *workQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

func (q *workQueue) maybeCompactLocked() {
	n := len(q.items)
	c := cap(q.items)

	if c < compactMinCap {
		return
	}
	if n == 0 {
		q.items = make([]*workItem, 0, defaultQueueCap)
		return
	}
	if n*compactShrinkFactor >= c {
		return
	}

	newCap := max(max(c/2, defaultQueueCap), n)

	compacted := make([]*workItem, n, newCap)
	copy(compacted, q.items)
	q.items = compacted
}
