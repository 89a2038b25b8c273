package core

import (
	"errors"
	"testing"
	"time"
)

func queueItem() *workItem {
	return &workItem{kind: workValue, future: newFuture()}
}

// TestWorkQueue_FIFOOrder tests strict FIFO removal
// Main test items:
// 1. Items come out in exactly the order they were pushed
func TestWorkQueue_FIFOOrder(t *testing.T) {
	q := newWorkQueue()

	items := make([]*workItem, 10)
	for i := range items {
		items[i] = queueItem()
		if err := q.push(items[i]); err != nil {
			t.Fatalf("push(%d) failed: %v", i, err)
		}
	}

	for i := range items {
		got, ok := q.pop()
		if !ok {
			t.Fatalf("pop(%d) reported closed queue", i)
		}
		if got != items[i] {
			t.Fatalf("pop(%d) returned wrong item", i)
		}
	}
	if q.len() != 0 {
		t.Fatalf("len() = %d after draining, want 0", q.len())
	}
}

// TestWorkQueue_WakeOnPush tests the producer-to-consumer wake signal
// Main test items:
// 1. A consumer blocked on an empty queue is woken by the next push
// 2. No lost wakeup when the push races the consumer's wait
func TestWorkQueue_WakeOnPush(t *testing.T) {
	q := newWorkQueue()

	popped := make(chan *workItem, 1)
	go func() {
		it, ok := q.pop()
		if ok {
			popped <- it
		}
	}()

	// Give the consumer a moment to block on the empty queue.
	time.Sleep(20 * time.Millisecond)

	want := queueItem()
	if err := q.push(want); err != nil {
		t.Fatalf("push failed: %v", err)
	}

	select {
	case got := <-popped:
		if got != want {
			t.Fatal("consumer woke with the wrong item")
		}
	case <-time.After(time.Second):
		t.Fatal("consumer was not woken by push")
	}
}

// TestWorkQueue_CloseWakesBlockedConsumer tests hardened shutdown
// Main test items:
// 1. close() wakes a consumer blocked on an empty queue
// 2. pop() reports closed without an item
func TestWorkQueue_CloseWakesBlockedConsumer(t *testing.T) {
	q := newWorkQueue()

	done := make(chan bool, 1)
	go func() {
		_, ok := q.pop()
		done <- ok
	}()

	time.Sleep(20 * time.Millisecond)
	q.close()

	select {
	case ok := <-done:
		if ok {
			t.Fatal("pop() = ok after close, want closed signal")
		}
	case <-time.After(time.Second):
		t.Fatal("close() did not wake the blocked consumer")
	}
}

// TestWorkQueue_PushAfterCloseRejected tests closed-queue submission
func TestWorkQueue_PushAfterCloseRejected(t *testing.T) {
	q := newWorkQueue()
	q.close()

	if err := q.push(queueItem()); !errors.Is(err, ErrExecutorClosed) {
		t.Fatalf("push() after close = %v, want ErrExecutorClosed", err)
	}
}

// TestWorkQueue_DrainReturnsLeftovers tests leftover handoff after close
// Main test items:
// 1. pop() stops handing out items once closed, even with items queued
// 2. drain() returns the leftovers exactly once
func TestWorkQueue_DrainReturnsLeftovers(t *testing.T) {
	q := newWorkQueue()

	for i := 0; i < 3; i++ {
		if err := q.push(queueItem()); err != nil {
			t.Fatalf("push failed: %v", err)
		}
	}
	q.close()

	if _, ok := q.pop(); ok {
		t.Fatal("pop() returned an item after close")
	}

	if got := len(q.drain()); got != 3 {
		t.Fatalf("drain() = %d items, want 3", got)
	}
	if got := len(q.drain()); got != 0 {
		t.Fatalf("second drain() = %d items, want 0", got)
	}
}

// TestWorkQueue_CompactionPreservesContent tests capacity compaction
// Main test items:
// 1. Growing past compactMinCap then shrinking keeps remaining items intact
func TestWorkQueue_CompactionPreservesContent(t *testing.T) {
	q := newWorkQueue()

	n := compactMinCap * 2
	items := make([]*workItem, n)
	for i := range items {
		items[i] = queueItem()
		if err := q.push(items[i]); err != nil {
			t.Fatalf("push failed: %v", err)
		}
	}

	for i := 0; i < n; i++ {
		got, ok := q.pop()
		if !ok || got != items[i] {
			t.Fatalf("pop(%d) lost ordering across compaction", i)
		}
	}
}
