package core

import (
	"context"
	"sync"
)

// FutureState represents the lifecycle state of a Future.
// A future starts Pending and makes exactly one transition to a terminal
// state (Resolved, Failed, or Cancelled). Transitions are irreversible.
type FutureState int32

const (
	// FuturePending indicates the work item has not settled yet.
	FuturePending FutureState = iota

	// FutureResolved indicates the work item completed with a value.
	FutureResolved

	// FutureFailed indicates the work item returned or raised an error.
	FutureFailed

	// FutureCancelled indicates the item's timeout committed before the
	// item completed.
	FutureCancelled
)

func (s FutureState) String() string {
	switch s {
	case FuturePending:
		return "pending"
	case FutureResolved:
		return "resolved"
	case FutureFailed:
		return "failed"
	case FutureCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Future is a single-assignment result cell shared between the worker (sole
// writer, together with the item's timeout timer) and the submitting caller
// (sole reader).
//
// The first successful transition out of FuturePending wins; the worker's
// resolve/fail attempt and the timer's cancel attempt are independent callers
// of the same guarded compare-and-set, so the timeout race needs no further
// arbitration.
type Future struct {
	mu    sync.Mutex
	state FutureState
	value any
	err   error
	done  chan struct{}
}

var _ Awaitable = (*Future)(nil)

func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// failedFuture returns a future that settled as Failed at birth.
// Used to fail fast on usage errors without changing the submission shape.
func failedFuture(err error) *Future {
	f := newFuture()
	f.fail(err)
	return f
}

// State returns the current state of the future.
func (f *Future) State() FutureState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Done returns a channel that is closed when the future settles.
// Multiple goroutines may safely wait on it.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Result returns the settled value and error. It is meaningful only after
// Done is closed; while pending it returns nil, nil. A cancelled future
// reports ErrCancelled, a resolved future may legitimately carry a nil value.
func (f *Future) Result() (any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value, f.err
}

// Await blocks until the future settles or ctx is done, whichever comes
// first. A ctx error aborts only this wait; the future itself stays live.
func (f *Future) Await(ctx context.Context) (any, error) {
	select {
	case <-f.done:
		return f.Result()
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// settle is the single guarded transition out of FuturePending.
// Returns false without effect if the future already settled.
func (f *Future) settle(state FutureState, value any, err error) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != FuturePending {
		return false
	}
	f.state = state
	f.value = value
	f.err = err
	close(f.done)
	return true
}

func (f *Future) resolve(value any) bool {
	return f.settle(FutureResolved, value, nil)
}

func (f *Future) fail(err error) bool {
	return f.settle(FutureFailed, nil, err)
}

func (f *Future) cancel() bool {
	return f.settle(FutureCancelled, nil, ErrCancelled)
}
