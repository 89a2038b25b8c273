package core

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"
)

// AffinityExecutor runs every submitted work item on one dedicated goroutine,
// in strict FIFO submission order, with per-item timeout cancellation.
// Arbitrary goroutines may submit concurrently; submission never blocks.
//
// Use cases:
// 1. Non-thread-safe resources that must be touched from one goroutine
// 2. CGO calls that require Thread Local Storage
// 3. Libraries with goroutine-local state, UI/COM-affine objects
//
// The queue mutex is held only for enqueue/dequeue bookkeeping, never across
// an item's execution, so producers keep enqueuing while one item runs.
type AffinityExecutor struct {
	queue *workQueue

	name         string
	logger       Logger
	metrics      Metrics
	panicHandler PanicHandler

	// Lifecycle control
	closed      atomic.Bool
	stopped     chan struct{}
	disposeOnce sync.Once

	// Observability
	running atomic.Bool

	// Runtime assertion: strictly one worker loop
	activeLoops atomic.Int32
}

var _ Executor = (*AffinityExecutor)(nil)

// NewAffinityExecutor creates and starts an executor with default
// configuration. The dedicated worker goroutine is spawned immediately.
func NewAffinityExecutor() *AffinityExecutor {
	return NewAffinityExecutorWithConfig(nil)
}

// NewAffinityExecutorWithConfig creates and starts an executor.
// A nil config, or nil fields within it, select the defaults.
func NewAffinityExecutorWithConfig(config *Config) *AffinityExecutor {
	cfg := config.withDefaults()
	e := &AffinityExecutor{
		queue:        newWorkQueue(),
		name:         cfg.Name,
		logger:       cfg.Logger,
		metrics:      cfg.Metrics,
		panicHandler: cfg.PanicHandler,
		stopped:      make(chan struct{}),
	}

	go e.runLoop()

	return e
}

// Execute submits a value-producing work item. It enqueues the item and
// returns its Future without waiting for execution.
func (e *AffinityExecutor) Execute(fn ValueProducer, timeout time.Duration) *Future {
	return e.submit(&workItem{
		kind:    workValue,
		value:   fn,
		timeout: timeout,
		future:  newFuture(),
	})
}

// ExecuteAsync submits a suspending work item: the producer returns a handle
// to an inner asynchronous computation, and the worker awaits it before
// settling the item's Future with the inner value.
func (e *AffinityExecutor) ExecuteAsync(fn SuspendingProducer, timeout time.Duration) *Future {
	return e.submit(&workItem{
		kind:       workSuspending,
		suspending: fn,
		timeout:    timeout,
		future:     newFuture(),
	})
}

// submit validates and enqueues one item. Usage errors (negative timeout,
// submission after disposal) surface as an immediately-failed Future so the
// caller observes them at the call site instead of a silently dropped item.
func (e *AffinityExecutor) submit(it *workItem) *Future {
	if it.timeout < 0 {
		it.future.fail(ErrNegativeTimeout)
		return it.future
	}
	if e.closed.Load() {
		it.future.fail(ErrExecutorClosed)
		return it.future
	}
	if err := e.queue.push(it); err != nil {
		it.future.fail(err)
		return it.future
	}
	e.metrics.RecordQueueDepth(e.name, e.queue.len())
	return it.future
}

// WaitIdle blocks until every item submitted before the call has settled.
// Implemented by submitting a barrier item and awaiting it; since execution
// is strict FIFO on one goroutine, the barrier settling implies all earlier
// items settled first.
//
// Items submitted after WaitIdle are not waited for.
func (e *AffinityExecutor) WaitIdle(ctx context.Context) error {
	if e.closed.Load() {
		return ErrExecutorClosed
	}

	barrier := &workItem{
		kind: workValue,
		value: func(context.Context) (any, error) {
			return nil, nil
		},
		noTimeout: true,
		future:    newFuture(),
	}
	if err := e.queue.push(barrier); err != nil {
		return err
	}

	_, err := barrier.future.Await(ctx)
	return err
}

// IsClosed returns true once disposal has begun.
func (e *AffinityExecutor) IsClosed() bool {
	return e.closed.Load()
}

// Dispose signals stop intent and blocks up to grace for the worker to exit.
//
// Closing the queue broadcasts the wake signal, so a worker blocked on an
// empty queue observes the stop promptly rather than waiting for the next
// enqueue. The worker finishes the item it is currently running; remaining
// queued items are drained and their futures failed with ErrExecutorClosed.
//
// If the worker is still mid-item when grace elapses, Dispose returns
// ErrDisposeTimeout and leaves the goroutine running; it cannot be forcibly
// stopped, and the in-flight item may still settle its own Future later.
// Dispose is idempotent and safe to call from multiple goroutines.
func (e *AffinityExecutor) Dispose(grace time.Duration) error {
	e.disposeOnce.Do(func() {
		e.closed.Store(true)
		e.queue.close()
	})

	select {
	case <-e.stopped:
		return nil
	default:
	}

	if grace <= 0 {
		return ErrDisposeTimeout
	}

	timer := time.NewTimer(grace)
	defer timer.Stop()

	select {
	case <-e.stopped:
		return nil
	case <-timer.C:
		e.logger.Warn("worker did not exit within grace period",
			F("executor", e.name), F("grace", grace))
		return ErrDisposeTimeout
	}
}

// runLoop is the core of the executor; it occupies the dedicated goroutine.
func (e *AffinityExecutor) runLoop() {
	defer close(e.stopped)

	// Assertion: strictly one worker loop per executor
	if n := e.activeLoops.Add(1); n > 1 {
		panic(fmt.Sprintf("AffinityExecutor: concurrent runLoop detected (count=%d)", n))
	}
	defer e.activeLoops.Add(-1)

	for {
		item, ok := e.queue.pop()
		if !ok {
			// Queue closed: fail whatever never got to run so no
			// caller blocks forever on an orphaned future.
			leftovers := e.queue.drain()
			for _, it := range leftovers {
				it.future.fail(ErrExecutorClosed)
			}
			if len(leftovers) > 0 {
				e.logger.Warn("discarded queued items on shutdown",
					F("executor", e.name), F("count", len(leftovers)))
			}
			return
		}
		e.runOne(item)
	}
}

// runOne executes a single work item with the queue mutex not held.
func (e *AffinityExecutor) runOne(it *workItem) {
	e.running.Store(true)
	defer e.running.Store(false)

	start := time.Now()

	// The item context is cancelled when the timeout commits, letting
	// cooperative producers (and the suspending await below) unblock.
	itemCtx, cancelCtx := context.WithCancel(context.Background())
	defer cancelCtx()

	// Arm the timeout. Suppressed under an attached debugger so items
	// paused at a breakpoint are not spuriously cancelled. The timer and
	// the normal completion below race through the future's
	// first-writer-wins transition; no further arbitration is needed.
	if !it.noTimeout && !DebuggerAttached() {
		timer := time.AfterFunc(it.timeout, func() {
			it.future.cancel()
			cancelCtx()
		})
		defer timer.Stop()
	}

	func() {
		defer func() {
			if rec := recover(); rec != nil {
				stack := debug.Stack()
				e.panicHandler.HandlePanic(itemCtx, e.name, rec, stack)
				it.future.fail(&PanicError{Value: rec, Stack: stack})
			}
		}()

		switch it.kind {
		case workValue:
			v, err := it.value(itemCtx)
			if err != nil {
				it.future.fail(err)
			} else {
				it.future.resolve(v)
			}

		case workSuspending:
			inner, err := it.suspending(itemCtx)
			if err != nil {
				it.future.fail(err)
				return
			}
			if inner == nil {
				it.future.resolve(nil)
				return
			}
			v, err := inner.Await(itemCtx)
			if err != nil {
				it.future.fail(err)
			} else {
				it.future.resolve(v)
			}
		}
	}()

	e.metrics.RecordCompletion(e.name, outcomeLabel(it.future.State()), time.Since(start))
	e.metrics.RecordQueueDepth(e.name, e.queue.len())
}

func outcomeLabel(state FutureState) string {
	switch state {
	case FutureResolved:
		return OutcomeResolved
	case FutureCancelled:
		return OutcomeCancelled
	default:
		return OutcomeFailed
	}
}
