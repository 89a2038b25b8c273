package core

import (
	"context"
	"time"
)

// ValueProducer is a unit of work that directly yields its result.
// The context is cancelled when the item's timeout commits; well-behaved
// producers should observe it, but the executor treats the producer as
// opaque and does not require it.
type ValueProducer func(ctx context.Context) (any, error)

// SuspendingProducer is a unit of work whose result is itself an asynchronous
// computation. The worker awaits the returned Awaitable and uses its eventual
// value as the item's result. Returning a nil Awaitable resolves with nil.
type SuspendingProducer func(ctx context.Context) (Awaitable, error)

// Awaitable is a handle to an asynchronous computation. A *Future is an
// Awaitable, as is any handle from another source that can block until its
// value is known.
type Awaitable interface {
	Await(ctx context.Context) (any, error)
}

// workKind tags the shape of a work item. The tag is fixed at submission
// time by the entry point the caller invoked; the worker never inspects the
// callable to decide how to run it.
type workKind int

const (
	workValue workKind = iota
	workSuspending
)

// workItem pairs one submitted callable with its timeout and future.
// Immutable after creation except for the future's state.
type workItem struct {
	kind       workKind
	value      ValueProducer
	suspending SuspendingProducer
	timeout    time.Duration

	// noTimeout suppresses timer arming for internal barrier items.
	noTimeout bool

	future *Future
}
