package core

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced through a Future or returned by executor methods.
var (
	// ErrCancelled is reported by a Future whose work item was cancelled
	// because its timeout elapsed before the item completed.
	ErrCancelled = errors.New("strand: work item cancelled by timeout")

	// ErrExecutorClosed is reported when work is submitted after Dispose,
	// or when queued work is discarded because the executor shut down
	// before reaching it.
	ErrExecutorClosed = errors.New("strand: executor is closed")

	// ErrNegativeTimeout is reported when a work item is submitted with a
	// negative timeout. Zero is legal and means "expire immediately after
	// dequeue unless already complete".
	ErrNegativeTimeout = errors.New("strand: timeout must be non-negative")

	// ErrDisposeTimeout is returned by Dispose when the worker goroutine
	// does not exit within the grace period. The worker is not forcibly
	// stopped; a still-running item may settle its Future later.
	ErrDisposeTimeout = errors.New("strand: worker did not exit within the grace period")
)

// PanicError wraps a panic recovered from a work item. The executor converts
// panics into failures on the item's Future so the worker loop survives.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("strand: work item panicked: %v", e.Value)
}
