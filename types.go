package strand

import (
	"github.com/strandkit/go-strand/core"
)

// Re-export commonly used types from core package for convenience.
// This allows users to import only the strand package for most use cases.

// Executor is the public submission surface
type Executor = core.Executor

// AffinityExecutor runs all work on one dedicated goroutine in FIFO order
type AffinityExecutor = core.AffinityExecutor

// ObservableExecutor wraps an Executor with a submission counter
type ObservableExecutor = core.ObservableExecutor

// Future is the single-assignment result handle returned by submissions
type Future = core.Future

// FutureState is the lifecycle state of a Future
type FutureState = core.FutureState

// ValueProducer is a work item that directly yields its result
type ValueProducer = core.ValueProducer

// SuspendingProducer is a work item whose result is an inner async computation
type SuspendingProducer = core.SuspendingProducer

// Awaitable is a handle to an asynchronous computation
type Awaitable = core.Awaitable

// Config holds optional executor configuration
type Config = core.Config

// ExecutorStats is a point-in-time executor snapshot
type ExecutorStats = core.ExecutorStats

// Logger is the pluggable structured logging interface
type Logger = core.Logger

// Metrics is the pluggable observability sink
type Metrics = core.Metrics

// PanicError wraps a panic recovered from a work item
type PanicError = core.PanicError

// Future state constants
const (
	FuturePending   FutureState = core.FuturePending
	FutureResolved  FutureState = core.FutureResolved
	FutureFailed    FutureState = core.FutureFailed
	FutureCancelled FutureState = core.FutureCancelled
)

// Sentinel errors
var (
	ErrCancelled       = core.ErrCancelled
	ErrExecutorClosed  = core.ErrExecutorClosed
	ErrNegativeTimeout = core.ErrNegativeTimeout
	ErrDisposeTimeout  = core.ErrDisposeTimeout
)

// NewAffinityExecutor creates and starts an executor with default configuration.
func NewAffinityExecutor() *AffinityExecutor {
	return core.NewAffinityExecutor()
}

// NewAffinityExecutorWithConfig creates and starts an executor with the given
// configuration. Nil config fields select the defaults.
func NewAffinityExecutorWithConfig(config *Config) *AffinityExecutor {
	return core.NewAffinityExecutorWithConfig(config)
}

// NewObservableExecutor wraps an executor with a submission counter.
func NewObservableExecutor(inner Executor) *ObservableExecutor {
	return core.NewObservableExecutor(inner)
}

// NewObservableExecutorWithMetrics wraps an executor, reporting submissions
// to the given metrics sink under the given name.
func NewObservableExecutorWithMetrics(inner Executor, name string, metrics Metrics) *ObservableExecutor {
	return core.NewObservableExecutorWithMetrics(inner, name, metrics)
}

// DefaultConfig returns a Config populated with the default handlers.
var DefaultConfig = core.DefaultConfig

// DebuggerAttached reports whether a debugger/tracer is attached.
var DebuggerAttached = core.DebuggerAttached
