package core

import (
	"context"
	"fmt"
	"time"
)

// =============================================================================
// Executor: the public submission surface
// =============================================================================

// Executor accepts work items for one-at-a-time execution on a dedicated
// goroutine. Both submission paths are non-blocking: they enqueue the item
// and immediately return its Future; the caller awaits the Future to observe
// the outcome.
type Executor interface {
	// Execute submits a value-producing work item with the given timeout.
	Execute(fn ValueProducer, timeout time.Duration) *Future

	// ExecuteAsync submits a suspending work item: the producer returns a
	// handle to an inner asynchronous computation whose eventual value
	// becomes the item's result.
	ExecuteAsync(fn SuspendingProducer, timeout time.Duration) *Future

	// Dispose signals stop intent and blocks up to grace waiting for the
	// worker goroutine to exit. Returns ErrDisposeTimeout if it does not.
	Dispose(grace time.Duration) error
}

// =============================================================================
// PanicHandler: called when a work item panics
// =============================================================================

// PanicHandler is invoked when a work item panics. The panic is additionally
// funnelled into the item's Future as a *PanicError; the handler exists for
// logging and crash reporting.
type PanicHandler interface {
	// HandlePanic is called with the recovered panic value and the stack
	// trace captured at recovery time.
	HandlePanic(ctx context.Context, executorName string, panicInfo any, stackTrace []byte)
}

// DefaultPanicHandler prints panic information to stdout.
type DefaultPanicHandler struct{}

func (h *DefaultPanicHandler) HandlePanic(ctx context.Context, executorName string, panicInfo any, stackTrace []byte) {
	fmt.Printf("[Executor %s] Panic: %v\nStack trace:\n%s", executorName, panicInfo, stackTrace)
}

// =============================================================================
// Metrics: pluggable observability sink
// =============================================================================

// Outcome labels reported through Metrics.RecordCompletion.
const (
	OutcomeResolved  = "resolved"
	OutcomeFailed    = "failed"
	OutcomeCancelled = "cancelled"
)

// Metrics collects execution metrics. Implementations must be safe for
// concurrent use; RecordSubmission may be called from any producer goroutine
// while RecordCompletion is called from the worker.
type Metrics interface {
	// RecordSubmission records one accepted submission, regardless of its
	// eventual outcome.
	RecordSubmission(executorName string)

	// RecordCompletion records a settled work item with its terminal
	// outcome (OutcomeResolved, OutcomeFailed, or OutcomeCancelled) and
	// wall-clock execution duration.
	RecordCompletion(executorName string, outcome string, duration time.Duration)

	// RecordQueueDepth records the number of items waiting in the queue.
	RecordQueueDepth(executorName string, depth int)
}

// NilMetrics discards all metrics. Used when no collector is configured.
type NilMetrics struct{}

func (m *NilMetrics) RecordSubmission(executorName string) {}

func (m *NilMetrics) RecordCompletion(executorName string, outcome string, d time.Duration) {}

func (m *NilMetrics) RecordQueueDepth(executorName string, depth int) {}

// =============================================================================
// Config: optional executor configuration
// =============================================================================

// Config holds optional knobs for an AffinityExecutor. All fields are
// optional; zero values select the defaults.
type Config struct {
	// Name identifies the executor in logs and metric labels.
	Name string

	// Logger receives lifecycle and error events. Defaults to DefaultLogger.
	Logger Logger

	// Metrics receives execution metrics. Defaults to NilMetrics.
	Metrics Metrics

	// PanicHandler is called when a work item panics. Defaults to
	// DefaultPanicHandler.
	PanicHandler PanicHandler
}

// DefaultConfig returns a Config populated with the default handlers.
func DefaultConfig() *Config {
	return &Config{
		Name:         "strand",
		Logger:       NewDefaultLogger(),
		Metrics:      &NilMetrics{},
		PanicHandler: &DefaultPanicHandler{},
	}
}

func (c *Config) withDefaults() *Config {
	out := DefaultConfig()
	if c == nil {
		return out
	}
	if c.Name != "" {
		out.Name = c.Name
	}
	if c.Logger != nil {
		out.Logger = c.Logger
	}
	if c.Metrics != nil {
		out.Metrics = c.Metrics
	}
	if c.PanicHandler != nil {
		out.PanicHandler = c.PanicHandler
	}
	return out
}
