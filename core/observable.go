package core

import (
	"sync/atomic"
	"time"
)

// ObservableExecutor wraps an Executor and counts accepted submissions.
// The counter measures submissions, not outcomes: it is incremented exactly
// once per Execute/ExecuteAsync call, immediately after the wrapped call
// returns, regardless of whether the item later resolves, fails, or is
// cancelled. Submissions are additionally reported to the configured Metrics.
type ObservableExecutor struct {
	inner       Executor
	name        string
	metrics     Metrics
	submissions atomic.Uint64
}

var _ Executor = (*ObservableExecutor)(nil)

// NewObservableExecutor wraps inner with a submission counter and no
// metrics sink.
func NewObservableExecutor(inner Executor) *ObservableExecutor {
	return NewObservableExecutorWithMetrics(inner, "strand", &NilMetrics{})
}

// NewObservableExecutorWithMetrics wraps inner, reporting each submission to
// metrics under the given name. A nil metrics falls back to NilMetrics.
func NewObservableExecutorWithMetrics(inner Executor, name string, metrics Metrics) *ObservableExecutor {
	if metrics == nil {
		metrics = &NilMetrics{}
	}
	return &ObservableExecutor{
		inner:   inner,
		name:    name,
		metrics: metrics,
	}
}

// Execute forwards to the wrapped executor and counts the submission.
func (o *ObservableExecutor) Execute(fn ValueProducer, timeout time.Duration) *Future {
	fut := o.inner.Execute(fn, timeout)
	o.submissions.Add(1)
	o.metrics.RecordSubmission(o.name)
	return fut
}

// ExecuteAsync forwards to the wrapped executor and counts the submission.
func (o *ObservableExecutor) ExecuteAsync(fn SuspendingProducer, timeout time.Duration) *Future {
	fut := o.inner.ExecuteAsync(fn, timeout)
	o.submissions.Add(1)
	o.metrics.RecordSubmission(o.name)
	return fut
}

// Dispose forwards to the wrapped executor.
func (o *ObservableExecutor) Dispose(grace time.Duration) error {
	return o.inner.Dispose(grace)
}

// SubmissionCount returns the number of submissions accepted so far.
func (o *ObservableExecutor) SubmissionCount() uint64 {
	return o.submissions.Load()
}
