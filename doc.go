// Package strand provides thread-affinity execution for Go.
//
// A strand guarantees that work items submitted concurrently from many
// goroutines run one at a time, on a single dedicated goroutine, in FIFO
// submission order, with per-item timeout cancellation and error propagation
// back to each submitter. Use it when work must touch one committed execution
// context (a non-thread-safe resource, a CGO library with thread-local state,
// a UI-affine object) while still offering an asynchronous, non-blocking
// submission API.
//
// # Quick Start
//
//	exec := strand.NewAffinityExecutor()
//	defer exec.Dispose(time.Second)
//
//	fut := exec.Execute(func(ctx context.Context) (any, error) {
//		return loadFromFragileResource(), nil
//	}, 2*time.Second)
//
//	value, err := fut.Await(ctx)
//
// # Key Concepts
//
// Future: a single-assignment result cell. It starts Pending and settles
// exactly once as Resolved, Failed, or Cancelled; the first writer wins and
// later transition attempts are no-ops. The submitter holds the read side,
// the worker and the item's timeout timer hold the write side.
//
// Timeouts: each item carries its own timeout, armed when the item is
// dequeued. A timeout commits Cancelled on the Future; if the item completes
// first, the timer's attempt is a no-op. Timeout enforcement is suppressed
// while a debugger is attached so breakpoints do not cancel items.
//
// ObservableExecutor: a transparent decorator that counts accepted
// submissions and can fan metrics out to a collector such as the Prometheus
// exporter in observability/prometheus.
//
// # Thread Safety
//
// Submission is safe from any goroutine and never blocks; the queue mutex is
// held only for enqueue/dequeue bookkeeping, never across item execution.
// No two items ever execute concurrently.
//
// # Example
//
//	import (
//		"context"
//		"time"
//
//		strand "github.com/strandkit/go-strand"
//	)
//
//	func main() {
//		exec := strand.NewAffinityExecutor()
//		defer exec.Dispose(time.Second)
//
//		obs := strand.NewObservableExecutor(exec)
//
//		fut := obs.Execute(func(ctx context.Context) (any, error) {
//			return 42, nil
//		}, time.Second)
//
//		v, err := fut.Await(context.Background())
//		_ = v
//		_ = err
//		_ = obs.SubmissionCount() // 1
//	}
package strand
