package core

import (
	"context"
	"fmt"
	"time"
)

// =============================================================================
// Generic Typed Helpers
// =============================================================================

// The executor itself moves results as `any` so a single worker can serve
// arbitrary item types. These package-level generic helpers restore static
// typing at the submission and await boundaries, the same way typed results
// are layered over untyped runners elsewhere in this module family.

// ExecuteValue submits a typed value producer to e and returns its Future.
//
// Example:
//
//	fut := core.ExecuteValue(exec, func(ctx context.Context) (int, error) {
//	    return 42, nil
//	}, time.Second)
//	n, err := core.Await[int](ctx, fut)
func ExecuteValue[T any](e Executor, fn func(ctx context.Context) (T, error), timeout time.Duration) *Future {
	return e.Execute(func(ctx context.Context) (any, error) {
		return fn(ctx)
	}, timeout)
}

// Await blocks until f settles or ctx is done, then asserts the resolved
// value to T. A resolved nil value yields the zero T.
func Await[T any](ctx context.Context, f *Future) (T, error) {
	var zero T

	v, err := f.Await(ctx)
	if err != nil {
		return zero, err
	}
	if v == nil {
		return zero, nil
	}

	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("strand: result type %T does not match requested type %T", v, zero)
	}
	return t, nil
}
