package core

import (
	"context"
	"errors"
	"testing"
	"time"
)

// TestExecuteValueAndAwait tests the typed helpers end to end
// Main test items:
// 1. ExecuteValue submits a typed producer through the untyped executor
// 2. Await recovers the statically typed result
func TestExecuteValueAndAwait(t *testing.T) {
	e := newTestExecutor(t)

	fut := ExecuteValue(e, func(ctx context.Context) (int, error) {
		return 42, nil
	}, time.Second)

	n, err := Await[int](context.Background(), fut)
	if err != nil {
		t.Fatalf("Await failed: %v", err)
	}
	if n != 42 {
		t.Fatalf("Await = %d, want 42", n)
	}
}

// TestAwait_TypeMismatch tests the assertion failure path
func TestAwait_TypeMismatch(t *testing.T) {
	f := newFuture()
	f.resolve("a string")

	if _, err := Await[int](context.Background(), f); err == nil {
		t.Fatal("Await[int] on a string result should fail")
	}
}

// TestAwait_NilResolvesToZero tests nil-value handling
func TestAwait_NilResolvesToZero(t *testing.T) {
	f := newFuture()
	f.resolve(nil)

	n, err := Await[int](context.Background(), f)
	if err != nil || n != 0 {
		t.Fatalf("Await = %d, %v, want 0, nil", n, err)
	}
}

// TestAwait_PropagatesFailure tests error passthrough
func TestAwait_PropagatesFailure(t *testing.T) {
	boom := errors.New("boom")
	f := newFuture()
	f.fail(boom)

	if _, err := Await[string](context.Background(), f); !errors.Is(err, boom) {
		t.Fatalf("Await err = %v, want boom", err)
	}
}
