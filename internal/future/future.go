// Package future provides a one-shot settable value for bridging
// callback-driven UI completion into linear, blocking flow code.
//
// A Future is resolved at most once: the first Resolve or Fail wins and every
// later attempt is a reported no-op. Redundant resolution is tolerated rather
// than fatal because the duplicate typically comes from a UI race (a stale
// button press landing after a forced dismissal); callers that want to treat
// it as a bug can check the boolean result.
package future

import (
	"context"
	"errors"
	"sync"
)

// ErrDismissed is the failure a Future settles with when the UI element it
// backs is torn down before producing a value. Flow code treats it as "user
// backed out", not as a fault.
var ErrDismissed = errors.New("dismissed before a result was produced")

// Future is a pending answer of type T. The zero value is not usable; create
// one with New.
type Future[T any] struct {
	done chan struct{}

	mu      sync.Mutex
	settled bool
	val     T
	err     error
}

// New creates an unresolved Future.
func New[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Resolve settles the future with a value. Returns false if the future was
// already settled, in which case the value is discarded.
func (f *Future[T]) Resolve(v T) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.settled {
		return false
	}
	f.settled = true
	f.val = v
	close(f.done)
	return true
}

// Fail settles the future with an error. A nil err is recorded as
// ErrDismissed so that a settled future always carries a value or a non-nil
// error. Returns false if the future was already settled.
func (f *Future[T]) Fail(err error) bool {
	if err == nil {
		err = ErrDismissed
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.settled {
		return false
	}
	f.settled = true
	f.err = err
	close(f.done)
	return true
}

// Await blocks until the future settles or ctx is done. Context cancellation
// does not consume the future: a later Await can still observe the outcome,
// and the one external actor holding the resolution side keeps it.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		f.mu.Lock()
		defer f.mu.Unlock()
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done returns a channel closed when the future settles.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Settled reports whether the future has been resolved or failed.
func (f *Future[T]) Settled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.settled
}

// Err returns the failure the future settled with, or nil if it is pending or
// settled with a value.
func (f *Future[T]) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}
