package nav

import (
	"sync"

	"navkit/internal/future"
)

// Bridge converts a callback-style completion (button press, forced
// dismissal) into a single awaitable resolution. The pending cell is non-nil
// exactly while the corresponding alert is on screen, so Visible doubles as
// the alert-presented reactive state.
//
// Complete and Dismiss may race (user presses a button while the system force
// dismisses); exactly one consumes the pending cell under the mutex and the
// loser is a reported no-op.
type Bridge[T any] struct {
	mu       sync.Mutex
	pending  *future.Future[T]
	onChange func()
}

// SetOnChange registers the callback fired after every visible-state
// transition. The callback runs outside the bridge lock.
func (b *Bridge[T]) SetOnChange(notify func()) {
	b.mu.Lock()
	b.onChange = notify
	b.mu.Unlock()
}

// Arm installs a fresh pending cell and returns it. The alert is considered
// visible from this point until Complete or Dismiss clears the cell. Arming
// an already-armed bridge is a caller bug; the existing cell is returned
// unchanged so the outstanding await is never orphaned.
func (b *Bridge[T]) Arm() *future.Future[T] {
	b.mu.Lock()
	if b.pending != nil {
		f := b.pending
		b.mu.Unlock()
		return f
	}
	f := future.New[T]()
	b.pending = f
	notify := b.onChange
	b.mu.Unlock()
	if notify != nil {
		notify()
	}
	return f
}

// Complete resolves the pending cell with the user's answer and clears it.
// Returns false if no resolution was pending, which is what a stale UI
// reference observes after a forced dismissal already won.
func (b *Bridge[T]) Complete(v T) bool {
	f, notify := b.take()
	if f == nil {
		return false
	}
	// Hide is observable before the suspended flow resumes with the value.
	if notify != nil {
		notify()
	}
	return f.Resolve(v)
}

// Dismiss resolves the pending cell with future.ErrDismissed and clears it.
// Safe to call when nothing is pending: forced-dismissal paths fire it
// unconditionally.
func (b *Bridge[T]) Dismiss() bool {
	f, notify := b.take()
	if f == nil {
		return false
	}
	if notify != nil {
		notify()
	}
	return f.Fail(future.ErrDismissed)
}

// Visible reports whether a resolution is outstanding, i.e. the alert should
// be on screen.
func (b *Bridge[T]) Visible() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pending != nil
}

// take consumes the pending cell. Exactly one caller gets a non-nil future.
func (b *Bridge[T]) take() (*future.Future[T], func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	f := b.pending
	b.pending = nil
	return f, b.onChange
}
