// Package nav is the navigation coordination core: it lets flow code present
// modal sheets and alerts as linear, blocking calls while a rendering layer
// (a Bubble Tea program, in this repo) reacts to presentation state.
//
// The moving parts:
//   - Host: per-parent registry of at most one presented child per Slot.
//   - Sheet / Alert: the view-model plumbing a flow instantiates per modal.
//   - Bridge: converts a button-press callback into a single awaitable
//     resolution.
//   - Present / PresentSheet / PresentAlert: attach, await, detach on every
//     exit path.
package nav

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"navkit/internal/future"
)

// Presentable is the unit a Host holds in a slot. The rendering layer decides
// how to draw one (in this repo by asserting to ui.View); the core only needs
// identity and a teardown hook.
type Presentable interface {
	// ID is the stable identity token for this view-model instance.
	ID() uuid.UUID
	// Dismiss tears the view-model down: any pending first-value or bridge
	// resolution settles with future.ErrDismissed. Idempotent. Host.Detach
	// calls it on every removal so awaits observe removal, not just explicit
	// resolution.
	Dismiss()
}

// ChangeBinder is implemented by presentables whose internal reactive state
// (nested hosts, bridge visibility) must reach the parent's change callback.
// Host.Attach binds it automatically.
type ChangeBinder interface {
	BindChange(notify func())
}

// SheetChild is a presentable that produces its result through a lazily
// consumed single-value stream.
type SheetChild[T any] interface {
	Presentable
	FirstValue(ctx context.Context) (T, error)
}

// AlertChild is a presentable whose result arrives through a Bridge armed by
// the run helper while the alert is on screen.
type AlertChild[T any] interface {
	Presentable
	Bridge() *Bridge[T]
}

// Sheet is the result plumbing for a sheet-style view-model. Embed a *Sheet
// in a renderable type to make it a SheetChild.
type Sheet[T any] struct {
	id       uuid.UUID
	first    *future.Future[T]
	children *Host
}

// NewSheet creates sheet plumbing with a fresh identity token.
func NewSheet[T any]() *Sheet[T] {
	return &Sheet[T]{
		id:       uuid.New(),
		first:    future.New[T](),
		children: NewHost(),
	}
}

// ID implements Presentable.
func (s *Sheet[T]) ID() uuid.UUID { return s.id }

// Publish emits a result value. Only the first emission settles FirstValue;
// later emissions are reported as not consumed. Publishing is how the
// rendering layer hands the user's answer back to the suspended flow.
func (s *Sheet[T]) Publish(v T) bool {
	return s.first.Resolve(v)
}

// Fail settles the sheet's result with a domain failure (e.g. validation).
// The failure propagates through PresentSheet unchanged.
func (s *Sheet[T]) Fail(err error) bool {
	return s.first.Fail(err)
}

// FirstValue suspends until the first published value, a failure, or
// teardown. Teardown before a publish yields future.ErrDismissed.
func (s *Sheet[T]) FirstValue(ctx context.Context) (T, error) {
	return s.first.Await(ctx)
}

// Settled reports whether the sheet's result has been produced or cancelled.
func (s *Sheet[T]) Settled() bool {
	return s.first.Settled()
}

// Dismiss implements Presentable. It closes any nested presentation and
// settles a pending FirstValue with future.ErrDismissed.
func (s *Sheet[T]) Dismiss() {
	s.children.Close()
	s.first.Fail(future.ErrDismissed)
}

// Children is this sheet's own host for nested presentation. Nesting is
// discouraged but supported.
func (s *Sheet[T]) Children() *Host { return s.children }

// BindChange implements ChangeBinder.
func (s *Sheet[T]) BindChange(notify func()) {
	s.children.SetOnChange(notify)
}

// Alert is the result plumbing for a fixed-button modal. Embed a *Alert in a
// renderable type to make it an AlertChild.
type Alert[T any] struct {
	id       uuid.UUID
	bridge   *Bridge[T]
	children *Host
}

// NewAlert creates alert plumbing with a fresh identity token.
func NewAlert[T any]() *Alert[T] {
	return &Alert[T]{
		id:       uuid.New(),
		bridge:   &Bridge[T]{},
		children: NewHost(),
	}
}

// ID implements Presentable.
func (a *Alert[T]) ID() uuid.UUID { return a.id }

// Bridge returns the continuation bridge the rendering layer completes when a
// button is pressed.
func (a *Alert[T]) Bridge() *Bridge[T] { return a.bridge }

// Dismiss implements Presentable. A pending bridge resolution settles with
// future.ErrDismissed; if the bridge already resolved this is a no-op.
func (a *Alert[T]) Dismiss() {
	a.children.Close()
	a.bridge.Dismiss()
}

// Children is this alert's own host for nested presentation.
func (a *Alert[T]) Children() *Host { return a.children }

// BindChange implements ChangeBinder.
func (a *Alert[T]) BindChange(notify func()) {
	a.bridge.SetOnChange(notify)
	a.children.SetOnChange(notify)
}

// IsCancelled reports whether err means the user or system abandoned the
// presentation: either the modal was dismissed without a value or the
// awaiting context itself was cancelled. Flow code recovers from it locally.
func IsCancelled(err error) bool {
	return errors.Is(err, future.ErrDismissed) || errors.Is(err, context.Canceled)
}
