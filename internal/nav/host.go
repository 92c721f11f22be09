package nav

import (
	"errors"
	"fmt"
	"sync"
)

// ErrSlotOccupied is returned by Attach when the slot already holds a child.
// Concurrent double-presentation on one slot indicates a caller bug, so the
// policy is reject, never evict-and-replace.
var ErrSlotOccupied = errors.New("presentation slot already occupied")

// ErrHostClosed is returned by Attach after Close. The parent is gone; there
// is nothing left to present on.
var ErrHostClosed = errors.New("presentation host closed")

// Host is the per-parent ownership registry: at most one presented child per
// slot. The parent's renderable modal state is a pure function of slot
// contents — non-empty slot means the element is presented.
//
// Each mutation fires the change callback exactly once before the mutating
// call returns, so the rendering layer never misses a presentation or
// dismissal. The mutex exists because attach/detach run on the flow goroutine
// while forced dismissal arrives from the render loop; at the contract level
// the slot still has a single logical owner (one in-flight Present per slot).
type Host struct {
	mu       sync.Mutex
	slots    map[Slot]Presentable
	onChange func()
	closed   bool
}

// NewHost creates an empty registry.
func NewHost() *Host {
	return &Host{slots: make(map[Slot]Presentable)}
}

// SetOnChange registers the callback fired after every mutation. The
// rendering layer wires this to its redraw trigger (Program.Send). The
// callback runs outside the host lock.
func (h *Host) SetOnChange(notify func()) {
	h.mu.Lock()
	h.onChange = notify
	h.mu.Unlock()
}

// Attach places child in slot and triggers a reactive update. It fails with
// ErrSlotOccupied if the slot holds any child, including the same one, and
// with ErrHostClosed after Close.
func (h *Host) Attach(slot Slot, child Presentable) error {
	if child == nil {
		return fmt.Errorf("attach %s: nil child", slot)
	}
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return fmt.Errorf("attach %s: %w", slot, ErrHostClosed)
	}
	if h.slots[slot] != nil {
		h.mu.Unlock()
		return fmt.Errorf("attach %s: %w", slot, ErrSlotOccupied)
	}
	h.slots[slot] = child
	notify := h.onChange
	h.mu.Unlock()

	if b, ok := child.(ChangeBinder); ok {
		b.BindChange(h.notify)
	}
	if notify != nil {
		notify()
	}
	return nil
}

// Detach removes child from slot, dismisses it, and triggers a reactive
// update. It is a no-op when the slot is empty or holds a different child,
// which lets the run helper's deferred release race harmlessly with a forced
// dismissal that already emptied the slot.
func (h *Host) Detach(slot Slot, child Presentable) {
	h.mu.Lock()
	cur := h.slots[slot]
	if cur == nil || (child != nil && cur.ID() != child.ID()) {
		h.mu.Unlock()
		return
	}
	delete(h.slots, slot)
	notify := h.onChange
	h.mu.Unlock()

	// Hide is observable before the dismissal wakes a suspended flow.
	if notify != nil {
		notify()
	}
	cur.Dismiss()
}

// Child returns the presented child for slot, or nil.
func (h *Host) Child(slot Slot) Presentable {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.slots[slot]
}

// Presenting reports whether any slot is occupied.
func (h *Host) Presenting() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.slots) > 0
}

// Close empties every slot, dismissing each child, and rejects further
// attaches. Pending awaits on the dismissed children settle with
// future.ErrDismissed rather than hanging; this is the parent-torn-down path.
func (h *Host) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	children := make([]Presentable, 0, len(h.slots))
	for slot, c := range h.slots {
		children = append(children, c)
		delete(h.slots, slot)
	}
	notify := h.onChange
	h.mu.Unlock()

	if notify != nil && len(children) > 0 {
		notify()
	}
	for _, c := range children {
		c.Dismiss()
	}
}

// notify fires the current change callback. Used as the bound callback for
// children so nested host and bridge transitions surface on the parent.
func (h *Host) notify() {
	h.mu.Lock()
	fn := h.onChange
	h.mu.Unlock()
	if fn != nil {
		fn()
	}
}
