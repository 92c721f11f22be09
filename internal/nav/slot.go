package nav

// Slot is a named presentation position on a parent. A slot holds zero or one
// child at a time.
type Slot int

const (
	// SlotSheet hosts a transient modal that produces at most one result
	// through its own value stream.
	SlotSheet Slot = iota
	// SlotAlert hosts a fixed-button modal whose result arrives through a
	// continuation bridge.
	SlotAlert
)

func (s Slot) String() string {
	switch s {
	case SlotSheet:
		return "sheet"
	case SlotAlert:
		return "alert"
	default:
		return "unknown"
	}
}
