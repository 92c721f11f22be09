// Package address holds the demo application's shipping-address domain: the
// data the checkout flow picks, creates, and confirms through modal
// presentation.
package address

import (
	"fmt"
	"sort"
	"sync"
)

// Address is one saved shipping address.
type Address struct {
	Label  string // e.g. "Home", "Work"
	Street string
	City   string
}

func (a Address) String() string {
	return fmt.Sprintf("%s — %s, %s", a.Label, a.Street, a.City)
}

// Book is an in-memory address store shared by the flow goroutine and the
// render loop.
type Book struct {
	mu      sync.Mutex
	entries map[string]Address
}

// NewBook creates a store seeded with the given addresses.
func NewBook(seed ...Address) *Book {
	b := &Book{entries: make(map[string]Address)}
	for _, a := range seed {
		b.entries[a.Label] = a
	}
	return b
}

// Save adds or replaces an address by label.
func (b *Book) Save(a Address) {
	b.mu.Lock()
	b.entries[a.Label] = a
	b.mu.Unlock()
}

// List returns all addresses sorted by label.
func (b *Book) List() []Address {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Address, 0, len(b.entries))
	for _, a := range b.entries {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// Len returns the number of saved addresses.
func (b *Book) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}
