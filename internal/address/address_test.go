package address

import "testing"

func TestBookListSortedByLabel(t *testing.T) {
	b := NewBook(
		Address{Label: "Work", Street: "500 Plaza Ave", City: "Springfield"},
		Address{Label: "Home", Street: "123 Main St", City: "Springfield"},
	)
	got := b.List()
	if len(got) != 2 {
		t.Fatalf("expected 2 addresses, got %d", len(got))
	}
	if got[0].Label != "Home" || got[1].Label != "Work" {
		t.Errorf("expected sorted by label, got %v", got)
	}
}

func TestBookSaveReplacesByLabel(t *testing.T) {
	b := NewBook(Address{Label: "Home", Street: "123 Main St", City: "Springfield"})
	b.Save(Address{Label: "Home", Street: "9 Elm St", City: "Shelbyville"})
	if b.Len() != 1 {
		t.Fatalf("expected replacement, got %d entries", b.Len())
	}
	if b.List()[0].Street != "9 Elm St" {
		t.Errorf("expected updated street, got %q", b.List()[0].Street)
	}
}
