package ui

import (
	"context"
	"testing"

	"navkit/internal/address"
)

var testAddrs = []address.Address{
	{Label: "Home", Street: "123 Main St", City: "Springfield"},
	{Label: "Work", Street: "500 Plaza Ave", City: "Springfield"},
}

func TestAddressPickerPublishesSelection(t *testing.T) {
	picker := NewAddressPicker(testAddrs)
	picker.Update(keyMsg("enter"))

	res, err := picker.FirstValue(context.Background())
	if err != nil {
		t.Fatalf("FirstValue: %v", err)
	}
	if res.CreateNew {
		t.Error("expected a selection, not a create-new request")
	}
	if res.Addr.Label != "Home" {
		t.Errorf("expected first item selected, got %q", res.Addr.Label)
	}
}

func TestAddressPickerPublishesCreateNew(t *testing.T) {
	picker := NewAddressPicker(testAddrs)
	picker.Update(keyMsg("n"))

	res, err := picker.FirstValue(context.Background())
	if err != nil {
		t.Fatalf("FirstValue: %v", err)
	}
	if !res.CreateNew {
		t.Error("expected create-new request")
	}
}

func TestAddressPickerOnlyFirstPublishCounts(t *testing.T) {
	picker := NewAddressPicker(testAddrs)
	picker.Update(keyMsg("enter"))
	picker.Update(keyMsg("n"))

	res, err := picker.FirstValue(context.Background())
	if err != nil {
		t.Fatalf("FirstValue: %v", err)
	}
	if res.CreateNew {
		t.Error("later emissions must not override the first value")
	}
}

func TestAddressFormRequiresAllFields(t *testing.T) {
	form := NewAddressForm()
	form.Update(keyMsg("enter"))
	if form.errMsg == "" {
		t.Error("expected validation message on empty submit")
	}
	if form.Settled() {
		t.Error("invalid submit must not publish")
	}
}

func TestAddressFormPublishesAddress(t *testing.T) {
	form := NewAddressForm()
	form.inputs[0].SetValue("Cabin")
	form.inputs[1].SetValue("7 Lake Rd")
	form.inputs[2].SetValue("Duluth")
	form.Update(keyMsg("enter"))

	a, err := form.FirstValue(context.Background())
	if err != nil {
		t.Fatalf("FirstValue: %v", err)
	}
	if a.Label != "Cabin" || a.Street != "7 Lake Rd" || a.City != "Duluth" {
		t.Errorf("unexpected address published: %+v", a)
	}
}

func TestAddressFormTabCyclesFocus(t *testing.T) {
	form := NewAddressForm()
	if form.focused != 0 {
		t.Fatalf("expected first field focused, got %d", form.focused)
	}
	form.Update(keyMsg("tab"))
	if form.focused != 1 {
		t.Errorf("expected second field focused, got %d", form.focused)
	}
	form.Update(keyMsg("tab"))
	form.Update(keyMsg("tab"))
	if form.focused != 0 {
		t.Errorf("expected focus wrapped to first field, got %d", form.focused)
	}
}
