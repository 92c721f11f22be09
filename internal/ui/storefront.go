package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"navkit/internal/address"
)

// FlowCheckout is the demo flow the storefront triggers.
const FlowCheckout = "checkout"

// ShippingChosenMsg updates the storefront after the checkout flow resolves a
// shipping address.
type ShippingChosenMsg struct {
	Addr address.Address
}

// StorefrontView is the base screen: it shows the current shipping address
// and starts the checkout flow.
type StorefrontView struct {
	Shipping *address.Address
	Status   string
}

var _ View = (*StorefrontView)(nil)

// NewStorefrontView creates the base screen.
func NewStorefrontView() *StorefrontView {
	return &StorefrontView{}
}

// Init implements View.
func (v *StorefrontView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *StorefrontView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case ShippingChosenMsg:
		addr := msg.Addr
		v.Shipping = &addr
		v.Status = "Shipping address updated"
		return v, nil
	case FlowDoneMsg:
		if msg.Err != nil {
			v.Status = "Checkout failed: " + msg.Err.Error()
		}
		return v, nil
	case tea.KeyMsg:
		if msg.String() == "c" {
			v.Status = ""
			return v, func() tea.Msg { return StartFlowMsg{Name: FlowCheckout} }
		}
	}
	return v, nil
}

// View implements View.
func (v *StorefrontView) View() string {
	s := Styles.Title.Render("navdemo storefront") + "\n\n"
	if v.Shipping != nil {
		s += Styles.Normal.Render("Ship to: "+v.Shipping.String()) + "\n"
	} else {
		s += Styles.Muted.Render("No shipping address chosen") + "\n"
	}
	if v.Status != "" {
		s += Styles.Status.Render(v.Status) + "\n"
	}
	s += "\n" + Styles.Hint.Render("c: checkout  q: quit")
	return s
}
