package ui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"navkit/internal/address"
	"navkit/internal/nav"
)

// PickResult is what the address picker publishes: either a chosen address or
// a request to create a new one.
type PickResult struct {
	Addr      address.Address
	CreateNew bool
}

// AddressPicker is a sheet-style modal for selecting a shipping address.
// Enter publishes the selection; 'n' publishes a create-new request; Esc is
// handled by AppModel as forced dismissal.
type AddressPicker struct {
	*nav.Sheet[PickResult]
	list list.Model
}

// Ensure AddressPicker is renderable and presentable as a sheet.
var (
	_ View                       = (*AddressPicker)(nil)
	_ nav.SheetChild[PickResult] = (*AddressPicker)(nil)
)

type addressItem address.Address

func (a addressItem) FilterValue() string { return a.Label + " " + a.Street }
func (a addressItem) Title() string       { return address.Address(a).String() }
func (a addressItem) Description() string { return "" }

// NewAddressPicker creates a picker over the given saved addresses.
func NewAddressPicker(addrs []address.Address) *AddressPicker {
	items := make([]list.Item, len(addrs))
	for i, a := range addrs {
		items[i] = addressItem(a)
	}
	delegate := NewCompactListDelegate()
	l := list.New(items, delegate, 48, 12)
	l.Title = "Ship to"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Title
	return &AddressPicker{
		Sheet: nav.NewSheet[PickResult](),
		list:  l,
	}
}

// Init implements View.
func (m *AddressPicker) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *AddressPicker) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if sel := m.list.SelectedItem(); sel != nil {
				m.Publish(PickResult{Addr: address.Address(sel.(addressItem))})
			}
			return m, nil
		case "n":
			if !m.list.SettingFilter() {
				m.Publish(PickResult{CreateNew: true})
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements View.
func (m *AddressPicker) View() string {
	help := "Enter: select  n: new address  Esc: cancel"
	return Styles.BoxCompact.Render(m.list.View() + "\n" + Styles.Hint.Render(help))
}
