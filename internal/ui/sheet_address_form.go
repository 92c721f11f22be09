package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"navkit/internal/address"
	"navkit/internal/nav"
)

// AddressForm is a sheet-style modal for entering a new shipping address.
// Tab cycles fields; Enter publishes once all fields are filled.
type AddressForm struct {
	*nav.Sheet[address.Address]
	inputs  []textinput.Model
	focused int
	errMsg  string
}

var (
	_ View                            = (*AddressForm)(nil)
	_ nav.SheetChild[address.Address] = (*AddressForm)(nil)
)

// NewAddressForm creates an empty address entry form.
func NewAddressForm() *AddressForm {
	mk := func(placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.Width = 36
		return ti
	}
	inputs := []textinput.Model{mk("Label (e.g. Home)"), mk("Street"), mk("City")}
	inputs[0].Focus()
	return &AddressForm{
		Sheet:  nav.NewSheet[address.Address](),
		inputs: inputs,
	}
}

// Init implements View.
func (m *AddressForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *AddressForm) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			m.focus(m.focused + 1)
			return m, nil
		case "shift+tab", "up":
			m.focus(m.focused - 1)
			return m, nil
		case "enter":
			a := address.Address{
				Label:  strings.TrimSpace(m.inputs[0].Value()),
				Street: strings.TrimSpace(m.inputs[1].Value()),
				City:   strings.TrimSpace(m.inputs[2].Value()),
			}
			if a.Label == "" || a.Street == "" || a.City == "" {
				m.errMsg = "All fields are required"
				return m, nil
			}
			m.Publish(a)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

// View implements View.
func (m *AddressForm) View() string {
	content := Styles.Title.Render("New address") + "\n\n"
	for _, in := range m.inputs {
		content += in.View() + "\n"
	}
	if m.errMsg != "" {
		content += "\n" + Styles.TitleDanger.Render(m.errMsg) + "\n"
	}
	content += "\n" + Styles.Hint.Render("Tab: next field  Enter: save  Esc: cancel")
	return Styles.Box.Render(content)
}

func (m *AddressForm) focus(i int) {
	n := len(m.inputs)
	m.inputs[m.focused].Blur()
	m.focused = ((i % n) + n) % n
	m.inputs[m.focused].Focus()
}
