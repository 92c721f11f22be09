package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"navkit/internal/nav"
)

// ConfirmAlert is a yes/no alert. Button presses complete the continuation
// bridge; Esc is handled by AppModel as forced dismissal, which resolves the
// bridge with a cancellation instead.
type ConfirmAlert struct {
	*nav.Alert[bool]
	Title  string
	Label  string
	danger bool

	boxStyle   lipgloss.Style
	titleStyle lipgloss.Style
}

var (
	_ View                 = (*ConfirmAlert)(nil)
	_ nav.AlertChild[bool] = (*ConfirmAlert)(nil)
)

// NewConfirmAlert creates a yes/no alert with the given title and label.
func NewConfirmAlert(title, label string) *ConfirmAlert {
	return &ConfirmAlert{
		Alert:      nav.NewAlert[bool](),
		Title:      title,
		Label:      label,
		boxStyle:   Styles.Box,
		titleStyle: Styles.Title,
	}
}

// AsDanger switches the alert to the destructive styling.
func (m *ConfirmAlert) AsDanger() *ConfirmAlert {
	m.danger = true
	m.boxStyle = Styles.BoxDanger
	m.titleStyle = Styles.TitleDanger
	return m
}

// Init implements View.
func (m *ConfirmAlert) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ConfirmAlert) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "y", "enter":
			m.Bridge().Complete(true)
			return m, nil
		case "n":
			m.Bridge().Complete(false)
			return m, nil
		}
	}
	return m, nil
}

// View implements View.
func (m *ConfirmAlert) View() string {
	content := m.titleStyle.Render(m.Title) + "\n\n"
	content += m.Label + "\n\n"
	content += Styles.Hint.Render("y/Enter: yes  n: no  Esc: cancel")
	return m.boxStyle.Render(content)
}
