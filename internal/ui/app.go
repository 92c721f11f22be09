package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"navkit/internal/nav"
)

// NavChangedMsg is sent by the screen Host's change callback so the program
// re-renders after every presentation mutation.
type NavChangedMsg struct{}

// StartFlowMsg is emitted by the base view to start a registered flow.
type StartFlowMsg struct {
	Name string
}

// FlowDoneMsg reports a finished flow. A cancelled flow carries Err == nil;
// cancellation is handled inside the flow, not surfaced as a failure.
type FlowDoneMsg struct {
	Name string
	Err  error
}

// AppModel is the root model. It owns the screen Host, draws the base view
// with presented children composited on top, and feeds key input to the
// top-most presented child.
type AppModel struct {
	Screen *nav.Host
	Base   View
	Log    zerolog.Logger

	flows  map[string]func() tea.Cmd
	width  int
	height int
}

// Ensure AppModel implements tea.Model.
var _ tea.Model = (*AppModel)(nil)

// NewAppModel creates the root model around a base screen view.
func NewAppModel(base View, log zerolog.Logger) *AppModel {
	return &AppModel{
		Screen: nav.NewHost(),
		Base:   base,
		Log:    log,
		flows:  make(map[string]func() tea.Cmd),
		width:  80,
		height: 24,
	}
}

// RegisterFlow binds a flow starter to a name the base view can trigger via
// StartFlowMsg. The starter's Cmd runs the flow on its own goroutine; the
// flow suspends in nav.Present calls while this Update loop keeps running.
func (m *AppModel) RegisterFlow(name string, start func() tea.Cmd) {
	m.flows[name] = start
}

// BindProgram wires the screen Host's reactive updates to the running
// program. Must be called before flows start.
func (m *AppModel) BindProgram(p *tea.Program) {
	m.Screen.SetOnChange(func() {
		p.Send(NavChangedMsg{})
	})
}

// Init implements tea.Model.
func (m *AppModel) Init() tea.Cmd {
	return m.Base.Init()
}

// Update implements tea.Model.
func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m.updateBase(msg)
	case NavChangedMsg:
		// Slot contents changed; rendering is a pure function of them.
		return m, nil
	case StartFlowMsg:
		start := m.flows[msg.Name]
		if start == nil || m.Screen.Presenting() {
			return m, nil
		}
		m.Log.Debug().Str("flow", msg.Name).Msg("flow started")
		return m, start()
	case FlowDoneMsg:
		if msg.Err != nil {
			m.Log.Error().Err(msg.Err).Str("flow", msg.Name).Msg("flow failed")
		} else {
			m.Log.Debug().Str("flow", msg.Name).Msg("flow finished")
		}
		return m.updateBase(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m.updateBase(msg)
}

// handleKey routes a key press to the deepest presented child, treating Esc
// as the rendering layer's forced-dismissal notification.
func (m *AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	chain := presentedChain(nil, m.Screen)
	if len(chain) > 0 {
		top := chain[len(chain)-1]
		if msg.String() == "esc" {
			m.Log.Debug().
				Str("slot", top.slot.String()).
				Str("child", top.child.ID().String()).
				Msg("forced dismissal")
			top.host.Detach(top.slot, top.child)
			return m, nil
		}
		if v, ok := top.child.(View); ok {
			// Presented views are pointers that mutate in place, so the
			// returned View is the same instance and is not stored back.
			_, cmd := v.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	return m.updateBase(msg)
}

// View implements tea.Model. Presented children stack over the base screen,
// sheets below alerts, nested children above their parents.
func (m *AppModel) View() string {
	frame := m.Base.View()
	for _, p := range presentedChain(nil, m.Screen) {
		if v, ok := p.child.(View); ok {
			frame = overlayCenter(frame, v.View(), m.width, m.height)
		}
	}
	return frame
}

func (m *AppModel) updateBase(msg tea.Msg) (tea.Model, tea.Cmd) {
	v, cmd := m.Base.Update(msg)
	m.Base = v
	return m, cmd
}

// presentedEntry locates one presented child for input routing and teardown.
type presentedEntry struct {
	host  *nav.Host
	slot  nav.Slot
	child nav.Presentable
}

// presentedChain walks the host tree bottom-up in render order: the sheet
// child, its nested presentations, then the alert child and its nested
// presentations. The last entry is the input target.
func presentedChain(chain []presentedEntry, h *nav.Host) []presentedEntry {
	for _, slot := range []nav.Slot{nav.SlotSheet, nav.SlotAlert} {
		c := h.Child(slot)
		if c == nil {
			continue
		}
		chain = append(chain, presentedEntry{host: h, slot: slot, child: c})
		if hc, ok := c.(interface{ Children() *nav.Host }); ok {
			chain = presentedChain(chain, hc.Children())
		}
	}
	return chain
}
