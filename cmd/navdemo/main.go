package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"navkit/internal/address"
	"navkit/internal/flow"
	"navkit/internal/telemetry"
	"navkit/internal/ui"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log, closeLog, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	ctx := context.Background()
	shutdownTracing, err := telemetry.Setup(ctx, "navdemo")
	if err != nil {
		log.Warn().Err(err).Msg("tracing disabled")
		shutdownTracing = func(context.Context) error { return nil }
	}
	defer shutdownTracing(ctx)

	book := address.NewBook(
		address.Address{Label: "Home", Street: "123 Main St", City: "Springfield"},
		address.Address{Label: "Work", Street: "500 Plaza Ave", City: "Springfield"},
	)

	app := ui.NewAppModel(ui.NewStorefrontView(), log)
	p := tea.NewProgram(app, tea.WithAltScreen())
	app.BindProgram(p)
	app.RegisterFlow(ui.FlowCheckout, func() tea.Cmd {
		return func() tea.Msg {
			err := flow.Checkout(ctx, app.Screen, book, p.Send, log)
			return ui.FlowDoneMsg{Name: ui.FlowCheckout, Err: err}
		}
	})

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
