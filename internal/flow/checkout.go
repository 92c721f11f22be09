// Package flow contains the demo application's business flows, written as
// linear suspending code over the navigation core. Each flow runs on its own
// goroutine (a Bubble Tea command) and blocks inside nav.Present calls while
// the render loop keeps running.
package flow

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"navkit/internal/address"
	"navkit/internal/nav"
	"navkit/internal/ui"
)

// Checkout picks a shipping address, optionally creating and saving a new
// one, then reports the choice to the storefront. A dismissed modal at any
// step abandons the flow and leaves the screen exactly as it was; that is the
// ordinary "user backed out" outcome, not an error.
func Checkout(ctx context.Context, screen *nav.Host, book *address.Book, send func(tea.Msg), log zerolog.Logger) error {
	pick, err := nav.PresentSheet(ctx, screen, ui.NewAddressPicker(book.List()))
	if err != nil {
		if nav.IsCancelled(err) {
			log.Debug().Msg("checkout: picker dismissed")
			return nil
		}
		return err
	}

	addr := pick.Addr
	if pick.CreateNew {
		a, err := nav.PresentSheet(ctx, screen, ui.NewAddressForm())
		if err != nil {
			if nav.IsCancelled(err) {
				log.Debug().Msg("checkout: address form dismissed")
				return nil
			}
			return err
		}
		save, err := nav.PresentAlert(ctx, screen, ui.NewConfirmAlert("Save address?", a.String()))
		if err != nil {
			if nav.IsCancelled(err) {
				log.Debug().Msg("checkout: save confirm dismissed")
				return nil
			}
			return err
		}
		if save {
			book.Save(a)
			log.Debug().Str("label", a.Label).Msg("checkout: address saved")
		}
		addr = a
	}

	send(ui.ShippingChosenMsg{Addr: addr})
	log.Debug().Str("label", addr.Label).Msg("checkout: shipping chosen")
	return nil
}
