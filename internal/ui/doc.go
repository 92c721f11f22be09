// Package ui is the rendering layer over the navigation core. It draws the
// base screen, composites presented sheet/alert children on top of it as a
// pure function of the screen Host's slot contents, routes key input to the
// top-most presented child, and translates Esc into forced dismissal.
//
// Core abstractions:
//   - View: a screen or modal with its own model, update, view (Elm-style)
//   - AppModel: root model owning the screen Host and the base View
//   - AddressPicker / AddressForm: sheet-style modals publishing one result
//   - ConfirmAlert: fixed-button modal completing a continuation bridge
package ui
