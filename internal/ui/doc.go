// Package ui implements the restaurant showcase as a Bubble Tea program.
//
// Building blocks:
//   - View: a panel with its own model, update and view (Elm-style)
//   - FocusManager: rotates keyboard focus across the interactive panels
//   - OverlayStack: blocking modals that take all input until dismissed
//   - KeybindRegistry: global key bindings and the help bar
//
// Panels: Navbar, ReservationListView, ReservationFormView, GalleryView and
// CommentPanel, composed by AppModel. Panels own their state; the only value
// shared between them is the dish selection, which AppModel forwards from
// the gallery to the comment panel.
package ui
