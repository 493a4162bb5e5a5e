package ui

import (
	"pastamakers/internal/menu"
	"pastamakers/internal/reservation"
)

// ReservationsLoadedMsg carries the result of a lister's one-time fetch.
// ListerID addresses the lister instance that asked for it.
type ReservationsLoadedMsg struct {
	ListerID     int
	Reservations []reservation.StoredReservation
	Err          error
}

// ReservationSubmittedMsg carries the outcome of one form submission.
// Draft is the value that was sent.
type ReservationSubmittedMsg struct {
	Draft reservation.Draft
	Err   error
}

// DishSelectedMsg is sent when the user activates a dish in the gallery.
type DishSelectedMsg struct {
	Dish menu.Dish
}

// FocusNextMsg moves keyboard focus to the next panel (tab).
type FocusNextMsg struct{}

// FocusPrevMsg moves keyboard focus to the previous panel (shift+tab).
type FocusPrevMsg struct{}

// DismissModalMsg is sent when the user acknowledges the top modal.
type DismissModalMsg struct{}
