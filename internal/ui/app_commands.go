package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"pastamakers/internal/menu"
	"pastamakers/internal/reservation"
)

// fetchReservationsCmd performs the lister's single read. No timeout or
// cancellation is applied; the transport decides when the call gives up.
func fetchReservationsCmd(svc reservation.Service, listerID int) tea.Cmd {
	return func() tea.Msg {
		if svc == nil {
			return ReservationsLoadedMsg{ListerID: listerID, Err: errNoService}
		}
		list, err := svc.List(context.Background())
		return ReservationsLoadedMsg{ListerID: listerID, Reservations: list, Err: err}
	}
}

// submitReservationCmd performs one write of the draft as it is now.
func submitReservationCmd(svc reservation.Service, d reservation.Draft) tea.Cmd {
	return func() tea.Msg {
		if svc == nil {
			return ReservationSubmittedMsg{Draft: d, Err: errNoService}
		}
		return ReservationSubmittedMsg{Draft: d, Err: svc.Create(context.Background(), d)}
	}
}

// selectDishCmd announces the gallery's new selection.
func selectDishCmd(d menu.Dish) tea.Cmd {
	return func() tea.Msg {
		return DishSelectedMsg{Dish: d}
	}
}

func focusNextCmd() tea.Msg { return FocusNextMsg{} }

func focusPrevCmd() tea.Msg { return FocusPrevMsg{} }

func dismissModalCmd() tea.Msg { return DismissModalMsg{} }
