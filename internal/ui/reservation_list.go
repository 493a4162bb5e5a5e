package ui

import (
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pastamakers/internal/reservation"
)

// Lister texts.
const (
	ListErrorText = "An error occurred while loading the reservations"
	ListEmptyText = "No reservations yet!"
)

// listerSeq numbers lister instances so late results can be addressed.
var listerSeq atomic.Int64

// ReservationListView shows the stored reservations. It fetches them once,
// the first time it is initialized, and never refetches.
type ReservationListView struct {
	ID           int
	Reservations []reservation.StoredReservation
	Loading      bool
	Err          error

	svc         reservation.Service
	spinner     spinner.Model
	initialized bool
	width       int
}

// Ensure ReservationListView implements View.
var _ View = (*ReservationListView)(nil)

// NewReservationListView creates a lister in the loading state.
func NewReservationListView(svc reservation.Service) *ReservationListView {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))
	return &ReservationListView{
		ID:      int(listerSeq.Add(1)),
		Loading: true,
		svc:     svc,
		spinner: s,
	}
}

// Init starts the one-time fetch. Later calls return nil.
func (l *ReservationListView) Init() tea.Cmd {
	if l.initialized {
		return nil
	}
	l.initialized = true
	return tea.Batch(l.spinner.Tick, fetchReservationsCmd(l.svc, l.ID))
}

// Update implements View.
func (l *ReservationListView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case ReservationsLoadedMsg:
		if msg.ListerID != l.ID {
			return l, nil
		}
		l.Loading = false
		if msg.Err != nil {
			l.Err = msg.Err
			l.Reservations = nil
			return l, nil
		}
		l.Err = nil
		l.Reservations = msg.Reservations
		return l, nil
	case spinner.TickMsg:
		if !l.Loading {
			return l, nil
		}
		var cmd tea.Cmd
		l.spinner, cmd = l.spinner.Update(msg)
		return l, cmd
	case tea.WindowSizeMsg:
		l.width = msg.Width
	}
	return l, nil
}

// View implements View.
func (l *ReservationListView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("BOOKED TABLES") + "\n")
	b.WriteString(RenderReservationList(l.Loading, l.Err != nil, l.Reservations, l.spinner.View()))
	return Styles.Panel.Render(b.String())
}

// RenderReservationList is the lister body as a function of its state. The
// states are checked in order: loading, error, empty, rows.
func RenderReservationList(loading, failed bool, list []reservation.StoredReservation, spin string) string {
	switch {
	case loading:
		return spin
	case failed:
		return Styles.Banner.Render(ListErrorText)
	case len(list) == 0:
		return Styles.Empty.Render(ListEmptyText)
	}
	rows := make([]string, len(list))
	for i, r := range list {
		rows[i] = Styles.Row.Render("• " + r.Line())
	}
	return strings.Join(rows, "\n")
}
