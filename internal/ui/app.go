package ui

import (
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"pastamakers/internal/menu"
	"pastamakers/internal/reservation"
)

// errNoService is reported when a view needs the API but none was wired.
var errNoService = errors.New("reservation service not configured")

// wideLayout is the terminal width from which panels sit side by side.
const wideLayout = 100

// Deps are the collaborators the root model is built from.
type Deps struct {
	Service reservation.Service
	Dishes  []menu.Dish
	Logger  zerolog.Logger
	Payoff  string
}

// AppModel is the root model. It lays out the page and routes messages:
// overlays first, then global keys, then the focused panel.
type AppModel struct {
	Navbar       *Navbar
	Reservations *ReservationListView
	Form         *ReservationFormView
	Gallery      *GalleryView
	Comments     *CommentPanel
	Focus        *FocusManager
	Overlays     OverlayStack
	KeyHandler   *KeyHandler
	Log          zerolog.Logger

	width  int
	height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model.
func NewAppModel(deps Deps) *AppModel {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("ctrl+c", tea.Quit, "quit")
	reg.BindWithDesc("tab", focusNextCmd, "next panel")
	reg.BindWithDesc("shift+tab", focusPrevCmd, "prev panel")

	m := &AppModel{
		Navbar:       NewNavbar(deps.Payoff),
		Reservations: NewReservationListView(deps.Service),
		Form:         NewReservationFormView(deps.Service),
		Gallery:      NewGalleryView(deps.Dishes),
		Comments:     NewCommentPanel(),
		Focus:        NewFocusManager(PanelForm, PanelGallery),
		KeyHandler:   NewKeyHandler(reg),
		Log:          deps.Logger,
	}
	m.Form.SetFocused(true)
	return m
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model. The lister's fetch starts here, once.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(a.Reservations.Init(), a.Form.Init())
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		panel := tea.WindowSizeMsg{Width: a.columnWidth(), Height: msg.Height}
		a.Reservations.Update(panel)
		a.Gallery.Update(panel)
		return a, nil
	case tea.KeyMsg:
		// A shown overlay takes every key.
		if top, ok := a.Overlays.Top(); ok {
			if top.Dismisses(msg.String()) {
				a.Overlays.Pop()
				return a, nil
			}
			return a, a.Overlays.Route(msg)
		}
		if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
			return a, cmd
		}
		return a, a.routeKey(msg)
	case FocusNextMsg:
		a.Focus.Next()
		return a, a.applyFocus()
	case FocusPrevMsg:
		a.Focus.Prev()
		return a, a.applyFocus()
	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil
	case ReservationsLoadedMsg:
		if msg.Err != nil {
			a.Log.Error().Err(msg.Err).Int("lister", msg.ListerID).Msg("loading reservations failed")
		} else {
			a.Log.Debug().Int("lister", msg.ListerID).Int("count", len(msg.Reservations)).Msg("reservations loaded")
		}
		_, cmd := a.Reservations.Update(msg)
		return a, cmd
	case ReservationSubmittedMsg:
		return a, a.handleSubmitted(msg)
	case DishSelectedMsg:
		a.Log.Debug().Int("dish", msg.Dish.ID).Str("name", msg.Dish.Name).Msg("dish selected")
		a.Comments.Update(msg)
		return a, nil
	case spinner.TickMsg:
		_, cmd := a.Reservations.Update(msg)
		return a, cmd
	}

	// Cursor blinks and the like belong to the form's inputs.
	_, cmd := a.Form.Update(msg)
	return a, cmd
}

// routeKey hands a key to the focused panel.
func (a *appModelAdapter) routeKey(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch a.Focus.Current {
	case PanelForm:
		_, cmd = a.Form.Update(msg)
	case PanelGallery:
		_, cmd = a.Gallery.Update(msg)
	}
	return cmd
}

func (a *appModelAdapter) applyFocus() tea.Cmd {
	a.Gallery.SetFocused(a.Focus.Is(PanelGallery))
	return a.Form.SetFocused(a.Focus.Is(PanelForm))
}

// handleSubmitted acknowledges a submission. Only a success resets the form.
func (a *appModelAdapter) handleSubmitted(msg ReservationSubmittedMsg) tea.Cmd {
	var cmd tea.Cmd
	if msg.Err != nil {
		ev := a.Log.Error().Err(msg.Err)
		var se *reservation.StatusError
		if errors.As(msg.Err, &se) {
			ev = ev.Int("status", se.StatusCode)
		}
		ev.Bool("transport", errors.Is(msg.Err, reservation.ErrTransport)).Msg("reservation not saved")
	} else {
		a.Log.Info().Str("name", msg.Draft.Name).Int("people", msg.Draft.NumberOfPeople).Msg("reservation saved")
		cmd = a.Form.Reset()
	}
	a.Overlays.Push(Overlay{View: NewSubmitAckModal(msg.Err), DismissKeys: []string{"esc"}})
	return cmd
}

func (a *appModelAdapter) columnWidth() int {
	if a.width >= wideLayout {
		return a.width / 2
	}
	return a.width
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if a.Overlays.Len() > 0 && a.width > 0 && a.height > 0 {
		top, _ := a.Overlays.Top()
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, top.View.View())
	}

	left := lipgloss.JoinVertical(lipgloss.Left, a.Gallery.View(), a.Comments.View())
	right := lipgloss.JoinVertical(lipgloss.Left, a.Reservations.View(), a.Form.View())
	var body string
	if a.width >= wideLayout {
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, left, right)
	}

	page := lipgloss.JoinVertical(lipgloss.Left,
		a.Navbar.Render(a.width),
		body,
		RenderKeybindHelp(a.KeyHandler.Registry, a.localHints(), a.width),
	)
	if a.Overlays.Len() > 0 {
		top, _ := a.Overlays.Top()
		page += "\n" + top.View.View()
	}
	return page
}

func (a *appModelAdapter) localHints() []Binding {
	switch a.Focus.Current {
	case PanelForm:
		return a.Form.KeyHints()
	case PanelGallery:
		return a.Gallery.KeyHints()
	}
	return nil
}
