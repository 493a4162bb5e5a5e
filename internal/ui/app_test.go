package ui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pastamakers/internal/reservation"
)

func newTestApp(svc reservation.Service) (*AppModel, tea.Model) {
	m := NewAppModel(Deps{Service: svc, Dishes: testDishes(), Logger: zerolog.Nop()})
	return m, m.AsTeaModel()
}

// topModal returns the acknowledgment currently shown, if any.
func topModal(t *testing.T, m *AppModel) *AckModal {
	t.Helper()
	top, ok := m.Overlays.Top()
	require.True(t, ok, "expected an overlay")
	ack, ok := top.View.(*AckModal)
	require.True(t, ok, "overlay is %T", top.View)
	return ack
}

func TestApp_InitLoadsReservationsOnce(t *testing.T) {
	svc := &fakeService{list: sampleReservations()}
	m, app := newTestApp(svc)

	msgs := collectMsgs(app.Init())
	loaded, ok := findMsg[ReservationsLoadedMsg](msgs)
	require.True(t, ok)
	app.Update(loaded)

	assert.False(t, m.Reservations.Loading)
	assert.Len(t, m.Reservations.Reservations, 2)

	collectMsgs(app.Init())
	assert.Equal(t, 1, svc.listCalls)
}

func TestApp_SubmitSuccessResetsForm(t *testing.T) {
	svc := &fakeService{}
	m, app := newTestApp(svc)
	fillExample(m.Form)

	_, cmd := app.Update(keyMsg("ctrl+s"))
	require.NotNil(t, cmd)
	app.Update(cmd())

	require.Len(t, svc.created, 1)
	assert.Equal(t, "Ana", svc.created[0].Name)
	assert.Equal(t, 2, svc.created[0].NumberOfPeople)
	assert.Equal(t, reservation.DefaultDraft(), m.Form.Draft)
	assert.Equal(t, AckSaved, topModal(t, m).Title)
}

func TestApp_SubmitFailureKeepsDraft(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"status", &reservation.StatusError{Op: "create", StatusCode: 500, Body: "nope"}},
		{"transport", fmt.Errorf("reservation create: %w: %w", reservation.ErrTransport, fmt.Errorf("connection refused"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{createErr: tt.err}
			m, app := newTestApp(svc)
			fillExample(m.Form)
			before := m.Form.Draft

			_, cmd := app.Update(keyMsg("ctrl+s"))
			require.NotNil(t, cmd)
			app.Update(cmd())

			assert.Equal(t, before, m.Form.Draft)
			assert.Equal(t, AckFailed, topModal(t, m).Title)
		})
	}
}

func TestApp_OverlayBlocksInput(t *testing.T) {
	m, app := newTestApp(&fakeService{})
	m.Overlays.Push(Overlay{View: NewSubmitAckModal(nil), DismissKeys: []string{"esc"}})

	app.Update(typeText("Ana"))
	_, cmd := app.Update(keyMsg("tab"))
	assert.Empty(t, m.Form.Draft.Name, "keys must not reach the form")
	assert.Nil(t, cmd, "global keys are blocked too")
	assert.True(t, m.Focus.Is(PanelForm))

	app.Update(keyMsg("esc"))
	assert.Equal(t, 0, m.Overlays.Len())

	app.Update(typeText("Ana"))
	assert.Equal(t, "Ana", m.Form.Draft.Name)
}

func TestApp_EnterAcknowledges(t *testing.T) {
	m, app := newTestApp(&fakeService{})
	m.Overlays.Push(Overlay{View: NewSubmitAckModal(nil), DismissKeys: []string{"esc"}})

	_, cmd := app.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	app.Update(cmd())
	assert.Equal(t, 0, m.Overlays.Len())
}

func TestApp_TabMovesFocus(t *testing.T) {
	m, app := newTestApp(&fakeService{})
	require.True(t, m.Focus.Is(PanelForm))

	_, cmd := app.Update(keyMsg("tab"))
	require.NotNil(t, cmd)
	app.Update(cmd())
	assert.True(t, m.Focus.Is(PanelGallery))

	// Keys now drive the carousel, not the form.
	app.Update(keyMsg("right"))
	assert.Equal(t, "Amatriciana", m.Gallery.Current().Name)
	app.Update(typeText("x"))
	assert.Empty(t, m.Form.Draft.Name)

	_, cmd = app.Update(keyMsg("shift+tab"))
	require.NotNil(t, cmd)
	app.Update(cmd())
	assert.True(t, m.Focus.Is(PanelForm))
}

func TestApp_SelectingDishesShowsLastOnly(t *testing.T) {
	m, app := newTestApp(&fakeService{})
	assert.Contains(t, app.View(), CommentsPlaceholder)

	m.Focus.SetFocus(PanelGallery)
	_, cmd := app.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	app.Update(cmd())
	app.Update(keyMsg("right"))
	_, cmd = app.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	app.Update(cmd())

	require.NotNil(t, m.Comments.Dish)
	assert.Equal(t, "Amatriciana", m.Comments.Dish.Name)
	out := m.Comments.View()
	assert.Contains(t, out, "4 - Great guanciale")
	assert.NotContains(t, out, "Best in town")
}

func TestApp_WindowSize(t *testing.T) {
	m, app := newTestApp(&fakeService{})
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 60, m.Gallery.width)
	assert.Equal(t, 60, m.Reservations.width)

	app.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	assert.Equal(t, 80, m.Gallery.width)

	out := app.View()
	assert.Contains(t, out, DefaultPayoff)
	assert.Contains(t, out, "RESERVE A TABLE NOW!!")
}

func TestOverlayStack(t *testing.T) {
	var s OverlayStack
	assert.False(t, s.Pop())
	assert.Nil(t, s.Route(keyMsg("enter")))

	s.Push(Overlay{View: NewAckModal("first", ""), DismissKeys: []string{"esc", "q"}})
	s.Push(Overlay{View: NewAckModal("second", "")})
	top, ok := s.Top()
	require.True(t, ok)
	assert.Equal(t, "second", top.View.(*AckModal).Title)
	assert.False(t, top.Dismisses("esc"))

	require.True(t, s.Pop())
	top, _ = s.Top()
	assert.True(t, top.Dismisses("q"))
	assert.Equal(t, 1, s.Len())
}
