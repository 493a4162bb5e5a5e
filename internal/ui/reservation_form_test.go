package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pastamakers/internal/reservation"
)

// newFocusedForm returns a form that receives keys, like the app's initial state.
func newFocusedForm(svc reservation.Service) *ReservationFormView {
	f := NewReservationFormView(svc)
	f.SetFocused(true)
	return f
}

// fillExample types the sample reservation: Ana, 123, party of 2, 2023-05-01T19:00.
func fillExample(f *ReservationFormView) {
	f.Update(typeText("Ana"))
	f.Update(keyMsg("down"))
	f.Update(typeText("123"))
	f.Update(keyMsg("down"))
	f.Update(keyMsg("right"))
	f.Update(keyMsg("down"))
	f.Update(keyMsg("down"))
	f.Update(typeText("2023-05-01T19:00"))
}

func TestReservationForm_StartsWithDefaultDraft(t *testing.T) {
	f := NewReservationFormView(nil)
	assert.Equal(t, reservation.DefaultDraft(), f.Draft)
}

func TestReservationForm_SubmitSendsDraft(t *testing.T) {
	svc := &fakeService{}
	f := newFocusedForm(svc)
	fillExample(f)

	want := reservation.Draft{Name: "Ana", Phone: "123", NumberOfPeople: 2, DateTime: "2023-05-01T19:00"}
	require.Equal(t, want, f.Draft)

	_, cmd := f.Update(keyMsg("ctrl+s"))
	require.NotNil(t, cmd)
	msg, ok := cmd().(ReservationSubmittedMsg)
	require.True(t, ok)
	assert.NoError(t, msg.Err)
	assert.Equal(t, want, msg.Draft)
	assert.Equal(t, []reservation.Draft{want}, svc.created)
}

func TestReservationForm_EnterOnButtonSubmits(t *testing.T) {
	svc := &fakeService{}
	f := newFocusedForm(svc)
	fillExample(f)

	// Enter walks the remaining controls down to the button.
	f.Update(keyMsg("enter")) // date -> requests
	_, cmd := f.Update(keyMsg("enter"))
	assert.Nil(t, cmd, "enter on requests moves to the button")
	_, cmd = f.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	cmd()
	assert.Len(t, svc.created, 1)
}

func TestReservationForm_MissingRequiredBlocksSubmit(t *testing.T) {
	svc := &fakeService{}
	f := newFocusedForm(svc)
	f.Update(typeText("Ana"))

	_, cmd := f.Update(keyMsg("ctrl+s"))
	assert.Nil(t, cmd)
	assert.Empty(t, svc.created)
	assert.Contains(t, f.Hint, "Your phone")
	assert.Contains(t, f.Hint, "Date and time")
	assert.NotContains(t, f.Hint, "Your name")
}

func TestReservationForm_EditTouchesOneField(t *testing.T) {
	f := newFocusedForm(nil)
	fillExample(f)
	before := f.Draft

	f.Update(keyMsg("up")) // date -> smoking
	f.Update(keyMsg(" "))

	after := before
	after.Smoking = true
	assert.Equal(t, after, f.Draft)

	f.Update(keyMsg("x"))
	assert.Equal(t, before, f.Draft)
}

func TestReservationForm_PartySizeStaysInOptions(t *testing.T) {
	f := newFocusedForm(nil)
	f.Update(keyMsg("down"))
	f.Update(keyMsg("down"))

	f.Update(keyMsg("left"))
	assert.Equal(t, reservation.MaxPartySize, f.Draft.NumberOfPeople, "left from 1 wraps to 8")
	f.Update(keyMsg("right"))
	assert.Equal(t, reservation.MinPartySize, f.Draft.NumberOfPeople)

	for i := 0; i < 20; i++ {
		f.Update(keyMsg("right"))
		assert.Contains(t, reservation.PartySizeOptions(), f.Draft.NumberOfPeople)
	}
}

func TestReservationForm_SpecialRequests(t *testing.T) {
	f := newFocusedForm(nil)
	for i := 0; i < int(ctlRequests); i++ {
		f.Update(keyMsg("down"))
	}
	f.Update(typeText("window table"))
	assert.Equal(t, "window table", f.Draft.SpecialRequests)
}

func TestReservationForm_DoubleSubmitSendsTwice(t *testing.T) {
	svc := &fakeService{}
	f := newFocusedForm(svc)
	fillExample(f)

	_, first := f.Update(keyMsg("ctrl+s"))
	_, second := f.Update(keyMsg("ctrl+s"))
	require.NotNil(t, first)
	require.NotNil(t, second)
	first()
	second()
	assert.Len(t, svc.created, 2)
}

func TestReservationForm_Reset(t *testing.T) {
	f := newFocusedForm(nil)
	fillExample(f)
	f.Hint = "stale"

	f.Reset()
	assert.Equal(t, reservation.DefaultDraft(), f.Draft)
	assert.Empty(t, f.name.Value())
	assert.Empty(t, f.phone.Value())
	assert.Empty(t, f.dateTime.Value())
	assert.Empty(t, f.requests.Value())
	assert.Empty(t, f.Hint)
	assert.Equal(t, ctlName, f.active)
}

func TestReservationForm_UnfocusedIgnoresTyping(t *testing.T) {
	f := NewReservationFormView(nil)
	f.Update(typeText("Ana"))
	assert.Empty(t, f.Draft.Name)
}

func TestReservationForm_View(t *testing.T) {
	f := newFocusedForm(nil)
	out := f.View()
	for _, want := range []string{"RESERVE A TABLE NOW!!", "Your name", "How many people?", "‹ 1 ›", "[ ] smoking table", "Book"} {
		assert.True(t, strings.Contains(out, want), "view missing %q", want)
	}
}
