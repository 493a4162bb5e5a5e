package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pastamakers/internal/reservation"
)

// formControl is one focusable control of the reservation form.
type formControl int

const (
	ctlName formControl = iota
	ctlPhone
	ctlParty
	ctlSmoking
	ctlDateTime
	ctlRequests
	ctlSubmit
	controlCount
)

// DateTimePlaceholder shows the expected date-time shape.
const DateTimePlaceholder = "2023-05-01T19:00"

var controlLabels = [controlCount]string{
	ctlName:     "Your name",
	ctlPhone:    "Your phone",
	ctlParty:    "How many people?",
	ctlSmoking:  "Smoking?",
	ctlDateTime: "Date and time",
	ctlRequests: "Any special request?",
	ctlSubmit:   "",
}

// ReservationFormView edits a reservation draft and submits it.
type ReservationFormView struct {
	Draft reservation.Draft
	Hint  string // validation or submission hint shown under the form

	svc      reservation.Service
	name     textinput.Model
	phone    textinput.Model
	dateTime textinput.Model
	requests textarea.Model
	active   formControl
	focused  bool
}

// Ensure ReservationFormView implements View.
var _ View = (*ReservationFormView)(nil)

// NewReservationFormView creates a form holding the default draft.
func NewReservationFormView(svc reservation.Service) *ReservationFormView {
	newInput := func(placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.Width = 32
		ti.Prompt = ""
		return ti
	}
	ta := textarea.New()
	ta.Placeholder = "Allergies, high chair, window table..."
	ta.ShowLineNumbers = false
	ta.SetWidth(40)
	ta.SetHeight(3)

	return &ReservationFormView{
		Draft:    reservation.DefaultDraft(),
		svc:      svc,
		name:     newInput("Mario Rossi"),
		phone:    newInput("+39 333 1234567"),
		dateTime: newInput(DateTimePlaceholder),
		requests: ta,
	}
}

// Init implements View.
func (f *ReservationFormView) Init() tea.Cmd {
	return textinput.Blink
}

// SetFocused gives the form keyboard focus or takes it away.
func (f *ReservationFormView) SetFocused(focused bool) tea.Cmd {
	f.focused = focused
	return f.focusActive()
}

// Reset restores the default draft and empties every control.
func (f *ReservationFormView) Reset() tea.Cmd {
	f.Draft = reservation.DefaultDraft()
	f.name.SetValue("")
	f.phone.SetValue("")
	f.dateTime.SetValue("")
	f.requests.Reset()
	f.Hint = ""
	f.active = ctlName
	return f.focusActive()
}

// focusActive blurs every input and focuses the active one when the form
// has focus.
func (f *ReservationFormView) focusActive() tea.Cmd {
	f.name.Blur()
	f.phone.Blur()
	f.dateTime.Blur()
	f.requests.Blur()
	if !f.focused {
		return nil
	}
	switch f.active {
	case ctlName:
		return f.name.Focus()
	case ctlPhone:
		return f.phone.Focus()
	case ctlDateTime:
		return f.dateTime.Focus()
	case ctlRequests:
		return f.requests.Focus()
	}
	return nil
}

func (f *ReservationFormView) move(delta int) tea.Cmd {
	n := int(controlCount)
	f.active = formControl(((int(f.active)+delta)%n + n) % n)
	return f.focusActive()
}

// Update implements View.
func (f *ReservationFormView) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, f.updateInputs(msg)
	}

	switch km.String() {
	case "ctrl+s":
		return f, f.Submit()
	case "up":
		return f, f.move(-1)
	case "down":
		return f, f.move(1)
	case "enter":
		if f.active == ctlSubmit {
			return f, f.Submit()
		}
		return f, f.move(1)
	}

	switch f.active {
	case ctlParty:
		switch km.String() {
		case "left", "h", "-":
			f.cycleParty(-1)
		case "right", "l", "+":
			f.cycleParty(1)
		}
		return f, nil
	case ctlSmoking:
		switch km.String() {
		case " ", "x":
			f.change(reservation.FieldSmoking, !f.Draft.Smoking)
		}
		return f, nil
	case ctlSubmit:
		if km.String() == " " {
			return f, f.Submit()
		}
		return f, nil
	}
	return f, f.updateInputs(msg)
}

// updateInputs forwards msg to the active text control and records the
// resulting value in the draft.
func (f *ReservationFormView) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.active {
	case ctlName:
		f.name, cmd = f.name.Update(msg)
		f.changeText(reservation.FieldName, f.name.Value())
	case ctlPhone:
		f.phone, cmd = f.phone.Update(msg)
		f.changeText(reservation.FieldPhone, f.phone.Value())
	case ctlDateTime:
		f.dateTime, cmd = f.dateTime.Update(msg)
		f.changeText(reservation.FieldDateTime, f.dateTime.Value())
	case ctlRequests:
		f.requests, cmd = f.requests.Update(msg)
		f.changeText(reservation.FieldSpecialRequests, f.requests.Value())
	}
	return cmd
}

func (f *ReservationFormView) changeText(field reservation.Field, value string) {
	if f.textValue(field) == value {
		return
	}
	f.change(field, value)
}

func (f *ReservationFormView) textValue(field reservation.Field) string {
	switch field {
	case reservation.FieldName:
		return f.Draft.Name
	case reservation.FieldPhone:
		return f.Draft.Phone
	case reservation.FieldDateTime:
		return f.Draft.DateTime
	case reservation.FieldSpecialRequests:
		return f.Draft.SpecialRequests
	}
	return ""
}

// cycleParty steps through the offered party sizes, wrapping at both ends.
// The value travels as text, like an HTML select's.
func (f *ReservationFormView) cycleParty(delta int) {
	opts := reservation.PartySizeOptions()
	idx := 0
	for i, n := range opts {
		if n == f.Draft.NumberOfPeople {
			idx = i
		}
	}
	idx = ((idx+delta)%len(opts) + len(opts)) % len(opts)
	f.change(reservation.FieldNumberOfPeople, strconv.Itoa(opts[idx]))
}

// change applies one field-change event to the draft.
func (f *ReservationFormView) change(field reservation.Field, value any) {
	next, err := f.Draft.Apply(field, value)
	if err != nil {
		f.Hint = err.Error()
		return
	}
	f.Draft = next
}

// Submit sends the current draft. Blank required fields block the request
// and are named in the hint instead.
func (f *ReservationFormView) Submit() tea.Cmd {
	if missing := f.Draft.Missing(); len(missing) > 0 {
		names := make([]string, len(missing))
		for i, m := range missing {
			names[i] = fieldLabel(m)
		}
		f.Hint = "Please fill in: " + strings.Join(names, ", ")
		return nil
	}
	f.Hint = ""
	return submitReservationCmd(f.svc, f.Draft)
}

func fieldLabel(field reservation.Field) string {
	switch field {
	case reservation.FieldName:
		return controlLabels[ctlName]
	case reservation.FieldPhone:
		return controlLabels[ctlPhone]
	case reservation.FieldDateTime:
		return controlLabels[ctlDateTime]
	}
	return string(field)
}

// KeyHints lists the form's own keys for the help bar.
func (f *ReservationFormView) KeyHints() []Binding {
	hints := []Binding{{Key: "↑/↓", Desc: "field"}}
	switch f.active {
	case ctlParty:
		hints = append(hints, Binding{Key: "←/→", Desc: "people"})
	case ctlSmoking:
		hints = append(hints, Binding{Key: "space", Desc: "toggle"})
	}
	return append(hints, Binding{Key: "ctrl+s", Desc: "book"})
}

// View implements View.
func (f *ReservationFormView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("RESERVE A TABLE NOW!!") + "\n")

	for c := ctlName; c < ctlSubmit; c++ {
		marker := "  "
		label := Styles.Label
		if f.focused && c == f.active {
			marker = Styles.Selected.Render("› ")
			label = Styles.Selected
		}
		b.WriteString(marker + label.Render(controlLabels[c]) + "\n")
		b.WriteString("  " + f.controlView(c) + "\n")
	}

	button := Styles.Button
	if f.focused && f.active == ctlSubmit {
		button = Styles.ButtonActive
	}
	b.WriteString("\n  " + button.Render("Book") + "\n")
	if f.Hint != "" {
		b.WriteString("\n" + Styles.Hint.Render(f.Hint))
	}
	return panelStyle(f.focused).Render(strings.TrimRight(b.String(), "\n"))
}

func (f *ReservationFormView) controlView(c formControl) string {
	switch c {
	case ctlName:
		return f.name.View()
	case ctlPhone:
		return f.phone.View()
	case ctlParty:
		return fmt.Sprintf("‹ %d ›", f.Draft.NumberOfPeople)
	case ctlSmoking:
		if f.Draft.Smoking {
			return "[x] smoking table"
		}
		return "[ ] smoking table"
	case ctlDateTime:
		return f.dateTime.View()
	case ctlRequests:
		return f.requests.View()
	}
	return ""
}
