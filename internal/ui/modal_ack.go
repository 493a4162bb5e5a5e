package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Acknowledgment texts shown after a form submission.
const (
	AckSaved  = "Reservation saved!"
	AckFailed = "Something went wrong!"
)

// AckModal is a blocking acknowledgment: it shows one message until the user
// presses Enter or Esc.
type AckModal struct {
	Title      string
	Label      string
	boxStyle   lipgloss.Style
	titleStyle lipgloss.Style
}

// Ensure AckModal implements View.
var _ View = (*AckModal)(nil)

// NewAckModal creates an acknowledgment with the neutral (success) styling.
func NewAckModal(title, label string) *AckModal {
	return &AckModal{
		Title:      title,
		Label:      label,
		boxStyle:   Styles.Modal,
		titleStyle: Styles.TitleSuccess,
	}
}

// NewSubmitAckModal creates the acknowledgment for a submission outcome.
func NewSubmitAckModal(err error) *AckModal {
	if err == nil {
		return NewAckModal(AckSaved, "See you at the table.")
	}
	m := NewAckModal(AckFailed, "Your reservation was not saved. Your details are still in the form.")
	m.boxStyle = Styles.ModalDanger
	m.titleStyle = Styles.TitleDanger
	return m
}

// Init implements View.
func (m *AckModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *AckModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "enter", " ":
			return m, dismissModalCmd
		}
	}
	return m, nil
}

// View implements View.
func (m *AckModal) View() string {
	content := m.titleStyle.Render(m.Title)
	if m.Label != "" {
		content += "\n\n" + Styles.Label.Render(m.Label)
	}
	content += "\n\n" + Styles.Hint.Render("Enter: OK")
	return m.boxStyle.Render(content)
}
