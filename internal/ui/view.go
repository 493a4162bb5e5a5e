package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; it mirrors Bubble Tea's Init/Update/View
// but returns itself as a View so panels can be swapped without type switches.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
