package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp produces the help bar shown under the page: the focused
// panel's keys first, then the global bindings.
func RenderKeybindHelp(registry *KeybindRegistry, local []Binding, width int) string {
	km := NewKeyMap(registry, local)
	if len(km.ShortHelp()) == 0 {
		return ""
	}

	helpModel := help.New()
	helpModel.Width = width
	helpModel.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	helpModel.Styles.ShortDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	helpModel.Styles.ShortSeparator = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))

	return helpModel.View(km)
}
