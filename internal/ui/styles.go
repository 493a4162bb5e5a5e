package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "114" // Basil green - titles, spinner
	ColorHighlight = "209" // Tomato - focused borders, cursor
	ColorDanger    = "196" // Red - errors
	ColorMuted     = "241" // Gray - hints, placeholders
	ColorText      = "252" // Light gray - normal text
	ColorCream     = "230" // Parmesan - navbar text
	ColorSuccess   = "78"  // Green - confirmations
)

// Styles contains shared style definitions used across panels and modals.
var Styles = struct {
	Navbar       lipgloss.Style
	Brand        lipgloss.Style
	Payoff       lipgloss.Style
	NavLink      lipgloss.Style
	Title        lipgloss.Style
	TitleSuccess lipgloss.Style
	TitleDanger  lipgloss.Style
	Panel        lipgloss.Style
	PanelFocused lipgloss.Style
	Modal        lipgloss.Style
	ModalDanger  lipgloss.Style
	Banner       lipgloss.Style
	Row          lipgloss.Style
	Selected     lipgloss.Style
	Muted        lipgloss.Style
	Empty        lipgloss.Style
	Hint         lipgloss.Style
	Label        lipgloss.Style
	Price        lipgloss.Style
	Button       lipgloss.Style
	ButtonActive lipgloss.Style
}{
	Navbar: lipgloss.NewStyle().
		Background(lipgloss.Color("52")).
		Foreground(lipgloss.Color(ColorCream)).
		Padding(0, 1),
	Brand: lipgloss.NewStyle().
		Bold(true).
		Background(lipgloss.Color("52")).
		Foreground(lipgloss.Color(ColorCream)),
	Payoff: lipgloss.NewStyle().
		Italic(true).
		Background(lipgloss.Color("52")).
		Foreground(lipgloss.Color(ColorHighlight)),
	NavLink: lipgloss.NewStyle().
		Background(lipgloss.Color("52")).
		Foreground(lipgloss.Color(ColorMuted)),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TitleSuccess: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorSuccess)),
	TitleDanger: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Panel: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	PanelFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	Modal: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorSuccess)).
		Padding(1, 4),
	ModalDanger: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 4),
	Banner: lipgloss.NewStyle().
		Foreground(lipgloss.Color("231")).
		Background(lipgloss.Color(ColorDanger)).
		Padding(0, 1),
	Row: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Price: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true),
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Background(lipgloss.Color("238")).
		Padding(0, 2),
	ButtonActive: lipgloss.NewStyle().
		Foreground(lipgloss.Color("231")).
		Background(lipgloss.Color("25")).
		Bold(true).
		Padding(0, 2),
}

// panelStyle picks the border style for a panel by focus.
func panelStyle(focused bool) lipgloss.Style {
	if focused {
		return Styles.PanelFocused
	}
	return Styles.Panel
}
