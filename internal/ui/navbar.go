package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultPayoff is the tagline shown next to the brand.
const DefaultPayoff = "Perfect Pasta Makers"

// Navbar is the fixed top bar. It has no state beyond its text.
type Navbar struct {
	Brand  string
	Payoff string
	Links  []string
}

// NewNavbar creates the navbar with the restaurant's brand and payoff.
func NewNavbar(payoff string) *Navbar {
	if payoff == "" {
		payoff = DefaultPayoff
	}
	return &Navbar{
		Brand:  "Strivestaurant",
		Payoff: payoff,
		Links:  []string{"Menu", "Reservations", "Our location"},
	}
}

// Render draws the bar at the given width.
func (n *Navbar) Render(width int) string {
	left := Styles.Brand.Render(n.Brand) + Styles.NavLink.Render(" - ") + Styles.Payoff.Render(n.Payoff)
	right := Styles.NavLink.Render(strings.Join(n.Links, "  "))
	bar := Styles.Navbar
	if width > 0 {
		gap := width - lipgloss.Width(left) - lipgloss.Width(right) - bar.GetHorizontalPadding()
		if gap < 1 {
			// Not enough room for the links.
			return bar.Width(width).Render(left)
		}
		return bar.Width(width).Render(left + Styles.NavLink.Render(strings.Repeat(" ", gap)) + right)
	}
	return bar.Render(left + Styles.NavLink.Render("  ") + right)
}
