package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"pastamakers/internal/menu"
)

// Comment panel texts.
const (
	CommentsPlaceholder = "Click on a dish to see the reviews"
	noCommentsFormat    = "No reviews yet for %s"
)

// CommentPanel projects the selected dish's reviews. It keeps no state of
// its own besides the dish it was last given.
type CommentPanel struct {
	Dish *menu.Dish
}

// Ensure CommentPanel implements View.
var _ View = (*CommentPanel)(nil)

// NewCommentPanel creates a panel with no dish selected.
func NewCommentPanel() *CommentPanel {
	return &CommentPanel{}
}

// SetDish replaces the projected dish.
func (c *CommentPanel) SetDish(d *menu.Dish) {
	c.Dish = d
}

// Init implements View.
func (c *CommentPanel) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (c *CommentPanel) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(DishSelectedMsg); ok {
		d := msg.Dish
		c.Dish = &d
	}
	return c, nil
}

// View implements View.
func (c *CommentPanel) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("REVIEWS") + "\n")
	lines := CommentLines(c.Dish)
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(line)
	}
	return Styles.Panel.Render(b.String())
}

// CommentLines renders one line per review of d in stored order, or a single
// placeholder line when no dish is selected or the dish has no reviews.
func CommentLines(d *menu.Dish) []string {
	if d == nil {
		return []string{Styles.Empty.Render(CommentsPlaceholder)}
	}
	if len(d.Comments) == 0 {
		return []string{Styles.Empty.Render(fmt.Sprintf(noCommentsFormat, d.Name))}
	}
	lines := make([]string, len(d.Comments))
	for i, cm := range d.Comments {
		lines[i] = Styles.Row.Render(fmt.Sprintf("%d - %s", cm.Rating, cm.Comment))
	}
	return lines
}
