package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"pastamakers/internal/menu"
	"pastamakers/internal/ui/textutil"
)

// GalleryView is the dish carousel. It shows one dish at a time and holds
// the current selection, which starts out absent.
type GalleryView struct {
	Dishes   []menu.Dish
	Index    int        // dish currently shown by the carousel
	Selected *menu.Dish // last activated dish; nil until the first activation
	focused  bool
	width    int
}

// Ensure GalleryView implements View.
var _ View = (*GalleryView)(nil)

// NewGalleryView creates a carousel over dishes.
func NewGalleryView(dishes []menu.Dish) *GalleryView {
	return &GalleryView{Dishes: dishes}
}

// Init implements View.
func (g *GalleryView) Init() tea.Cmd {
	return nil
}

// SetFocused marks whether the gallery receives keys.
func (g *GalleryView) SetFocused(focused bool) {
	g.focused = focused
}

// Current returns the dish shown by the carousel, or nil when there are none.
func (g *GalleryView) Current() *menu.Dish {
	if g.Index < 0 || g.Index >= len(g.Dishes) {
		return nil
	}
	return &g.Dishes[g.Index]
}

// Update implements View.
func (g *GalleryView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		g.width = msg.Width
		return g, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			g.move(-1)
		case "right", "l":
			g.move(1)
		case "enter":
			return g, g.activate()
		}
	}
	return g, nil
}

// move scrolls the carousel, wrapping at both ends.
func (g *GalleryView) move(delta int) {
	n := len(g.Dishes)
	if n == 0 {
		return
	}
	g.Index = ((g.Index+delta)%n + n) % n
}

// activate assigns the shown dish as the selection. Activating the already
// selected dish keeps it selected.
func (g *GalleryView) activate() tea.Cmd {
	d := g.Current()
	if d == nil {
		return nil
	}
	g.Selected = d
	return selectDishCmd(*d)
}

// KeyHints lists the gallery's own keys for the help bar.
func (g *GalleryView) KeyHints() []Binding {
	return []Binding{
		{Key: "←/→", Desc: "browse"},
		{Key: "enter", Desc: "show reviews"},
	}
}

// View implements View.
func (g *GalleryView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("OUR PASTA") + "\n")

	d := g.Current()
	if d == nil {
		b.WriteString(Styles.Empty.Render("The kitchen is closed: no dishes on the menu"))
		return panelStyle(g.focused).Render(b.String())
	}

	textWidth := g.width - 8
	if textWidth < 20 {
		textWidth = 60
	}

	name := d.Name
	if g.Selected != nil && g.Selected.ID == d.ID {
		name = "● " + name
	}
	fmt.Fprintf(&b, "‹  %s  ›\n", Styles.Selected.Render(name))
	b.WriteString(Styles.Muted.Render("["+d.Image+"]") + "\n")
	b.WriteString(textutil.Truncate(d.Description, textWidth) + "\n")
	b.WriteString(Styles.Price.Render(d.Price) + "\n")
	b.WriteString(g.dots())
	return panelStyle(g.focused).Render(b.String())
}

// dots renders the carousel position indicator.
func (g *GalleryView) dots() string {
	parts := make([]string, len(g.Dishes))
	for i := range g.Dishes {
		if i == g.Index {
			parts[i] = Styles.Selected.Render("●")
		} else {
			parts[i] = Styles.Muted.Render("○")
		}
	}
	return strings.Join(parts, " ")
}
