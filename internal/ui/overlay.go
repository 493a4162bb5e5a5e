package ui

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"
)

// Overlay is a blocking view drawn above the page.
type Overlay struct {
	View View
	// DismissKeys close the overlay without consulting its View.
	DismissKeys []string
}

// Dismisses reports whether key closes o.
func (o Overlay) Dismisses(key string) bool {
	return slices.Contains(o.DismissKeys, key)
}

// OverlayStack holds the shown overlays. While it is non-empty the top one
// receives every key and the page underneath receives none.
type OverlayStack struct {
	items []Overlay
}

// Push shows o above everything else.
func (s *OverlayStack) Push(o Overlay) {
	s.items = append(s.items, o)
}

// Pop closes the top overlay. It reports false when nothing was shown.
func (s *OverlayStack) Pop() bool {
	if len(s.items) == 0 {
		return false
	}
	s.items = s.items[:len(s.items)-1]
	return true
}

// Top returns the overlay currently receiving input.
func (s *OverlayStack) Top() (Overlay, bool) {
	if len(s.items) == 0 {
		return Overlay{}, false
	}
	return s.items[len(s.items)-1], true
}

// Len returns the number of shown overlays.
func (s *OverlayStack) Len() int {
	return len(s.items)
}

// Route hands msg to the top overlay and keeps the View it returns.
func (s *OverlayStack) Route(msg tea.Msg) tea.Cmd {
	if len(s.items) == 0 {
		return nil
	}
	top := &s.items[len(s.items)-1]
	next, cmd := top.View.Update(msg)
	top.View = next
	return cmd
}
