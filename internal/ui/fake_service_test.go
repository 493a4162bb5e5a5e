package ui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"pastamakers/internal/reservation"
)

// fakeService records calls and answers with canned results.
type fakeService struct {
	mu        sync.Mutex
	created   []reservation.Draft
	createErr error
	list      []reservation.StoredReservation
	listErr   error
	listCalls int
}

var _ reservation.Service = (*fakeService)(nil)

func (f *fakeService) Create(_ context.Context, d reservation.Draft) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, d)
	return f.createErr
}

func (f *fakeService) List(context.Context) ([]reservation.StoredReservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	return f.list, f.listErr
}

// collectMsgs runs cmd and any commands batched inside it, returning every
// message produced. Only use it on commands that return immediately.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, collectMsgs(c)...)
	}
	return out
}

// findMsg returns the first message of type T.
func findMsg[T tea.Msg](msgs []tea.Msg) (T, bool) {
	for _, m := range msgs {
		if t, ok := m.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}
