package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps global keys to commands. Keys use tea.KeyMsg.String()
// notation: "ctrl+c", "tab", "shift+tab".
//
// Only modifier and navigation keys belong here: plain runes must reach the
// form's text inputs.
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	order        []string // registration order, for stable help output
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
	}
}

// Bind registers a key to a command.
// Overwrites any existing binding for the key.
func (r *KeybindRegistry) Bind(k string, cmd tea.Cmd) {
	r.BindWithDesc(k, cmd, "")
}

// BindWithDesc registers a key with a description for the help bar.
func (r *KeybindRegistry) BindWithDesc(k string, cmd tea.Cmd, desc string) {
	if _, exists := r.bindings[k]; !exists {
		r.order = append(r.order, k)
	}
	r.bindings[k] = cmd
	if desc != "" {
		r.descriptions[k] = desc
	} else {
		delete(r.descriptions, k)
	}
}

// Lookup returns the command for a key, or nil if not bound.
func (r *KeybindRegistry) Lookup(k string) tea.Cmd {
	return r.bindings[k]
}

// Binding is one entry of the help bar.
type Binding struct {
	Key  string
	Desc string
}

// Hints returns bound keys with descriptions in registration order.
// Keys bound to a nil command are skipped; a missing description falls back
// to the key itself.
func (r *KeybindRegistry) Hints() []Binding {
	out := make([]Binding, 0, len(r.order))
	for _, k := range r.order {
		if r.bindings[k] == nil {
			continue
		}
		desc := r.descriptions[k]
		if desc == "" {
			desc = k
		}
		out = append(out, Binding{Key: k, Desc: desc})
	}
	return out
}

// KeyHandler dispatches key messages to the registry.
type KeyHandler struct {
	Registry *KeybindRegistry
}

// NewKeyHandler creates a handler over reg.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Handle processes a KeyMsg. Returns (consumed, cmd).
// If consumed is true, the key was a global binding and must not reach the panels.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	if h == nil || h.Registry == nil {
		return false, nil
	}
	if c := h.Registry.Lookup(msg.String()); c != nil {
		return true, c
	}
	return false, nil
}

// KeyMap implements help.KeyMap over the registry plus extra panel-local
// bindings, so the help bar can be rendered with bubbles/help.
type KeyMap struct {
	registry *KeybindRegistry
	local    []Binding
}

// NewKeyMap creates a KeyMap for the registry and the focused panel's keys.
func NewKeyMap(registry *KeybindRegistry, local []Binding) help.KeyMap {
	return &KeyMap{registry: registry, local: local}
}

// ShortHelp returns panel-local bindings followed by global ones.
func (km *KeyMap) ShortHelp() []key.Binding {
	var all []Binding
	all = append(all, km.local...)
	if km.registry != nil {
		all = append(all, km.registry.Hints()...)
	}
	bindings := make([]key.Binding, 0, len(all))
	for _, b := range all {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(b.Key),
			key.WithHelp(b.Key, b.Desc),
		))
	}
	return bindings
}

// FullHelp returns a single column with the same bindings as ShortHelp.
func (km *KeyMap) FullHelp() [][]key.Binding {
	short := km.ShortHelp()
	if len(short) == 0 {
		return nil
	}
	return [][]key.Binding{short}
}
