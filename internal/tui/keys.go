package tui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Key scopes.
const (
	scopeMap     = "map"
	scopeFocused = "focused"
	scopeSearch  = "search"
)

// Key actions.
const (
	actQuit     = "quit"
	actEscape   = "escape"
	actReset    = "reset"
	actSearch   = "search"
	actSubmit   = "submit"
	actBack     = "back"
	actEdit     = "edit"
	actAdopt    = "adopt"
	actVisit    = "visit"
	actNavigate = "navigate"
	actTheme    = "theme"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

// DefaultBindings are the map view key bindings.
func DefaultBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"q"}, Action: actQuit, Description: "quit", Scopes: []string{scopeMap, scopeFocused}},
		{Keys: []string{"ctrl+c"}, Action: actQuit, Description: "quit", Scopes: []string{"*"}},
		{Keys: []string{"esc"}, Action: actEscape, Description: "zoom out", Scopes: []string{scopeFocused, scopeSearch}},
		{Keys: []string{"enter"}, Action: actSubmit, Description: "jump", Scopes: []string{scopeSearch}},
		{Keys: []string{"/"}, Action: actSearch, Description: "find cafe", Scopes: []string{scopeMap, scopeFocused}},
		{Keys: []string{"r", "0"}, Action: actReset, Description: "reset view", Scopes: []string{scopeMap, scopeFocused}},
		{Keys: []string{"e"}, Action: actEdit, Description: "edit", Scopes: []string{scopeFocused}},
		{Keys: []string{"a"}, Action: actAdopt, Description: "adopt", Scopes: []string{scopeFocused}},
		{Keys: []string{"v"}, Action: actVisit, Description: "visit", Scopes: []string{scopeFocused}},
		{Keys: []string{"b"}, Action: actBack, Description: "back", Scopes: []string{scopeFocused}},
		{Keys: []string{"c"}, Action: actNavigate, Description: "cafferots", Scopes: []string{scopeMap, scopeFocused}},
		{Keys: []string{"t"}, Action: actTheme, Description: "theme", Scopes: []string{scopeMap, scopeFocused}},
	}
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if b.Action != action || !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return true
			}
		}
	}
	return false
}

// Action returns the first action bound to msg in scope, or "".
func (r *KeyRegistry) Action(msg tea.KeyMsg, scope string) string {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return b.Action
			}
		}
	}
	return ""
}

// Help renders "key desc" pairs for scope, skipping duplicate actions.
func (r *KeyRegistry) Help(scope string) string {
	seen := map[string]bool{}
	var parts []string
	for _, b := range r.BindingsForScope(scope) {
		if seen[b.Action] || len(b.Keys) == 0 {
			continue
		}
		seen[b.Action] = true
		parts = append(parts, b.Keys[0]+" "+b.Description)
	}
	return strings.Join(parts, " · ")
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}
