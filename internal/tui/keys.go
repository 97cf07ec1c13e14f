package tui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Scopes name where a binding applies. The active scope is the open modal,
// or the focused element of the screen.
const (
	scopeInput        = "input"
	scopeSearchButton = "button:search"
	scopeClearButton  = "button:clear"
	scopeAlert        = "modal:alert"
	scopeConfirm      = "modal:confirm"
)

var screenScopes = []string{scopeInput, scopeSearchButton, scopeClearButton}

const (
	actionQuit         = "quit"
	actionSearch       = "search"
	actionReset        = "reset"
	actionFocusNext    = "focus-next"
	actionFocusPrev    = "focus-prev"
	actionSuggestPrev  = "suggest-prev"
	actionSuggestNext  = "suggest-next"
	actionClearHistory = "clear-history"
	actionToggleErrors = "toggle-errors"
	actionDismiss      = "dismiss"
	actionConfirm      = "confirm"
	actionCancel       = "cancel"
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

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"enter"}, Action: actionSearch, Description: "buscar", Scopes: []string{scopeInput, scopeSearchButton}},
		{Keys: []string{"enter"}, Action: actionReset, Description: "limpar", Scopes: []string{scopeClearButton}},
		{Keys: []string{"ctrl+l"}, Action: actionReset, Description: "limpar", Scopes: screenScopes},
		{Keys: []string{"tab"}, Action: actionFocusNext, Description: "próximo", Scopes: screenScopes},
		{Keys: []string{"shift+tab"}, Action: actionFocusPrev, Description: "anterior", Scopes: screenScopes},
		{Keys: []string{"up"}, Action: actionSuggestPrev, Description: "recente ↑", Scopes: []string{scopeInput}},
		{Keys: []string{"down"}, Action: actionSuggestNext, Description: "recente ↓", Scopes: []string{scopeInput}},
		{Keys: []string{"ctrl+x"}, Action: actionClearHistory, Description: "apagar histórico", Scopes: screenScopes},
		{Keys: []string{"ctrl+e"}, Action: actionToggleErrors, Description: "mostrar erros", Scopes: screenScopes},
		{Keys: []string{"esc"}, Action: actionQuit, Description: "sair", Scopes: screenScopes},
		{Keys: []string{"ctrl+c"}, Action: actionQuit, Description: "sair", Scopes: []string{"*"}},
		{Keys: []string{"enter", "esc"}, Action: actionDismiss, Description: "ok", Scopes: []string{scopeAlert}},
		{Keys: []string{"y"}, Action: actionConfirm, Description: "sim", Scopes: []string{scopeConfirm}},
		{Keys: []string{"n", "esc"}, Action: actionCancel, Description: "não", Scopes: []string{scopeConfirm}},
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

// ActionFor returns the first action bound to msg in scope, or "".
func (r *KeyRegistry) ActionFor(msg tea.KeyMsg, scope string) string {
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
