package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyRegistryScopeMatch(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	if got := reg.ActionFor(enter, scopeInput); got != actionSearch {
		t.Fatalf("enter in input = %q, want %q", got, actionSearch)
	}
	if got := reg.ActionFor(enter, scopeClearButton); got != actionReset {
		t.Fatalf("enter on clear button = %q, want %q", got, actionReset)
	}
	if got := reg.ActionFor(enter, scopeAlert); got != actionDismiss {
		t.Fatalf("enter in alert = %q, want %q", got, actionDismiss)
	}
	if got := reg.ActionFor(tea.KeyMsg{Type: tea.KeyUp}, scopeSearchButton); got != "" {
		t.Fatalf("did not expect up to be bound outside the input, got %q", got)
	}
	if reg.ActionFor(tea.KeyMsg{Type: tea.KeyCtrlC}, scopeConfirm) != actionQuit {
		t.Fatalf("expected ctrl+c to match wildcard scope")
	}
	if reg.ActionFor(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'5'}}, scopeInput) != "" {
		t.Fatalf("digits must not be bound")
	}
}

func TestBindingsForScopeHidesOtherScopes(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	for _, b := range reg.BindingsForScope(scopeAlert) {
		if b.Action != actionDismiss && b.Action != actionQuit {
			t.Fatalf("unexpected binding %q in alert scope", b.Action)
		}
	}
}
