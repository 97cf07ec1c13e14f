package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

func (a *App) View() string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("Digite o CEP desejado"),
		a.renderInput(),
		a.renderSuggestions(),
		a.renderButtons(),
		a.renderResult(),
	)
	if a.width > 0 {
		body = lipgloss.PlaceHorizontal(a.width, lipgloss.Center, body)
	}

	bars := lipgloss.JoinVertical(lipgloss.Left, a.renderStatusBar(), a.renderFooter())
	screen := body
	if a.height > 0 {
		gap := a.height - lipgloss.Height(body) - lipgloss.Height(bars)
		if gap > 0 {
			screen += strings.Repeat("\n", gap)
		}
	}
	screen += "\n" + bars

	if a.modal != modalNone {
		return renderPopup(screen, a.renderModal(), a.width, a.height)
	}
	return screen
}

func (a *App) renderInput() string {
	style := inputBoxStyle
	if a.focus == focusInput {
		style = inputBoxFocusedStyle
	}
	return style.Render(a.input.View())
}

func (a *App) renderSuggestions() string {
	if len(a.suggestions) == 0 {
		return ""
	}
	parts := make([]string, 0, len(a.suggestions))
	for i, s := range a.suggestions {
		if i == a.suggestCursor {
			parts = append(parts, suggestionActiveStyle.Render(s))
			continue
		}
		parts = append(parts, suggestionStyle.Render(s))
	}
	return suggestionStyle.Render("Recentes: ") + strings.Join(parts, suggestionStyle.Render("  "))
}

func (a *App) renderButtons() string {
	render := func(label string, bg lipgloss.Color, focused bool) string {
		style := buttonStyle
		if focused {
			style = buttonFocusedStyle
		}
		return style.Background(bg).Render(label)
	}
	return "\n" + lipgloss.JoinHorizontal(lipgloss.Top,
		render("Buscar", colorSearch, a.focus == focusSearch),
		render("Limpar", colorClear, a.focus == focusClear),
	)
}

// renderResult shows the five address lines only when a record is present.
func (a *App) renderResult() string {
	if a.record == nil {
		return ""
	}
	r := a.record
	lines := []string{
		itemStyle.Render("CEP: " + r.CEP),
		itemStyle.Render("Logradouro: " + r.Street),
		itemStyle.Render("Bairro: " + r.Neighborhood),
		itemStyle.Render("Cidade: " + r.City),
		itemStyle.Render("Estado: " + r.State),
	}
	return resultStyle.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func (a *App) renderModal() string {
	switch a.modal {
	case modalAlert:
		return modalTitleStyle.Render("Aviso") + "\n" + a.alert + "\n\n[enter] OK"
	case modalConfirmClear:
		return modalTitleStyle.Render("Apagar histórico?") +
			fmt.Sprintf("\n%d consultas serão removidas.\n\n[y] Sim  [n] Não", a.pendingClear)
	default:
		return ""
	}
}

func (a *App) renderStatusBar() string {
	msg := strings.TrimSpace(a.status)
	if msg == "" {
		msg = "Pronto"
	}
	if a.statusErr {
		return renderBar(statusErrBarStyle, a.width, msg)
	}
	return renderBar(statusBarStyle, a.width, msg)
}

func (a *App) renderFooter() string {
	keyStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(colorMantle)
	descStyle := lipgloss.NewStyle().Foreground(colorMuted).Background(colorMantle)
	space := lipgloss.NewStyle().Background(colorMantle).Render(" ")
	sep := lipgloss.NewStyle().Background(colorMantle).Render("  ")

	bindings := a.keys.BindingsForScope(a.ActiveScope())
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if len(b.Keys) == 0 {
			continue
		}
		kb := key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Description))
		h := kb.Help()
		parts = append(parts, keyStyle.Render(h.Key)+space+descStyle.Render(h.Desc))
	}
	return renderBar(footerStyle, a.width, strings.Join(parts, sep))
}
