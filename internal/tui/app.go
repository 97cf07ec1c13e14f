package tui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/buscacep/internal/config"
	"github.com/jask/buscacep/internal/service"
	"github.com/jask/buscacep/internal/viacep"
)

const (
	alertEmptyCode = "Digite um CEP valido"
	placeholder    = "EX: 59040240"
	inputWidth     = 28
)

// Lookuper runs lookups and exposes the recent history.
type Lookuper interface {
	Lookup(ctx context.Context, code string) (viacep.Address, error)
	Recent(ctx context.Context) ([]string, error)
	HistorySize(ctx context.Context) (int, error)
}

// HistoryCleaner wipes the lookup history.
type HistoryCleaner interface {
	ClearHistory(ctx context.Context) (int64, error)
}

type Services struct {
	Lookup      Lookuper
	Maintenance HistoryCleaner
}

// App is the CEP screen: one input, two buttons and the result block.
// All state is mutated in Update; lookups run as commands and report back
// through messages, so overlapping searches apply in arrival order.
type App struct {
	ctx      context.Context
	cfg      config.Config
	services Services
	log      *slog.Logger
	keys     *KeyRegistry
	save     func(config.Config) error

	input  textinput.Model
	record *viacep.Address
	focus  focusTarget
	modal  modalState
	alert  string

	recent        []string
	suggestions   []string
	suggestCursor int
	pendingClear  int

	status    string
	statusErr bool
	width     int
	height    int
}

type focusTarget int

const (
	focusInput focusTarget = iota
	focusSearch
	focusClear
	focusCount
)

type modalState string

const (
	modalNone         modalState = ""
	modalAlert        modalState = "alert"
	modalConfirmClear modalState = "confirmClear"
)

func New(ctx context.Context, cfg config.Config, services Services, log *slog.Logger) *App {
	if log == nil {
		log = slog.Default()
	}
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = ""
	in.Width = inputWidth - 2
	in.Focus()
	return &App{
		ctx:           ctx,
		cfg:           cfg,
		services:      services,
		log:           log,
		keys:          NewKeyRegistry(DefaultKeyBindings()),
		save:          config.Save,
		input:         in,
		suggestCursor: -1,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, a.loadRecent())
}

// ActiveScope names the key scope for the current modal or focused element.
func (a *App) ActiveScope() string {
	switch a.modal {
	case modalAlert:
		return scopeAlert
	case modalConfirmClear:
		return scopeConfirm
	}
	switch a.focus {
	case focusSearch:
		return scopeSearchButton
	case focusClear:
		return scopeClearButton
	default:
		return scopeInput
	}
}

// Search validates the input and starts one lookup. Empty input opens the
// blocking alert, clears the input and issues no request.
func (a *App) Search() tea.Cmd {
	code := a.input.Value()
	if code == "" {
		a.alert = alertEmptyCode
		a.modal = modalAlert
		a.input.SetValue("")
		return nil
	}
	a.log.Debug("lookup requested", "cep", code)
	return a.lookupCmd(code)
}

// Reset clears the input and the result and puts focus back on the input.
func (a *App) Reset() tea.Cmd {
	a.input.SetValue("")
	a.record = nil
	a.suggestCursor = -1
	a.refreshSuggestions()
	return a.setFocus(focusInput)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
	case tea.KeyMsg:
		if a.modal != modalNone {
			return a.handleModalKey(m)
		}
		return a.handleScreenKey(m)
	case lookupDoneMsg:
		addr := m.addr
		a.record = &addr
		a.status, a.statusErr = "", false
		// keyboard dismissed: the input loses focus
		return a, tea.Batch(a.setFocus(focusSearch), a.loadRecent())
	case lookupFailedMsg:
		a.log.Error("lookup failed", "cep", m.code, "kind", viacep.KindOf(m.err).String(), "error", m.err)
		if a.cfg.UI.ReportErrors {
			a.status, a.statusErr = describeLookupError(m.err), true
		}
	case recentMsg:
		a.recent = []string(m)
		if a.suggestCursor < 0 {
			a.refreshSuggestions()
		}
	case historySizeMsg:
		// never replace an open alert
		if a.modal == modalNone {
			a.pendingClear = int(m)
			a.modal = modalConfirmClear
		}
	case historyClearedMsg:
		a.status, a.statusErr = fmt.Sprintf("histórico apagado (%d consultas)", int64(m)), false
		return a, a.loadRecent()
	case reportErrorsMsg:
		a.cfg.UI.ReportErrors = bool(m)
		if m {
			a.status, a.statusErr = "erros de consulta serão exibidos", false
		} else {
			a.status, a.statusErr = "erros de consulta apenas no log", false
		}
	case statusMsg:
		a.status, a.statusErr = string(m), false
	case errMsg:
		a.log.Error("operation failed", "error", m.error)
		a.status, a.statusErr = "erro: "+m.Error(), true
	default:
		if a.focus == focusInput {
			var cmd tea.Cmd
			a.input, cmd = a.input.Update(msg)
			return a, cmd
		}
	}
	return a, nil
}

func (a *App) handleModalKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.keys.ActionFor(m, a.ActiveScope()) {
	case actionQuit:
		return a, tea.Quit
	case actionDismiss:
		a.modal = modalNone
		a.alert = ""
	case actionConfirm:
		a.modal = modalNone
		return a, a.clearHistoryCmd()
	case actionCancel:
		a.modal = modalNone
	}
	return a, nil
}

func (a *App) handleScreenKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.keys.ActionFor(m, a.ActiveScope()) {
	case actionQuit:
		return a, tea.Quit
	case actionSearch:
		return a, a.Search()
	case actionReset:
		return a, a.Reset()
	case actionFocusNext:
		return a, a.setFocus((a.focus + 1) % focusCount)
	case actionFocusPrev:
		return a, a.setFocus((a.focus + focusCount - 1) % focusCount)
	case actionSuggestNext:
		a.cycleSuggestion(1)
		return a, nil
	case actionSuggestPrev:
		a.cycleSuggestion(-1)
		return a, nil
	case actionClearHistory:
		return a, a.historySizeCmd()
	case actionToggleErrors:
		return a, a.toggleReportErrorsCmd()
	}

	if !numericKey(m) {
		return a, nil
	}
	var focusCmd tea.Cmd
	if a.focus != focusInput {
		if m.Type != tea.KeyRunes {
			return a, nil
		}
		// typing on a button goes back to the field
		focusCmd = a.setFocus(focusInput)
	}
	before := a.input.Value()
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(m)
	if a.input.Value() != before {
		a.suggestCursor = -1
		a.refreshSuggestions()
	}
	return a, tea.Batch(focusCmd, cmd)
}

// numericKey mirrors a numeric keypad: typed runes other than digits,
// '-' and '.' are dropped. Pastes and editing keys pass through.
func numericKey(m tea.KeyMsg) bool {
	switch m.Type {
	case tea.KeySpace:
		return false
	case tea.KeyRunes:
		if m.Paste {
			return true
		}
		for _, r := range m.Runes {
			if (r < '0' || r > '9') && r != '-' && r != '.' {
				return false
			}
		}
	}
	return true
}

func (a *App) setFocus(f focusTarget) tea.Cmd {
	a.focus = f
	if f == focusInput {
		return a.input.Focus()
	}
	a.input.Blur()
	return nil
}

func (a *App) refreshSuggestions() {
	a.suggestions = service.RankSuggestions(a.input.Value(), a.recent, a.suggestionLimit())
}

func (a *App) cycleSuggestion(dir int) {
	if len(a.suggestions) == 0 {
		return
	}
	n := len(a.suggestions)
	if a.suggestCursor < 0 {
		if dir > 0 {
			a.suggestCursor = 0
		} else {
			a.suggestCursor = n - 1
		}
	} else {
		a.suggestCursor = (a.suggestCursor + dir + n) % n
	}
	a.input.SetValue(a.suggestions[a.suggestCursor])
	a.input.CursorEnd()
}

func (a *App) suggestionLimit() int {
	if a.cfg.History.Limit > 0 {
		return a.cfg.History.Limit
	}
	return 5
}

func describeLookupError(err error) string {
	switch viacep.KindOf(err) {
	case viacep.KindNotFound:
		return "CEP não encontrado"
	case viacep.KindStatus:
		return "CEP inválido"
	case viacep.KindDecode:
		return "resposta inesperada do serviço"
	default:
		return "falha de rede: " + err.Error()
	}
}

// commands
func (a *App) lookupCmd(code string) tea.Cmd {
	ctx, svc := a.ctx, a.services.Lookup
	return func() tea.Msg {
		addr, err := svc.Lookup(ctx, code)
		if err != nil {
			return lookupFailedMsg{code: code, err: err}
		}
		return lookupDoneMsg{code: code, addr: addr}
	}
}

func (a *App) loadRecent() tea.Cmd {
	ctx, svc := a.ctx, a.services.Lookup
	return func() tea.Msg {
		if svc == nil {
			return recentMsg(nil)
		}
		recent, err := svc.Recent(ctx)
		if err != nil {
			return errMsg{err}
		}
		return recentMsg(recent)
	}
}

func (a *App) historySizeCmd() tea.Cmd {
	if a.services.Maintenance == nil {
		return func() tea.Msg { return statusMsg("histórico desativado") }
	}
	ctx, svc := a.ctx, a.services.Lookup
	return func() tea.Msg {
		n, err := svc.HistorySize(ctx)
		if err != nil {
			return errMsg{err}
		}
		return historySizeMsg(n)
	}
}

func (a *App) clearHistoryCmd() tea.Cmd {
	ctx, svc := a.ctx, a.services.Maintenance
	return func() tea.Msg {
		removed, err := svc.ClearHistory(ctx)
		if err != nil {
			return errMsg{err}
		}
		return historyClearedMsg(removed)
	}
}

// toggleReportErrorsCmd persists the flipped setting; the screen only
// switches once the save succeeded.
func (a *App) toggleReportErrorsCmd() tea.Cmd {
	cfg, save := a.cfg, a.save
	cfg.UI.ReportErrors = !cfg.UI.ReportErrors
	return func() tea.Msg {
		if err := save(cfg); err != nil {
			return errMsg{err}
		}
		return reportErrorsMsg(cfg.UI.ReportErrors)
	}
}

// messages
type lookupDoneMsg struct {
	code string
	addr viacep.Address
}

type lookupFailedMsg struct {
	code string
	err  error
}

type recentMsg []string

type historySizeMsg int

type historyClearedMsg int64

type reportErrorsMsg bool

type statusMsg string

type errMsg struct{ error }
