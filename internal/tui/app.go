package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/sant0-9/promptsia/internal/config"
	"github.com/sant0-9/promptsia/internal/export"
	"github.com/sant0-9/promptsia/internal/history"
	"github.com/sant0-9/promptsia/internal/logging"
	"github.com/sant0-9/promptsia/internal/prompt"
)

type view int

const (
	viewMissingKey view = iota
	viewForm
	viewResult
	viewHistory
	viewSettings
	viewHelp
)

// Generator is the backend the front end hands requests to.
type Generator interface {
	Generate(ctx context.Context, req prompt.Request) (*history.Entry, error)
	Ping(ctx context.Context) error
}

// Options wires the app to its data directory and backend.
type Options struct {
	Config *config.Config
	APIKey string
	// KeyErr is the error from loading the API key. When set the app only
	// shows the missing-key screen.
	KeyErr error
	Store  *history.Store
	Logger *log.Logger
	// Connect builds a generator for the given config. It is called again
	// whenever settings change.
	Connect func(cfg *config.Config) (Generator, error)
}

type App struct {
	width    int
	height   int
	view     view
	state    *state
	history  *historyView
	connect  func(cfg *config.Config) (Generator, error)
	now      func() time.Time
	quitting bool
}

func NewApp(opts Options) *App {
	s := newState()
	s.config = opts.Config
	if s.config == nil {
		s.config = config.DefaultConfig()
	}
	s.apiKey = opts.APIKey
	s.keyErr = opts.KeyErr
	s.store = opts.Store
	if s.store == nil {
		s.store = history.NewStore(s.config.HistoryPath())
	}
	s.logger = opts.Logger
	if s.logger == nil {
		s.logger = logging.Discard()
	}

	a := &App{
		view:    viewForm,
		state:   s,
		history: newHistoryView(palette, s.store),
		connect: opts.Connect,
		now:     time.Now,
	}

	if s.keyErr != nil {
		a.view = viewMissingKey
		return a
	}

	a.reconnect()
	a.syncFocus()
	return a
}

func (a *App) Init() tea.Cmd {
	if a.view == viewMissingKey {
		return tea.WindowSize()
	}

	// Test provider connection
	return tea.Batch(
		tea.WindowSize(),
		textarea.Blink,
		a.testProvider(),
	)
}

func (a *App) reconnect() {
	a.state.generator = nil
	a.state.providerError = nil
	if a.connect == nil {
		a.state.providerError = errors.New("no hay proveedor configurado")
		return
	}

	gen, err := a.connect(a.state.config)
	if err != nil {
		a.state.providerError = err
		a.state.logger.Error("provider setup failed", "provider", a.state.config.Provider, "err", err)
		a.state.setNotice(noticeError, "❌ Error al inicializar el proveedor: "+err.Error())
		return
	}
	a.state.generator = gen
}

func (a *App) testProvider() tea.Cmd {
	gen := a.state.generator
	if gen == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := gen.Ping(ctx); err != nil {
			return providerErrorMsg{err}
		}
		return providerReadyMsg{}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := a.handleKey(msg)
		if handled {
			return a, cmd
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.state.description.SetWidth(min(70, max(20, msg.Width-8)))
		a.state.description.SetHeight(descriptionHeight(msg.Height))

	case providerReadyMsg:
		a.state.logger.Debug("provider reachable", "provider", a.state.config.Provider)
		return a, nil

	case providerErrorMsg:
		a.state.logger.Warn("provider ping failed", "provider", a.state.config.Provider, "err", msg.error)
		a.state.setNotice(noticeWarning, "⚠️ No se pudo contactar al proveedor: "+msg.Error())
		return a, nil

	case generateDoneMsg:
		a.state.generating = false
		a.state.last = msg.entry
		a.view = viewResult
		a.state.setNotice(noticeInfo, "✅ Prompts generados")
		return a, nil

	case generateErrorMsg:
		a.state.generating = false
		if errors.Is(msg.error, prompt.ErrEmptyDescription) {
			a.state.setNotice(noticeWarning, "⚠️ Por favor, describe tu idea primero")
		} else {
			a.state.setNotice(noticeError, "❌ Error al generar: "+msg.Error())
		}
		return a, nil

	case exportDoneMsg:
		a.state.setNotice(noticeInfo, "💾 Prompts exportados a: "+msg.path)
		return a, nil

	case exportErrorMsg:
		a.state.logger.Error("export failed", "err", msg.error)
		a.state.setNotice(noticeError, "❌ Error al exportar: "+msg.Error())
		return a, nil

	case settingsSavedMsg:
		if msg.err != nil {
			a.state.setNotice(noticeError, "❌ No se pudo guardar la configuración: "+msg.err.Error())
			return a, nil
		}
		a.reconnect()
		if a.state.providerError == nil {
			a.state.setNotice(noticeInfo, "Configuración guardada")
		}
		return a, a.testProvider()

	case spinner.TickMsg:
		if !a.state.generating {
			return a, nil
		}
		var cmd tea.Cmd
		a.state.spinner, cmd = a.state.spinner.Update(msg)
		return a, cmd
	}

	// Update text inputs based on focus
	if a.view == viewForm {
		switch a.currentControl().kind {
		case controlDescription:
			var cmd tea.Cmd
			a.state.description, cmd = a.state.description.Update(msg)
			cmds = append(cmds, cmd)
		case controlCustomDuration:
			var cmd tea.Cmd
			a.state.customDuration, cmd = a.state.customDuration.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return a, tea.Batch(cmds...)
}

// handleKey processes global shortcuts and view navigation. Keys it does not
// consume fall through to the focused input.
func (a *App) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if key.Matches(msg, keys.Quit) {
		a.quitting = true
		return true, tea.Quit
	}

	if a.view == viewMissingKey {
		if key.Matches(msg, keys.Back, keys.Enter) {
			a.quitting = true
			return true, tea.Quit
		}
		return true, nil
	}

	switch {
	case key.Matches(msg, keys.Back):
		switch a.view {
		case viewForm:
			a.quitting = true
			return true, tea.Quit
		case viewSettings:
			if a.state.settingsMode != "" {
				a.state.settingsMode = ""
				return true, nil
			}
		}
		a.view = viewForm
		return true, a.syncFocus()

	case key.Matches(msg, keys.Help):
		a.view = viewHelp
		return true, nil

	case key.Matches(msg, keys.Generate):
		if a.view != viewForm && a.view != viewResult {
			return true, nil
		}
		return true, a.generate()

	case key.Matches(msg, keys.Export):
		return true, a.export()

	case key.Matches(msg, keys.History):
		a.history.Reload()
		a.view = viewHistory
		return true, nil

	case key.Matches(msg, keys.Settings):
		a.state.settingsMode = ""
		a.view = viewSettings
		return true, nil
	}

	// View-specific handling
	switch a.view {
	case viewForm:
		return a.handleFormKey(msg)
	case viewHistory:
		a.history.Update(msg)
		return true, nil
	case viewSettings:
		return true, a.handleSettingsKey(msg)
	case viewResult:
		if key.Matches(msg, keys.Enter) {
			a.view = viewForm
			return true, a.syncFocus()
		}
		return true, nil
	}

	return true, nil
}

// generate validates the form and starts the request. The trigger stays
// disabled until a generateDoneMsg or generateErrorMsg arrives.
func (a *App) generate() tea.Cmd {
	if a.state.generating {
		return nil
	}

	req := a.state.request()
	if err := req.Validate(); err != nil {
		a.state.setNotice(noticeWarning, "⚠️ Por favor, describe tu idea primero")
		return nil
	}
	if a.state.generator == nil {
		msg := "no hay proveedor disponible"
		if a.state.providerError != nil {
			msg = a.state.providerError.Error()
		}
		a.state.setNotice(noticeError, "❌ Error al generar: "+msg)
		return nil
	}

	a.state.generating = true
	a.state.setNotice(noticeNone, "")
	a.state.logger.Info("generation requested", "media", req.Media, "category", req.Category)

	return tea.Batch(a.state.spinner.Tick, generateCmd(a.state.generator, req))
}

func generateCmd(gen Generator, req prompt.Request) tea.Cmd {
	return func() tea.Msg {
		entry, err := gen.Generate(context.Background(), req)
		if err != nil {
			return generateErrorMsg{err}
		}
		return generateDoneMsg{entry}
	}
}

func (a *App) export() tea.Cmd {
	if a.state.last == nil {
		a.state.setNotice(noticeWarning, "⚠️ No hay prompts para exportar. Genera uno primero.")
		return nil
	}

	entry := *a.state.last
	dir := a.state.config.Dir
	now := a.now()
	return func() tea.Msg {
		path, err := export.Write(dir, entry, now)
		if err != nil {
			return exportErrorMsg{err}
		}
		return exportDoneMsg{path}
	}
}

type providerReadyMsg struct{}
type providerErrorMsg struct{ error }
type generateDoneMsg struct{ entry *history.Entry }
type generateErrorMsg struct{ error }
type exportDoneMsg struct{ path string }
type exportErrorMsg struct{ error }
type settingsSavedMsg struct{ err error }

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewMissingKey:
		return a.renderMissingKey()
	case viewResult:
		return a.renderResult()
	case viewHistory:
		return a.history.View(a.width, a.height)
	case viewSettings:
		return a.renderSettings()
	case viewHelp:
		return a.renderHelp()
	default:
		return a.renderForm()
	}
}
