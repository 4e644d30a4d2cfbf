package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/promptsia/internal/config"
)

func (a *App) handleSettingsKey(msg tea.KeyMsg) tea.Cmd {
	s := a.state
	switch s.settingsMode {
	case "":
		switch msg.String() {
		case "p":
			s.settingsMode = "provider"
			s.settingsSelected = 0
			for i, p := range config.Providers {
				if p.ID == s.config.Provider {
					s.settingsSelected = i
				}
			}
		case "m":
			if config.GetProvider(s.config.Provider) == nil {
				return nil
			}
			s.settingsMode = "model"
			s.settingsSelected = 0
		}
		return nil

	case "provider":
		n := len(config.Providers)
		switch {
		case key.Matches(msg, keys.Up):
			s.settingsSelected = wrap(s.settingsSelected-1, n)
		case key.Matches(msg, keys.Down):
			s.settingsSelected = wrap(s.settingsSelected+1, n)
		case key.Matches(msg, keys.Enter):
			p := config.Providers[s.settingsSelected]
			s.config.Provider = p.ID
			s.config.Model = p.DefaultModel
			s.config.BaseURL = ""
			s.settingsMode = ""
			return a.saveSettings()
		}

	case "model":
		provider := config.GetProvider(s.config.Provider)
		if provider == nil {
			s.settingsMode = ""
			return nil
		}
		n := len(provider.Models)
		switch {
		case key.Matches(msg, keys.Up):
			s.settingsSelected = wrap(s.settingsSelected-1, n)
		case key.Matches(msg, keys.Down):
			s.settingsSelected = wrap(s.settingsSelected+1, n)
		case key.Matches(msg, keys.Enter):
			s.config.Model = provider.Models[s.settingsSelected]
			s.settingsMode = ""
			return a.saveSettings()
		}
	}
	return nil
}

func (a *App) saveSettings() tea.Cmd {
	cfg := *a.state.config
	logger := a.state.logger
	return func() tea.Msg {
		err := cfg.Save()
		if err == nil {
			logger.Info("settings saved", "provider", cfg.Provider, "model", cfg.Model)
		}
		return settingsSavedMsg{err}
	}
}

func (a *App) renderSettings() string {
	switch a.state.settingsMode {
	case "provider":
		return a.renderSettingsProvider()
	case "model":
		return a.renderSettingsModel()
	default:
		return a.renderSettingsMain()
	}
}

func (a *App) renderSettingsMain() string {
	var b strings.Builder

	// Title
	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Ajustes")
	b.WriteString(a.center(title))
	b.WriteString("\n\n")

	// Current config
	provider := config.GetProvider(a.state.config.Provider)
	providerName := a.state.config.Provider
	if provider != nil {
		providerName = provider.Name
	}

	// Mask API key
	maskedKey := "No configurada"
	if k := a.state.apiKey; k != "" {
		if len(k) > 8 {
			maskedKey = k[:4] + "****" + k[len(k)-4:]
		} else {
			maskedKey = "****"
		}
	}

	configLines := []string{
		fmt.Sprintf("  Proveedor: %s", providerName),
		fmt.Sprintf("  Modelo:    %s", a.state.config.Model),
		fmt.Sprintf("  API key:   %s", maskedKey),
		fmt.Sprintf("  Carpeta:   %s", truncate(a.state.config.Dir, 40)),
	}
	if a.state.config.BaseURL != "" {
		configLines = append(configLines, fmt.Sprintf("  Base URL:  %s", a.state.config.BaseURL))
	}

	configBox := styleBox.Copy().
		Width(56).
		Render(strings.Join(configLines, "\n"))
	b.WriteString(a.center(configBox))
	b.WriteString("\n\n")

	// Actions
	actions := []string{
		"  [p] Cambiar proveedor",
		"  [m] Cambiar modelo",
	}
	actionsBox := styleBox.Copy().
		Width(56).
		Render(strings.Join(actions, "\n"))
	b.WriteString(a.center(actionsBox))
	b.WriteString("\n\n")

	if line := a.renderNotice(); line != "" {
		b.WriteString(a.center(line))
		b.WriteString("\n\n")
	}

	// Instructions
	instructions := styleStatusBar.Render("[Esc] Volver")
	b.WriteString(a.center(instructions))

	return a.centerVertically(b.String())
}

func (a *App) renderSettingsProvider() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Elegir proveedor")
	b.WriteString(a.center(title))
	b.WriteString("\n\n")

	var lines []string
	for i, p := range config.Providers {
		cursor := "  "
		if i == a.state.settingsSelected {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-12s %s", cursor, p.Name, p.Description)
		if i == a.state.settingsSelected {
			line = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).Render(line)
		}
		lines = append(lines, line)
	}

	listBox := styleBox.Copy().
		Width(56).
		Render(strings.Join(lines, "\n"))
	b.WriteString(a.center(listBox))
	b.WriteString("\n\n")

	instructions := styleStatusBar.Render("[↑/↓] Navegar  [Enter] Elegir  [Esc] Cancelar")
	b.WriteString(a.center(instructions))

	return a.centerVertically(b.String())
}

func (a *App) renderSettingsModel() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Elegir modelo")
	b.WriteString(a.center(title))
	b.WriteString("\n\n")

	provider := config.GetProvider(a.state.config.Provider)
	if provider == nil {
		desc := styleSubtitle.Render("Ningún proveedor seleccionado")
		b.WriteString(a.center(desc))
		return a.centerVertically(b.String())
	}

	providerDesc := styleSubtitle.Render(fmt.Sprintf("Proveedor: %s", provider.Name))
	b.WriteString(a.center(providerDesc))
	b.WriteString("\n\n")

	var lines []string
	for i, model := range provider.Models {
		cursor := "  "
		if i == a.state.settingsSelected {
			cursor = "> "
		}
		// Mark current model
		current := ""
		if model == a.state.config.Model {
			current = " (actual)"
		}
		line := fmt.Sprintf("%s%s%s", cursor, model, current)
		if i == a.state.settingsSelected {
			line = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).Render(line)
		}
		lines = append(lines, line)
	}

	listBox := styleBox.Copy().
		Width(56).
		Render(strings.Join(lines, "\n"))
	b.WriteString(a.center(listBox))
	b.WriteString("\n\n")

	instructions := styleStatusBar.Render("[↑/↓] Navegar  [Enter] Elegir  [Esc] Cancelar")
	b.WriteString(a.center(instructions))

	return a.centerVertically(b.String())
}
