package tui

import "github.com/charmbracelet/lipgloss"

// renderProcessing is the spinner line shown while a request is in flight.
func (a *App) renderProcessing() string {
	if !a.state.generating {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(colorPrimary).
		Render(a.state.spinner.View() + " Generando prompts con " + a.state.config.Model + "...")
}
