package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/promptsia/internal/config"
)

// renderMissingKey is the blocking screen shown when api_key.txt is unusable.
func (a *App) renderMissingKey() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorError).
		Bold(true).
		Render("❌ Error")
	b.WriteString(a.center(title))
	b.WriteString("\n\n")

	errBox := styleBox.Copy().
		Width(min(64, max(20, a.width-4))).
		BorderForeground(colorError).
		Render(config.MissingKeyHelp(a.state.config.Dir))
	b.WriteString(a.center(errBox))
	b.WriteString("\n\n")

	if a.state.keyErr != nil {
		detail := styleSubtitle.Render(a.state.keyErr.Error())
		b.WriteString(a.center(detail))
		b.WriteString("\n\n")
	}

	status := styleStatusBar.Render("[Enter/Esc] Cerrar")
	b.WriteString(a.center(status))

	return a.centerVertically(b.String())
}

// renderNotice renders the current warning, error or info line.
func (a *App) renderNotice() string {
	n := a.state.notice
	if n.kind == noticeNone || n.text == "" {
		return ""
	}

	color := colorSuccess
	switch n.kind {
	case noticeWarning:
		color = colorWarning
	case noticeError:
		color = colorError
	}

	return styleBox.Copy().
		Width(a.boxWidth()).
		BorderForeground(color).
		Foreground(color).
		Render(n.text)
}
