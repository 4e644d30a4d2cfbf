package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderResult() string {
	var b strings.Builder
	width := a.boxWidth()

	entry := a.state.last
	if entry == nil {
		return a.renderForm()
	}

	// Show what was asked
	asked := styleSubtitle.Render("> " + truncate(entry.Description, width))
	b.WriteString(a.center(asked))
	b.WriteString("\n")
	meta := styleSubtitle.Render(entry.Category + " · " + entry.Style)
	b.WriteString(a.center(meta))
	b.WriteString("\n\n")

	positive := styleBox.Copy().
		Width(width).
		BorderForeground(colorSuccess).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Foreground(colorSuccess).Bold(true).Render("✅ PROMPT POSITIVO"),
			entry.Positive,
		))
	b.WriteString(a.center(positive))
	b.WriteString("\n")

	negative := styleBox.Copy().
		Width(width).
		BorderForeground(colorError).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Foreground(colorError).Bold(true).Render("🚫 PROMPT NEGATIVO"),
			entry.Negative,
		))
	b.WriteString(a.center(negative))
	b.WriteString("\n\n")

	if line := a.renderProcessing(); line != "" {
		b.WriteString(a.center(line))
		b.WriteString("\n\n")
	}
	if line := a.renderNotice(); line != "" {
		b.WriteString(a.center(line))
		b.WriteString("\n\n")
	}

	status := styleStatusBar.Render(strings.Join([]string{
		hint(keys.Export),
		"[ctrl+g] regenerar",
		hint(keys.History),
		"[Enter/Esc] Volver",
	}, "  "))
	b.WriteString(a.center(status))

	return a.centerVertically(b.String())
}

// truncate shortens text to maxLen runes, adding "..." if truncated
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
