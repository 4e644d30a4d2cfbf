package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/promptsia/internal/tui/styles"
)

var palette = styles.Default()

var (
	// Colors
	colorPrimary   = palette.Primary
	colorSecondary = palette.Secondary
	colorSuccess   = palette.Success
	colorWarning   = palette.Warning
	colorError     = palette.Error
	colorMuted     = palette.Muted
	colorText      = palette.Text

	// Logo style
	styleLogo = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleTitle     = palette.Title()
	styleSubtitle  = palette.Subtitle()
	styleBox       = palette.Box()
	styleStatusBar = palette.StatusBar()

	// Field label
	styleLabel = lipgloss.NewStyle().
			Foreground(colorText)

	// Focused field label
	styleFocused = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)
)

func (a *App) centerVertically(content string) string {
	lines := strings.Count(content, "\n") + 1
	padding := (a.height - lines) / 2
	if padding < 0 {
		padding = 0
	}
	return strings.Repeat("\n", padding) + content
}

func (a *App) center(s string) string {
	return lipgloss.PlaceHorizontal(a.width, lipgloss.Center, s)
}

func (a *App) boxWidth() int {
	return max(20, min(76, a.width-4))
}
