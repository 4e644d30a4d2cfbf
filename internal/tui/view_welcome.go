package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/promptsia/internal/config"
)

const logo = `
 ┏━┓┏━┓┏━┓┏┳┓┏━┓╺┳╸┏━┓   ╻┏━┓
 ┣━┛┣┳┛┃ ┃┃┃┃┣━┛ ┃ ┗━┓   ┃┣━┫
 ╹  ╹┗╸┗━┛╹ ╹╹   ╹ ┗━┛   ╹╹ ╹
`

// renderHeader is the logo plus the active provider line.
func (a *App) renderHeader() string {
	logoRendered := styleLogo.Render(logo)

	subtitle := styleSubtitle.Render("Generador Inteligente de Prompts • Imágenes & Videos")

	providerName := a.state.config.Provider
	if p := config.GetProvider(providerName); p != nil {
		providerName = p.Name
	}
	model := styleSubtitle.Render(fmt.Sprintf("%s · %s", providerName, a.state.config.Model))

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		logoRendered,
		subtitle,
		model,
	)
	return a.center(content)
}
