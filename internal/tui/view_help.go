package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderHelp() string {
	var b strings.Builder

	// Title
	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Ayuda")
	b.WriteString(a.center(title))
	b.WriteString("\n\n")

	// Keyboard shortcuts
	shortcuts := []string{
		"  ctrl+g         Generar prompts",
		"  ctrl+x         Exportar el último resultado",
		"  ctrl+r         Ver historial",
		"  ctrl+o         Ajustes de proveedor y modelo",
		"  f1             Esta ayuda",
		"  esc            Volver / Salir",
		"  ctrl+c         Salir",
	}
	shortcutsBox := styleBox.Copy().
		Width(54).
		Render(strings.Join(shortcuts, "\n"))
	b.WriteString(a.center(shortcutsBox))
	b.WriteString("\n\n")

	formTitle := styleSubtitle.Render("Formulario")
	b.WriteString(a.center(formTitle))
	b.WriteString("\n\n")

	form := []string{
		"  tab/shift+tab  Cambiar de campo",
		"  ↑/↓            Cambiar de campo (selectores)",
		"  ←/→            Cambiar opción",
		"",
		"  Elige tipo de medio y categoría, describe tu",
		"  idea y genera un prompt positivo y uno negativo.",
	}
	formBox := styleBox.Copy().
		Width(54).
		Render(strings.Join(form, "\n"))
	b.WriteString(a.center(formBox))
	b.WriteString("\n\n")

	// Instructions
	instructions := styleStatusBar.Render("[Esc] Volver")
	b.WriteString(a.center(instructions))

	return a.centerVertically(b.String())
}
