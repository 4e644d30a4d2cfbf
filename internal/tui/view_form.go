package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/promptsia/internal/prompt"
)

type controlKind int

const (
	controlMedia controlKind = iota
	controlCategory
	controlExtra
	controlCustomDuration
	controlDescription
	controlStyle
)

type control struct {
	kind  controlKind
	field prompt.Field
}

// controls lists the focusable form controls in display order. The extra
// fields depend on the selected media type and category.
func (s *state) controls() []control {
	cs := []control{{kind: controlMedia}, {kind: controlCategory}}
	for _, f := range prompt.Fields(s.media, s.currentCategory()) {
		cs = append(cs, control{kind: controlExtra, field: f})
		if f.Key == prompt.FieldDuration && f.Options[s.selected[f.Key]] == prompt.DurationCustom {
			cs = append(cs, control{kind: controlCustomDuration})
		}
	}
	return append(cs, control{kind: controlDescription}, control{kind: controlStyle})
}

func (a *App) currentControl() control {
	cs := a.state.controls()
	if a.state.focus >= len(cs) {
		a.state.focus = len(cs) - 1
	}
	return cs[a.state.focus]
}

func (a *App) focusControl(kind controlKind) {
	for i, c := range a.state.controls() {
		if c.kind == kind {
			a.state.focus = i
			return
		}
	}
}

func (a *App) moveFocus(delta int) tea.Cmd {
	n := len(a.state.controls())
	a.state.focus = (a.state.focus + delta + n) % n
	return a.syncFocus()
}

// syncFocus focuses the text input under the cursor, if any.
func (a *App) syncFocus() tea.Cmd {
	a.state.description.Blur()
	a.state.customDuration.Blur()

	switch a.currentControl().kind {
	case controlDescription:
		return a.state.description.Focus()
	case controlCustomDuration:
		return a.state.customDuration.Focus()
	}
	return nil
}

func (a *App) handleFormKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Next):
		return true, a.moveFocus(1)
	case key.Matches(msg, keys.Prev):
		return true, a.moveFocus(-1)
	}

	c := a.currentControl()
	if c.kind == controlDescription || c.kind == controlCustomDuration {
		return false, nil
	}

	switch {
	case key.Matches(msg, keys.Up):
		return true, a.moveFocus(-1)
	case key.Matches(msg, keys.Down, keys.Enter):
		return true, a.moveFocus(1)
	case key.Matches(msg, keys.Left):
		a.cycle(c, -1)
	case key.Matches(msg, keys.Right):
		a.cycle(c, 1)
	}
	return true, nil
}

// cycle steps the selector under the cursor.
func (a *App) cycle(c control, delta int) {
	s := a.state
	switch c.kind {
	case controlMedia:
		if s.media == prompt.MediaImage {
			s.media = prompt.MediaVideo
		} else {
			s.media = prompt.MediaImage
		}
		s.resetCategory()
		a.focusControl(controlMedia)

	case controlCategory:
		s.category = wrap(s.category+delta, len(prompt.Categories(s.media)))
		s.resetExtras()

	case controlStyle:
		s.style = wrap(s.style+delta, len(prompt.Styles()))

	case controlExtra:
		s.selected[c.field.Key] = wrap(s.selected[c.field.Key]+delta, len(c.field.Options))
	}
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

func (a *App) renderForm() string {
	var b strings.Builder
	s := a.state
	width := a.boxWidth()

	b.WriteString(a.renderHeader())
	b.WriteString("\n\n")

	var lines []string
	for i, c := range s.controls() {
		focused := i == s.focus
		switch c.kind {
		case controlMedia:
			lines = append(lines, selector("🎯 Tipo de Medio", mediaLabel(s.media), focused))
		case controlCategory:
			lines = append(lines, selector("📂 Categoría", prompt.Categories(s.media)[s.category].Label, focused))
		case controlExtra:
			lines = append(lines, selector(c.field.Label, c.field.Options[s.selected[c.field.Key]], focused))
		case controlCustomDuration:
			lines = append(lines, fieldLabel("   Duración personalizada", focused)+" "+s.customDuration.View())
		case controlDescription:
			lines = append(lines, "", fieldLabel("✏️  Describe tu idea", focused), s.description.View(), "")
		case controlStyle:
			lines = append(lines, selector("🎨 Estilo", prompt.Styles()[s.style].Label, focused))
		}
	}

	formBox := styleBox.Copy().
		Width(width).
		Render(strings.Join(lines, "\n"))
	b.WriteString(a.center(formBox))
	b.WriteString("\n\n")

	if line := a.renderProcessing(); line != "" {
		b.WriteString(a.center(line))
		b.WriteString("\n\n")
	}
	if line := a.renderNotice(); line != "" {
		b.WriteString(a.center(line))
		b.WriteString("\n\n")
	}

	trigger := hint(keys.Generate)
	if s.generating {
		trigger = "🤖 Generando..."
	}
	status := styleStatusBar.Render(strings.Join([]string{
		trigger,
		hint(keys.Next),
		"[←/→] cambiar",
		hint(keys.History),
		hint(keys.Settings),
		hint(keys.Help),
		hint(keys.Back),
	}, "  "))
	b.WriteString(a.center(status))

	return a.centerVertically(b.String())
}

func selector(label, value string, focused bool) string {
	v := lipgloss.NewStyle().Foreground(colorMuted).Render(value)
	if focused {
		v = styleFocused.Render("◀ " + value + " ▶")
	}
	return fmt.Sprintf("%s  %s", fieldLabel(label, focused), v)
}

func fieldLabel(label string, focused bool) string {
	if focused {
		return styleFocused.Render("> " + label + ":")
	}
	return styleLabel.Render("  " + label + ":")
}

func mediaLabel(m prompt.MediaType) string {
	if m == prompt.MediaVideo {
		return "🎬 Video"
	}
	return "🖼️ Imagen"
}

// descriptionHeight keeps the textarea usable on short terminals.
func descriptionHeight(height int) int {
	if height < 30 {
		return 2
	}
	return 4
}
