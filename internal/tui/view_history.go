package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/promptsia/internal/history"
	"github.com/sant0-9/promptsia/internal/tui/styles"
)

const (
	emptyHistory   = "No hay prompts en el historial aún."
	snippetLength  = 100
	linesPerRecord = 4
)

// historyView lists stored prompts, newest first.
type historyView struct {
	palette styles.Palette
	store   *history.Store
	items   []history.Numbered
	offset  int
}

func newHistoryView(palette styles.Palette, store *history.Store) *historyView {
	return &historyView{
		palette: palette,
		store:   store,
	}
}

// Reload rereads the history file.
func (h *historyView) Reload() {
	h.items = h.store.Recent(0)
	h.offset = 0
}

func (h *historyView) Update(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, keys.Up):
		if h.offset > 0 {
			h.offset--
		}
	case key.Matches(msg, keys.Down):
		if h.offset < len(h.items)-1 {
			h.offset++
		}
	}
}

// record returns the header and description lines of one entry.
func record(item history.Numbered) (string, string) {
	return history.Summary(item.Entry, item.Number),
		"📝 " + history.Snippet(item.Entry.Description, snippetLength)
}

func (h *historyView) View(width, height int) string {
	var b strings.Builder
	boxWidth := max(20, min(76, width-4))
	center := func(s string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
	}

	title := h.palette.Title().Render("📜 Historial de Prompts Generados")
	b.WriteString(center(title))
	b.WriteString("\n\n")

	if len(h.items) == 0 {
		empty := h.palette.Subtitle().Render(emptyHistory)
		b.WriteString(center(empty))
		b.WriteString("\n\n")
	} else {
		visible := max(1, (height-6)/linesPerRecord)
		end := min(len(h.items), h.offset+visible)

		header := lipgloss.NewStyle().Foreground(h.palette.Text).Bold(true)
		for _, item := range h.items[h.offset:end] {
			summary, snippet := record(item)
			card := lipgloss.JoinVertical(lipgloss.Left,
				header.Render(summary),
				h.palette.Subtitle().Render(snippet),
			)
			box := h.palette.Box().
				Width(boxWidth).
				Render(card)
			b.WriteString(center(box))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	status := h.palette.StatusBar().Render("[↑/↓] Desplazar  [Esc] Volver")
	b.WriteString(center(status))

	content := b.String()
	lines := strings.Count(content, "\n") + 1
	padding := max(0, (height-lines)/2)
	return strings.Repeat("\n", padding) + content
}
