package styles

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colors a view renders with.
type Palette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Muted     lipgloss.Color
	Text      lipgloss.Color
	Surface   lipgloss.Color
	Border    lipgloss.Color
}

// Default is the dark green-accented palette.
func Default() Palette {
	return Palette{
		Primary:   lipgloss.Color("#5B8C5A"),
		Secondary: lipgloss.Color("#6B7C9A"),
		Success:   lipgloss.Color("#10B981"),
		Warning:   lipgloss.Color("#E0A34A"),
		Error:     lipgloss.Color("#C75450"),
		Muted:     lipgloss.Color("#A0A0A0"),
		Text:      lipgloss.Color("#E8E8E8"),
		Surface:   lipgloss.Color("#242831"),
		Border:    lipgloss.Color("#3A3F4B"),
	}
}

// Title renders headings.
func (p Palette) Title() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
}

// Subtitle renders secondary text.
func (p Palette) Subtitle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.Muted)
}

// Box is a rounded panel.
func (p Palette) Box() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)
}

// StatusBar renders key hints.
func (p Palette) StatusBar() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.Muted)
}
