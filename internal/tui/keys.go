package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit     key.Binding
	Back     key.Binding
	Help     key.Binding
	Generate key.Binding
	Export   key.Binding
	History  key.Binding
	Settings key.Binding
	Enter    key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Next     key.Binding
	Prev     key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "salir"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "volver / salir"),
	),
	Help: key.NewBinding(
		key.WithKeys("f1"),
		key.WithHelp("f1", "ayuda"),
	),
	Generate: key.NewBinding(
		key.WithKeys("ctrl+g"),
		key.WithHelp("ctrl+g", "generar"),
	),
	Export: key.NewBinding(
		key.WithKeys("ctrl+x"),
		key.WithHelp("ctrl+x", "exportar"),
	),
	History: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "historial"),
	),
	Settings: key.NewBinding(
		key.WithKeys("ctrl+o"),
		key.WithHelp("ctrl+o", "ajustes"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "seleccionar"),
	),
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "arriba"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "abajo"),
	),
	Left: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "anterior"),
	),
	Right: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "siguiente"),
	),
	Next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "siguiente campo"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "campo anterior"),
	),
}

// hint renders a binding as "[key] desc" for status bars.
func hint(b key.Binding) string {
	h := b.Help()
	return "[" + h.Key + "] " + h.Desc
}
