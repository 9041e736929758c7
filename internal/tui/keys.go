package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	P1Up    key.Binding
	P1Down  key.Binding
	P2Up    key.Binding
	P2Down  key.Binding
	Reset   key.Binding
	Toggle1 key.Binding
	Toggle2 key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		P1Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "p1 up"),
		),
		P1Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "p1 down"),
		),
		P2Up: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "p2 up"),
		),
		P2Down: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "p2 down"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Toggle1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "p1 mode"),
		),
		Toggle2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "p2 mode"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.P1Up, k.P1Down, k.Reset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.P1Up, k.P1Down, k.P2Up, k.P2Down},
		{k.Toggle1, k.Toggle2, k.Reset},
		{k.Help, k.Quit},
	}
}
