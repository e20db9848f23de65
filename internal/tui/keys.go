package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Connect key.Binding
	Up      key.Binding
	Down    key.Binding
	Faster  key.Binding
	Slower  key.Binding
	Stop    key.Binding
	StopAll key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Connect, k.Faster, k.Slower, k.Stop, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Connect, k.Up, k.Down},
		{k.Faster, k.Slower, k.Stop, k.StopAll},
		{k.Help, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Connect: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "connect"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Faster: key.NewBinding(
			key.WithKeys("right", "l", "+"),
			key.WithHelp("→", "speed +"),
		),
		Slower: key.NewBinding(
			key.WithKeys("left", "h", "-"),
			key.WithHelp("←", "speed -"),
		),
		Stop: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "stop"),
		),
		StopAll: key.NewBinding(
			key.WithKeys("esc", "s"),
			key.WithHelp("esc/s", "stop all"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
