package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Increase  key.Binding
	Decrease  key.Binding
	NextScene key.Binding
	PrevScene key.Binding
	Next      key.Binding
	Prev      key.Binding
	Reset     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous input")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next input")),
		Increase:  key.NewBinding(key.WithKeys("right", "l", "+"), key.WithHelp("→/l", "increase")),
		Decrease:  key.NewBinding(key.WithKeys("left", "h", "-"), key.WithHelp("←/h", "decrease")),
		NextScene: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
		PrevScene: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous view")),
		Next:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next scenario")),
		Prev:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "previous scenario")),
		Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset inputs")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Increase, k.Decrease, k.NextScene, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Increase, k.Decrease},
		{k.NextScene, k.PrevScene, k.Next, k.Prev},
		{k.Reset, k.Help, k.Quit},
	}
}
