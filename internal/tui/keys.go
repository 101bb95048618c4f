package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Nav1   key.Binding
	Nav2   key.Binding
	Nav3   key.Binding
	Nav4   key.Binding
	Nav5   key.Binding
	Next   key.Binding
	Menu   key.Binding
	Theme  key.Binding
	Export key.Binding
	Help   key.Binding
	Enter  key.Binding
	Back   key.Binding
	Close  key.Binding
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Nav1: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "home"),
	),
	Nav2: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "projects"),
	),
	Nav3: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "achievements"),
	),
	Nav4: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "skills"),
	),
	Nav5: key.NewBinding(
		key.WithKeys("5"),
		key.WithHelp("5", "contact"),
	),
	Next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next section"),
	),
	Menu: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "menu"),
	),
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "light/dark"),
	),
	Export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Close: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "close"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Menu, k.Theme, k.Enter, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Nav1, k.Nav2, k.Nav3, k.Nav4, k.Nav5},
		{k.Menu, k.Theme, k.Export},
		{k.Up, k.Down, k.Enter, k.Back, k.Close},
		{k.Next, k.Help, k.Quit},
	}
}
