package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Stop key.Binding
	Quit key.Binding
}

var keys = keyMap{
	Stop: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "cancel"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "quit"),
	),
}
