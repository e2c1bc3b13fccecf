package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Mute key.Binding
	Help key.Binding
	Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Mute, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Mute}, {k.Help, k.Quit}}
}

func defaultKeys() keyMap {
	return keyMap{
		Mute: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mute")),
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q/esc", "quit")),
	}
}
