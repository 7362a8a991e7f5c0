package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	submit key.Binding
	prev   key.Binding
	next   key.Binding
	today  key.Binding
	quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "look up")),
		prev:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "previous day")),
		next:   key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "next day")),
		today:  key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "today")),
		quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.submit, k.prev, k.next, k.today, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.submit, k.today},
		{k.prev, k.next},
		{k.quit},
	}
}
