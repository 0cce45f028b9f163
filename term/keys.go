package term

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Avatar key.Binding
	More   key.Binding
	Fewer  key.Binding
	Card   key.Binding
	Motion key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Avatar: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "avatar")),
		More:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "more lines")),
		Fewer:  key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "fewer lines")),
		Card:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "card")),
		Motion: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "reduce motion")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Avatar, k.More, k.Fewer, k.Card, k.Motion, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
