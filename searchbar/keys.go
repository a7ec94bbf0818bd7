package searchbar

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings of the search bar
type KeyMap struct {
	Focus  key.Binding
	Submit key.Binding
	Cancel key.Binding
	Clear  key.Binding
	Up     key.Binding
	Down   key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Focus: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search/select"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "next"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Submit, k.Cancel}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Focus, k.Submit, k.Cancel, k.Clear},
		{k.Up, k.Down},
	}
}

// setEditing enables the bindings that apply to the current state
func (k *KeyMap) setEditing(editing bool) {
	k.Focus.SetEnabled(!editing)
	k.Submit.SetEnabled(editing)
	k.Cancel.SetEnabled(editing)
	k.Clear.SetEnabled(editing)
	k.Up.SetEnabled(editing)
	k.Down.SetEnabled(editing)
}
