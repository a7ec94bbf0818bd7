package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"tuisearch/searchbar"
)

// keyMap holds the application bindings; the search bar has its own
type keyMap struct {
	Quit         key.Binding
	ForceQuit    key.Binding
	Help         key.Binding
	ClearRecents key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		ClearRecents: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "forget recents"),
		),
	}
}

// setEditing disables the single-letter bindings while the field takes text
func (k *keyMap) setEditing(editing bool) {
	k.Quit.SetEnabled(!editing)
	k.Help.SetEnabled(!editing)
	k.ClearRecents.SetEnabled(!editing)
}

// footerKeys merges both key maps for the help footer
type footerKeys struct {
	app    keyMap
	search searchbar.KeyMap
}

func (f footerKeys) ShortHelp() []key.Binding {
	return append(f.search.ShortHelp(), f.app.ClearRecents, f.app.Help, f.app.Quit)
}

func (f footerKeys) FullHelp() [][]key.Binding {
	return append(f.search.FullHelp(), []key.Binding{f.app.ClearRecents, f.app.Help, f.app.Quit})
}
