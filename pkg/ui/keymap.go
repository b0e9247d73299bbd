package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap defines the global bindings. To work for help it must satisfy
// key.Map.
type keyMap struct {
	Home       key.Binding
	Directory  key.Binding
	SavedDeals key.Binding
	Filter     key.Binding
	Save       key.Binding
	Open       key.Binding
	NextTab    key.Binding
	PrevTab    key.Binding
	Back       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view. It's part
// of the key.Map interface.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Directory, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view. It's part of the
// key.Map interface.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Home, k.Directory, k.SavedDeals},
		{k.Filter, k.Save, k.Open},
		{k.NextTab, k.PrevTab, k.Back},
		{k.Help, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Home: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "home"),
		),
		Directory: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "directory"),
		),
		SavedDeals: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "saved deals"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Save: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "save deal"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "]"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "["),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
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
