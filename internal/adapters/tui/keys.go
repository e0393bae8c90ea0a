package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap binds keys to session events.
type KeyMap struct {
	BeginEdit key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
	Submit    key.Binding
	Cancel    key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		BeginEdit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "start typing"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "submit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "stop typing"),
		),
	}
}
