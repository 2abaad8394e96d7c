package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the board's key bindings.
type KeyMap struct {
	Compose key.Binding
	Clear   key.Binding
	Export  key.Binding
	Switch  key.Binding
	Up      key.Binding
	Down    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the board's default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Compose: key.NewBinding(
			key.WithKeys("n", "c"),
			key.WithHelp("n", "new comment"),
		),
		Clear: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "clear all"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch view"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Compose, k.Clear, k.Export, k.Switch, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Compose, k.Clear, k.Export},
		{k.Switch, k.Up, k.Down, k.Quit},
	}
}

// ComposeKeyMap holds the bindings active while the compose form is open.
type ComposeKeyMap struct {
	Submit key.Binding
	Next   key.Binding
	Cancel key.Binding
}

// DefaultComposeKeyMap returns the compose form's default key bindings.
func DefaultComposeKeyMap() ComposeKeyMap {
	return ComposeKeyMap{
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "post"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "next field"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k ComposeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Next, k.Cancel}
}

// FullHelp implements help.KeyMap.
func (k ComposeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
