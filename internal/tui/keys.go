package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the navigation-mode key bindings. Keys in edit mode
// are owned by the active widget.
type keyMap struct {
	NextSection key.Binding
	PrevSection key.Binding
	NextField   key.Binding
	PrevField   key.Binding
	Activate    key.Binding
	Editor      key.Binding
	Action      key.Binding
	Quit        key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextSection, k.NextField, k.Activate, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextSection, k.PrevSection, k.NextField, k.PrevField},
		{k.Activate, k.Editor, k.Action, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextSection: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next section"),
		),
		PrevSection: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab/←", "prev section"),
		),
		NextField: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev field"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "edit"),
		),
		Editor: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "$EDITOR"),
		),
		Action: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "run action"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
