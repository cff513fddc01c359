package widgets

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Key constructors shared by the widget tests.

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func typeString(w Widget, s string) {
	for _, r := range s {
		w.HandleKey(keyRunes(string(r)))
	}
}
