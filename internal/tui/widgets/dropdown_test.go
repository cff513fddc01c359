package widgets

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDropdownInitialHighlight(t *testing.T) {
	w := NewDropdown("Theme", []string{"Light", "Dark", "Auto"}, "Dark")
	assert.Equal(t, 1, w.selected)
	assert.Equal(t, "Dark", w.Value())

	// Unknown or empty initial values fall back to the first option.
	w = NewDropdown("Theme", []string{"Light", "Dark", "Auto"}, "Sepia")
	assert.Equal(t, 0, w.selected)
	w = NewDropdown("Theme", []string{"Light", "Dark", "Auto"}, "")
	assert.Equal(t, 0, w.selected)
}

func TestDropdownWraparound(t *testing.T) {
	w := NewDropdown("Theme", []string{"Light", "Dark", "Auto"}, "Light")
	w.Activate()

	w.HandleKey(keyType(tea.KeyUp))
	assert.Equal(t, "Auto", w.current(), "up from the first option wraps to the last")

	w.HandleKey(keyType(tea.KeyDown))
	assert.Equal(t, "Light", w.current(), "down from the last option wraps to the first")
}

func TestDropdownVimKeysNavigate(t *testing.T) {
	w := NewDropdown("Theme", []string{"Light", "Dark", "Auto"}, "Light")
	w.Activate()

	w.HandleKey(keyRunes("j"))
	assert.Equal(t, "Dark", w.current())
	w.HandleKey(keyRunes("k"))
	assert.Equal(t, "Light", w.current())
}

func TestDropdownConfirmSelectsHighlighted(t *testing.T) {
	w := NewDropdown("Theme", []string{"Light", "Dark", "Auto"}, "Dark")
	w.Activate()

	w.HandleKey(keyType(tea.KeyUp))
	res := w.HandleKey(keyType(tea.KeyEnter))
	require.Equal(t, StatusConfirmed, res.Status)
	assert.Equal(t, "Light", res.Value)
	assert.Equal(t, StateNormal, w.state)
}

func TestDropdownCancelKeepsSelection(t *testing.T) {
	w := NewDropdown("Theme", []string{"Light", "Dark", "Auto"}, "Dark")
	w.Activate()

	w.HandleKey(keyType(tea.KeyDown))
	res := w.HandleKey(keyType(tea.KeyEsc))
	assert.Equal(t, StatusCancelled, res.Status)
}

func TestDropdownEmptyOptions(t *testing.T) {
	w := NewDropdown("Theme", nil, "")
	w.Activate()

	w.HandleKey(keyType(tea.KeyDown))
	res := w.HandleKey(keyType(tea.KeyEnter))
	require.Equal(t, StatusConfirmed, res.Status)
	assert.Equal(t, "", res.Value)
}
