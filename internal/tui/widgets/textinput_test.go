package widgets

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextInputTypingReportsChanged(t *testing.T) {
	w := NewTextInput("Name", "", 0)
	w.Activate()

	res := w.HandleKey(keyRunes("a"))
	require.Equal(t, StatusChanged, res.Status)
	assert.Equal(t, "a", res.Value)

	typeString(w, "bc")
	assert.Equal(t, "abc", w.Value())
}

func TestTextInputConfirmReturnsBuffer(t *testing.T) {
	w := NewTextInput("Name", "old", 0)
	w.Activate()
	typeString(w, "!")

	res := w.HandleKey(keyType(tea.KeyEnter))
	require.Equal(t, StatusConfirmed, res.Status)
	assert.Equal(t, "old!", res.Value)
}

func TestTextInputEscapeCancels(t *testing.T) {
	w := NewTextInput("Name", "old", 0)
	w.Activate()
	typeString(w, "x")

	res := w.HandleKey(keyType(tea.KeyEsc))
	assert.Equal(t, StatusCancelled, res.Status)
}

func TestTextInputMaxLength(t *testing.T) {
	w := NewTextInput("Code", "", 3)
	w.Activate()

	typeString(w, "abcd")
	assert.Equal(t, "abc", w.Value())
}

func TestTextInputBackspace(t *testing.T) {
	w := NewTextInput("Name", "ab", 0)
	w.Activate()

	res := w.HandleKey(keyType(tea.KeyBackspace))
	require.Equal(t, StatusChanged, res.Status)
	assert.Equal(t, "a", res.Value)
}

func TestTextInputIgnoresKeysWhenNotEditing(t *testing.T) {
	w := NewTextInput("Name", "keep", 0)

	res := w.HandleKey(keyRunes("x"))
	assert.Equal(t, StatusContinue, res.Status)
	assert.Equal(t, "keep", w.Value())
}

func TestTextInputSetValue(t *testing.T) {
	w := NewTextInput("Name", "a", 0)
	w.SetValue("replaced")
	assert.Equal(t, "replaced", w.Value())
	w.SetValue(42)
	assert.Equal(t, "replaced", w.Value())
}
