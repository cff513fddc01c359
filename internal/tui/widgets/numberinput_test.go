package widgets

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64p(n int64) *int64 { return &n }

func TestNumberInputRejectsNonDigits(t *testing.T) {
	w := NewNumberInput("Port", 0, nil, nil)
	w.Activate()

	res := w.HandleKey(keyRunes("x"))
	assert.Equal(t, StatusContinue, res.Status)

	typeString(w, "8a0b80")
	assert.Equal(t, int64(8080), w.Value(), "non-digit runes must be dropped")
}

func TestNumberInputSingleLeadingMinus(t *testing.T) {
	w := NewNumberInput("Offset", 0, nil, nil)
	w.Activate()
	w.buf.Set("")

	typeString(w, "-5")
	assert.Equal(t, int64(-5), w.Value())

	// A second minus, and a minus not at position 0, are both dropped.
	w.buf.Home()
	res := w.HandleKey(keyRunes("-"))
	assert.Equal(t, StatusContinue, res.Status)
	w.buf.End()
	res = w.HandleKey(keyRunes("-"))
	assert.Equal(t, StatusContinue, res.Status)
	assert.Equal(t, int64(-5), w.Value())
}

func TestNumberInputConfirmInRange(t *testing.T) {
	w := NewNumberInput("Port", 8080, int64p(1), int64p(65535))
	w.Activate()

	res := w.HandleKey(keyType(tea.KeyEnter))
	require.Equal(t, StatusConfirmed, res.Status)
	assert.Equal(t, int64(8080), res.Value)
}

func TestNumberInputConfirmOutOfRangeRejected(t *testing.T) {
	w := NewNumberInput("Port", 8080, int64p(1), int64p(65535))
	w.Activate()
	typeString(w, "99")

	res := w.HandleKey(keyType(tea.KeyEnter))
	assert.Equal(t, StatusContinue, res.Status, "out-of-range buffer must not confirm")
	assert.Equal(t, StateEditing, w.state, "widget must stay in editing")

	// The buffer is still editable afterwards.
	w.HandleKey(keyType(tea.KeyBackspace))
	w.HandleKey(keyType(tea.KeyBackspace))
	res = w.HandleKey(keyType(tea.KeyEnter))
	assert.Equal(t, StatusConfirmed, res.Status)
	assert.Equal(t, int64(8080), res.Value)
}

func TestNumberInputConfirmUnparsableRejected(t *testing.T) {
	w := NewNumberInput("Offset", 0, nil, nil)
	w.Activate()
	w.buf.Set("-")

	res := w.HandleKey(keyType(tea.KeyEnter))
	assert.Equal(t, StatusContinue, res.Status)
}

func TestNumberInputEscapeCancels(t *testing.T) {
	w := NewNumberInput("Port", 8080, nil, nil)
	w.Activate()
	typeString(w, "1")

	res := w.HandleKey(keyType(tea.KeyEsc))
	assert.Equal(t, StatusCancelled, res.Status)
	assert.Equal(t, StateNormal, w.state)
}

func TestNumberInputIgnoresKeysWhenNotEditing(t *testing.T) {
	w := NewNumberInput("Port", 8080, nil, nil)

	res := w.HandleKey(keyRunes("1"))
	assert.Equal(t, StatusContinue, res.Status)
	assert.Equal(t, int64(8080), w.Value())
}
