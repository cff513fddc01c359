package widgets

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/calwray/formwork/internal/ui"
)

// Status classifies the outcome of a key event.
type Status int

const (
	// StatusContinue means the widget consumed the key (or ignored it)
	// without producing a committable value.
	StatusContinue Status = iota
	// StatusChanged carries an intermediate value for live preview. The
	// widget stays in Editing.
	StatusChanged
	// StatusConfirmed carries the final value. The widget has left
	// Editing.
	StatusConfirmed
	// StatusCancelled means the edit was abandoned.
	StatusCancelled
)

// Result is what a widget reports back from HandleKey.
type Result struct {
	Status Status
	// Value is set for StatusChanged and StatusConfirmed.
	Value any
}

func Continue() Result       { return Result{Status: StatusContinue} }
func Changed(v any) Result   { return Result{Status: StatusChanged, Value: v} }
func Confirmed(v any) Result { return Result{Status: StatusConfirmed, Value: v} }
func Cancelled() Result      { return Result{Status: StatusCancelled} }

// State tracks where a widget is in its editing lifecycle.
type State int

const (
	StateNormal State = iota
	StateEditing
)

// Widget is the common contract all field editors implement.
type Widget interface {
	// View renders the widget as a styled string. focused marks the
	// widget's field as the navigation target even when not editing.
	View(focused bool, th *ui.Theme) string

	// HandleKey processes one key event. Widgets not in Editing state
	// return Continue for every key.
	HandleKey(msg tea.KeyMsg) Result

	// Value returns the widget's current value.
	Value() any

	// SetValue replaces the widget's value, ignoring values of the
	// wrong type.
	SetValue(v any)

	// Reset leaves Editing without touching the buffer.
	Reset()

	// Activate transitions the widget into Editing.
	Activate()
}
