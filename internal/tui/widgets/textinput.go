package widgets

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/calwray/formwork/internal/ui"
)

// TextInput edits free-form string and path values. The buffer and
// cursor mechanics come from bubbles' textinput model.
type TextInput struct {
	label string
	input textinput.Model
	state State
}

// NewTextInput builds a text widget seeded with initial. maxLength of
// zero means unlimited.
func NewTextInput(label, initial string, maxLength int) *TextInput {
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = maxLength
	in.SetValue(initial)
	in.CursorEnd()
	return &TextInput{label: label, input: in}
}

func (w *TextInput) View(focused bool, th *ui.Theme) string {
	label := th.Label.Render(w.label + ": ")
	if w.state == StateEditing {
		return label + th.Editing.Render(w.input.View())
	}
	style := th.Value
	if focused {
		style = th.Focused
	}
	return label + style.Render(w.input.Value())
}

func (w *TextInput) HandleKey(msg tea.KeyMsg) Result {
	if w.state != StateEditing {
		return Continue()
	}

	switch msg.Type {
	case tea.KeyEnter:
		w.state = StateNormal
		w.input.Blur()
		return Confirmed(w.Value())
	case tea.KeyEsc:
		w.state = StateNormal
		w.input.Blur()
		return Cancelled()
	}

	before := w.input.Value()
	w.input, _ = w.input.Update(msg)
	if w.input.Value() != before {
		return Changed(w.Value())
	}
	return Continue()
}

func (w *TextInput) Value() any { return w.input.Value() }

func (w *TextInput) SetValue(v any) {
	if s, ok := v.(string); ok {
		w.input.SetValue(s)
		w.input.CursorEnd()
	}
}

func (w *TextInput) Reset() {
	w.state = StateNormal
	w.input.Blur()
	w.input.CursorEnd()
}

func (w *TextInput) Activate() {
	w.state = StateEditing
	w.input.Focus()
	w.input.CursorEnd()
}
