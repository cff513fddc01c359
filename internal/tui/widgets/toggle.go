package widgets

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/calwray/formwork/internal/ui"
)

// Toggle is a boolean switch. It has no lingering editing state:
// Activate flips the value in place and the controller commits the
// result immediately.
type Toggle struct {
	label string
	value bool
}

func NewToggle(label string, initial bool) *Toggle {
	return &Toggle{label: label, value: initial}
}

func (w *Toggle) View(focused bool, th *ui.Theme) string {
	label := th.Label.Render(w.label + ": ")

	marker := th.Error.Render(ui.MarkerOff)
	if w.value {
		marker = th.Success.Render(ui.MarkerOn)
	}

	style := th.Value
	if focused {
		style = th.Focused
	}
	text := "false"
	if w.value {
		text = "true"
	}
	return label + marker + " " + style.Render(text)
}

func (w *Toggle) HandleKey(msg tea.KeyMsg) Result {
	switch msg.Type {
	case tea.KeyEnter, tea.KeySpace:
		w.value = !w.value
		return Confirmed(w.value)
	}
	return Continue()
}

func (w *Toggle) Value() any { return w.value }

func (w *Toggle) SetValue(v any) {
	if b, ok := v.(bool); ok {
		w.value = b
	}
}

func (w *Toggle) Reset() {}

// Activate flips the value. The caller treats the flip as an immediate
// confirm rather than entering an editing session.
func (w *Toggle) Activate() {
	w.value = !w.value
}
