package widgets

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/calwray/formwork/internal/ui"
)

// FloatInput edits floating point values. It extends the integer buffer
// rules with a single decimal point and supports step increments on the
// arrow keys, clamped to the declared bounds.
type FloatInput struct {
	label string
	buf   *editBuffer
	state State
	min   *float64
	max   *float64
	step  *float64
}

func NewFloatInput(label string, initial float64, min, max, step *float64) *FloatInput {
	return &FloatInput{
		label: label,
		buf:   newEditBuffer(formatFloat(initial)),
		min:   min,
		max:   max,
		step:  step,
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (w *FloatInput) parse() (float64, bool) {
	f, err := strconv.ParseFloat(w.buf.String(), 64)
	if err != nil {
		return 0, false
	}
	if w.min != nil && f < *w.min {
		return 0, false
	}
	if w.max != nil && f > *w.max {
		return 0, false
	}
	return f, true
}

func (w *FloatInput) insert(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
	case r == '-' && w.buf.cursor == 0 && !strings.ContainsRune(w.buf.String(), '-'):
	case r == '.' && !strings.ContainsRune(w.buf.String(), '.'):
	default:
		return false
	}
	w.buf.Insert(r)
	return true
}

// stepBy nudges a valid buffer by delta, refusing to step past the
// bounds. Stepping an invalid buffer is a no-op.
func (w *FloatInput) stepBy(delta float64) Result {
	current, ok := w.parse()
	if !ok || w.step == nil {
		return Continue()
	}
	next := current + delta
	if w.min != nil && next < *w.min {
		return Continue()
	}
	if w.max != nil && next > *w.max {
		return Continue()
	}
	w.buf.Set(formatFloat(next))
	return Changed(w.Value())
}

func (w *FloatInput) View(focused bool, th *ui.Theme) string {
	label := th.Label.Render(w.label + ": ")
	if w.state != StateEditing {
		style := th.Value
		if focused {
			style = th.Focused
		}
		return label + style.Render(w.buf.String())
	}

	if _, ok := w.parse(); ok {
		return label + th.Editing.Render(w.buf.Display())
	}
	return label + th.Invalid.Render(w.buf.Display()) + " " + th.Invalid.Render(ui.MarkerOff)
}

func (w *FloatInput) HandleKey(msg tea.KeyMsg) Result {
	if w.state != StateEditing {
		return Continue()
	}

	switch msg.Type {
	case tea.KeyEnter:
		f, ok := w.parse()
		if !ok {
			return Continue()
		}
		w.state = StateNormal
		return Confirmed(f)
	case tea.KeyEsc:
		w.state = StateNormal
		return Cancelled()
	case tea.KeyUp:
		if w.step != nil {
			return w.stepBy(*w.step)
		}
		return Continue()
	case tea.KeyDown:
		if w.step != nil {
			return w.stepBy(-*w.step)
		}
		return Continue()
	case tea.KeyBackspace:
		if w.buf.Backspace() {
			return Changed(w.Value())
		}
		return Continue()
	case tea.KeyDelete:
		if w.buf.Delete() {
			return Changed(w.Value())
		}
		return Continue()
	case tea.KeyLeft:
		w.buf.Left()
		return Continue()
	case tea.KeyRight:
		w.buf.Right()
		return Continue()
	case tea.KeyHome:
		w.buf.Home()
		return Continue()
	case tea.KeyEnd:
		w.buf.End()
		return Continue()
	case tea.KeyRunes:
		changed := false
		for _, r := range msg.Runes {
			if w.insert(r) {
				changed = true
			}
		}
		if changed {
			return Changed(w.Value())
		}
		return Continue()
	}
	return Continue()
}

// Value returns the parsed float, or the raw buffer string while the
// buffer is unparsable or out of range.
func (w *FloatInput) Value() any {
	if f, ok := w.parse(); ok {
		return f
	}
	return w.buf.String()
}

func (w *FloatInput) SetValue(v any) {
	switch f := v.(type) {
	case float64:
		w.buf.Set(formatFloat(f))
	case int64:
		w.buf.Set(formatFloat(float64(f)))
	}
}

func (w *FloatInput) Reset() {
	w.state = StateNormal
	w.buf.End()
}

func (w *FloatInput) Activate() {
	w.state = StateEditing
	w.buf.End()
}
