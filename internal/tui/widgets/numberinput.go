package widgets

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/calwray/formwork/internal/ui"
)

// NumberInput edits integer values. The buffer only accepts digits and
// a single leading minus; range checking happens at confirm time so the
// user can pass through out-of-range intermediate states while typing.
type NumberInput struct {
	label string
	buf   *editBuffer
	state State
	min   *int64
	max   *int64
}

func NewNumberInput(label string, initial int64, min, max *int64) *NumberInput {
	return &NumberInput{
		label: label,
		buf:   newEditBuffer(strconv.FormatInt(initial, 10)),
		min:   min,
		max:   max,
	}
}

// parse returns the buffer as an in-range integer, or false when the
// buffer would not confirm.
func (w *NumberInput) parse() (int64, bool) {
	n, err := strconv.ParseInt(w.buf.String(), 10, 64)
	if err != nil {
		return 0, false
	}
	if w.min != nil && n < *w.min {
		return 0, false
	}
	if w.max != nil && n > *w.max {
		return 0, false
	}
	return n, true
}

func (w *NumberInput) insert(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
	case r == '-' && w.buf.cursor == 0 && !strings.ContainsRune(w.buf.String(), '-'):
	default:
		return false
	}
	w.buf.Insert(r)
	return true
}

func (w *NumberInput) View(focused bool, th *ui.Theme) string {
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

func (w *NumberInput) HandleKey(msg tea.KeyMsg) Result {
	if w.state != StateEditing {
		return Continue()
	}

	switch msg.Type {
	case tea.KeyEnter:
		n, ok := w.parse()
		if !ok {
			// Refuse to leave editing with a bad buffer.
			return Continue()
		}
		w.state = StateNormal
		return Confirmed(n)
	case tea.KeyEsc:
		w.state = StateNormal
		return Cancelled()
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

// Value returns the parsed integer, or the raw buffer string while the
// buffer is unparsable or out of range.
func (w *NumberInput) Value() any {
	if n, ok := w.parse(); ok {
		return n
	}
	return w.buf.String()
}

func (w *NumberInput) SetValue(v any) {
	switch n := v.(type) {
	case int64:
		w.buf.Set(strconv.FormatInt(n, 10))
	case int:
		w.buf.Set(strconv.Itoa(n))
	}
}

func (w *NumberInput) Reset() {
	w.state = StateNormal
	w.buf.End()
}

func (w *NumberInput) Activate() {
	w.state = StateEditing
	w.buf.End()
}
