package widgets

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/calwray/formwork/internal/ui"
)

// Dropdown selects one option from a fixed list. Navigation wraps at
// both ends.
type Dropdown struct {
	label    string
	options  []string
	selected int
	state    State
}

// NewDropdown builds a dropdown with the highlight on initial when it
// appears in options, otherwise on the first option.
func NewDropdown(label string, options []string, initial string) *Dropdown {
	selected := 0
	for i, opt := range options {
		if opt == initial {
			selected = i
			break
		}
	}
	return &Dropdown{label: label, options: options, selected: selected}
}

func (w *Dropdown) next() {
	if len(w.options) == 0 {
		return
	}
	w.selected = (w.selected + 1) % len(w.options)
}

func (w *Dropdown) prev() {
	if len(w.options) == 0 {
		return
	}
	w.selected = (w.selected + len(w.options) - 1) % len(w.options)
}

func (w *Dropdown) current() string {
	if w.selected < len(w.options) {
		return w.options[w.selected]
	}
	return ""
}

func (w *Dropdown) View(focused bool, th *ui.Theme) string {
	if w.state == StateEditing {
		return w.viewOpen(th)
	}

	label := th.Label.Render(w.label + ": ")
	style := th.Value
	if focused {
		style = th.Focused
	}
	return label + style.Render(w.current()) + " " + th.Muted.Render(ui.MarkerDropdown)
}

func (w *Dropdown) viewOpen(th *ui.Theme) string {
	lines := make([]string, 0, len(w.options)+1)
	lines = append(lines, th.Label.Render(w.label))
	for i, opt := range w.options {
		if i == w.selected {
			lines = append(lines, th.Selected.Render(ui.MarkerSelected+opt))
		} else {
			lines = append(lines, "  "+opt)
		}
	}
	if len(w.options) == 0 {
		lines = append(lines, th.Muted.Render("(no options)"))
	}
	return th.Popup.Render(strings.Join(lines, "\n"))
}

func (w *Dropdown) HandleKey(msg tea.KeyMsg) Result {
	if w.state != StateEditing {
		return Continue()
	}

	switch msg.Type {
	case tea.KeyEnter:
		w.state = StateNormal
		return Confirmed(w.current())
	case tea.KeyEsc:
		w.state = StateNormal
		return Cancelled()
	case tea.KeyDown:
		w.next()
		return Continue()
	case tea.KeyUp:
		w.prev()
		return Continue()
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			switch msg.Runes[0] {
			case 'j':
				w.next()
				return Continue()
			case 'k':
				w.prev()
				return Continue()
			}
		}
	}
	return Continue()
}

func (w *Dropdown) Value() any { return w.current() }

func (w *Dropdown) SetValue(v any) {
	s, ok := v.(string)
	if !ok {
		return
	}
	for i, opt := range w.options {
		if opt == s {
			w.selected = i
			return
		}
	}
}

func (w *Dropdown) Reset() { w.state = StateNormal }

func (w *Dropdown) Activate() { w.state = StateEditing }
