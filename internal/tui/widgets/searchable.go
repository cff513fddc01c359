package widgets

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/calwray/formwork/internal/ui"
)

// SearchableDropdown is a dropdown with an incremental filter. Typed
// characters narrow the option list by case-insensitive substring
// match; j, k and the arrow keys navigate the filtered list.
type SearchableDropdown struct {
	label    string
	all      []string
	filtered []string
	selected int
	search   string
	value    string
	state    State
}

// NewSearchableDropdown builds the widget with initial as its resting
// value; an empty initial falls back to the first option.
func NewSearchableDropdown(label string, options []string, initial string) *SearchableDropdown {
	value := initial
	if value == "" && len(options) > 0 {
		value = options[0]
	}
	return &SearchableDropdown{
		label:    label,
		all:      options,
		filtered: options,
		value:    value,
	}
}

func (w *SearchableDropdown) refilter() {
	needle := strings.ToLower(w.search)
	filtered := make([]string, 0, len(w.all))
	for _, opt := range w.all {
		if strings.Contains(strings.ToLower(opt), needle) {
			filtered = append(filtered, opt)
		}
	}
	w.filtered = filtered

	// Re-clamp the highlight into the narrowed list.
	if len(w.filtered) == 0 {
		w.selected = 0
	} else if w.selected >= len(w.filtered) {
		w.selected = len(w.filtered) - 1
	}
}

func (w *SearchableDropdown) next() {
	if len(w.filtered) == 0 {
		return
	}
	w.selected = (w.selected + 1) % len(w.filtered)
}

func (w *SearchableDropdown) prev() {
	if len(w.filtered) == 0 {
		return
	}
	w.selected = (w.selected + len(w.filtered) - 1) % len(w.filtered)
}

func (w *SearchableDropdown) View(focused bool, th *ui.Theme) string {
	if w.state == StateEditing {
		return w.viewOpen(th)
	}

	label := th.Label.Render(w.label + ": ")
	style := th.Value
	if focused {
		style = th.Focused
	}
	return label + style.Render(w.value) + " " + th.Muted.Render(ui.MarkerDropdown)
}

func (w *SearchableDropdown) viewOpen(th *ui.Theme) string {
	lines := make([]string, 0, len(w.filtered)+2)
	lines = append(lines, th.Label.Render(w.label))
	lines = append(lines, th.Editing.Render("/"+w.search+"█"))
	for i, opt := range w.filtered {
		if i == w.selected {
			lines = append(lines, th.Selected.Render(ui.MarkerSelected+opt))
		} else {
			lines = append(lines, "  "+opt)
		}
	}
	if len(w.filtered) == 0 {
		lines = append(lines, th.Muted.Render("(no matches)"))
	}
	return th.Popup.Render(strings.Join(lines, "\n"))
}

func (w *SearchableDropdown) HandleKey(msg tea.KeyMsg) Result {
	if w.state != StateEditing {
		return Continue()
	}

	switch msg.Type {
	case tea.KeyEnter:
		// An empty filtered list has nothing to confirm.
		if len(w.filtered) == 0 {
			return Continue()
		}
		w.value = w.filtered[w.selected]
		w.state = StateNormal
		return Confirmed(w.value)
	case tea.KeyEsc:
		w.state = StateNormal
		return Cancelled()
	case tea.KeyDown:
		w.next()
		return Continue()
	case tea.KeyUp:
		w.prev()
		return Continue()
	case tea.KeyBackspace:
		if w.search != "" {
			r := []rune(w.search)
			w.search = string(r[:len(r)-1])
			w.refilter()
		}
		return Continue()
	case tea.KeySpace:
		w.search += " "
		w.refilter()
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
		w.search += string(msg.Runes)
		w.refilter()
		return Continue()
	}
	return Continue()
}

func (w *SearchableDropdown) Value() any { return w.value }

func (w *SearchableDropdown) SetValue(v any) {
	if s, ok := v.(string); ok {
		w.value = s
	}
}

func (w *SearchableDropdown) Reset() { w.state = StateNormal }

// Activate opens the list with a cleared filter and the highlight on
// the first option.
func (w *SearchableDropdown) Activate() {
	w.state = StateEditing
	w.search = ""
	w.filtered = w.all
	w.selected = 0
}
