package ui

import "github.com/charmbracelet/lipgloss"

// Theme is the fixed set of style roles the editor renders with.
type Theme struct {
	// Name identifies the preset ("terminal", "dark", "light").
	Name string

	// App chrome.
	Title         lipgloss.Style // schema title in the header
	Tab           lipgloss.Style // inactive section tab
	TabActive     lipgloss.Style // selected section tab
	SectionHeader lipgloss.Style // subsection group headers
	Help          lipgloss.Style // footer key hints
	Status        lipgloss.Style // transient status messages
	StatusError   lipgloss.Style // error status messages

	// Field rows and widgets.
	Label    lipgloss.Style // field labels
	Value    lipgloss.Style // field values at rest
	Muted    lipgloss.Style // descriptions, decorations
	Focused  lipgloss.Style // the focused field row
	Editing  lipgloss.Style // active edit buffer
	Invalid  lipgloss.Style // edit buffer that would not confirm
	Selected lipgloss.Style // highlighted dropdown option
	Success  lipgloss.Style // enabled toggle marker
	Error    lipgloss.Style // disabled toggle marker
	Popup    lipgloss.Style // bordered box around open dropdowns
}

// Markers used by toggle and dropdown rendering.
const (
	MarkerOn       = "✓"
	MarkerOff      = "✗"
	MarkerSelected = "» "
	MarkerDropdown = "▼"
)

// Terminal is the default theme. It uses the standard ANSI palette so
// rendering follows the user's terminal color scheme.
func Terminal() *Theme {
	return build("terminal", palette{
		accent:  lipgloss.Color("6"), // cyan
		focused: lipgloss.Color("3"), // yellow
		success: lipgloss.Color("2"),
		failure: lipgloss.Color("1"),
		text:    lipgloss.NoColor{},
		muted:   lipgloss.Color("8"),
	})
}

// Dark is a preset with explicit colors for dark backgrounds.
func Dark() *Theme {
	return build("dark", palette{
		accent:  lipgloss.Color("#56B6C2"),
		focused: lipgloss.Color("#E5C07B"),
		success: lipgloss.Color("#43BF6D"),
		failure: lipgloss.Color("#FF5555"),
		text:    lipgloss.Color("#FFFFFF"),
		muted:   lipgloss.Color("#626262"),
	})
}

// Light is a preset with explicit colors for light backgrounds.
func Light() *Theme {
	return build("light", palette{
		accent:  lipgloss.Color("#0184BC"),
		focused: lipgloss.Color("#4078F2"),
		success: lipgloss.Color("#50A14F"),
		failure: lipgloss.Color("#E45649"),
		text:    lipgloss.Color("#383A42"),
		muted:   lipgloss.Color("#A0A1A7"),
	})
}

// ByName returns the preset matching name, defaulting to Terminal.
func ByName(name string) *Theme {
	switch name {
	case "dark":
		return Dark()
	case "light":
		return Light()
	default:
		return Terminal()
	}
}

type palette struct {
	accent  lipgloss.TerminalColor
	focused lipgloss.TerminalColor
	success lipgloss.TerminalColor
	failure lipgloss.TerminalColor
	text    lipgloss.TerminalColor
	muted   lipgloss.TerminalColor
}

func build(name string, p palette) *Theme {
	return &Theme{
		Name: name,

		Title:         lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		Tab:           lipgloss.NewStyle().Foreground(p.muted).Padding(0, 1),
		TabActive:     lipgloss.NewStyle().Foreground(p.accent).Bold(true).Padding(0, 1).Underline(true),
		SectionHeader: lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		Help:          lipgloss.NewStyle().Foreground(p.muted),
		Status:        lipgloss.NewStyle().Foreground(p.success),
		StatusError:   lipgloss.NewStyle().Foreground(p.failure),

		Label:    lipgloss.NewStyle().Bold(true),
		Value:    lipgloss.NewStyle().Foreground(p.text),
		Muted:    lipgloss.NewStyle().Foreground(p.muted),
		Focused:  lipgloss.NewStyle().Foreground(p.focused).Bold(true),
		Editing:  lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		Invalid:  lipgloss.NewStyle().Foreground(p.failure).Bold(true),
		Selected: lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		Success:  lipgloss.NewStyle().Foreground(p.success).Bold(true),
		Error:    lipgloss.NewStyle().Foreground(p.failure).Bold(true),
		Popup:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.accent).Padding(0, 1),
	}
}
