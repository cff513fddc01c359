package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/calwray/formwork/internal/options"
	"github.com/calwray/formwork/internal/schema"
	"github.com/calwray/formwork/internal/ui"
)

const subsectionRule = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")
	b.WriteString(m.viewContent())
	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	return b.String()
}

func (m Model) viewHeader() string {
	title := m.schema.Title
	if title == "" {
		title = "Configuration"
	}
	header := m.theme.Title.Render(title)
	if m.schema.Description != "" {
		header += "\n" + m.theme.Muted.Render(m.schema.Description)
	}
	return header
}

// viewTabs renders one tab per visible section. When the row overflows
// the terminal, the window slides to keep the active tab on screen,
// with arrows marking clipped ends.
func (m Model) viewTabs() string {
	visible := m.visibleSections()
	if len(visible) == 0 {
		return ""
	}

	rendered := make([]string, len(visible))
	active := 0
	for i, idx := range visible {
		section := m.schema.Sections[idx]
		label := section.Title
		if section.Icon != "" {
			label = section.Icon + " " + label
		}
		if idx == m.currentSection {
			rendered[i] = m.theme.TabActive.Render(label)
			active = i
		} else {
			rendered[i] = m.theme.Tab.Render(label)
		}
	}

	if m.width <= 0 {
		return strings.Join(rendered, "")
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	if lipgloss.Width(row) <= m.width {
		return row
	}

	// Window the tabs around the active one.
	start, end := active, active+1
	width := lipgloss.Width(rendered[active])
	for start > 0 || end < len(rendered) {
		grew := false
		if start > 0 && width+lipgloss.Width(rendered[start-1]) <= m.width-4 {
			start--
			width += lipgloss.Width(rendered[start])
			grew = true
		}
		if end < len(rendered) && width+lipgloss.Width(rendered[end]) <= m.width-4 {
			width += lipgloss.Width(rendered[end])
			end++
			grew = true
		}
		if !grew {
			break
		}
	}

	row = lipgloss.JoinHorizontal(lipgloss.Top, rendered[start:end]...)
	if start > 0 {
		row = m.theme.Muted.Render("← ") + row
	}
	if end < len(rendered) {
		row += m.theme.Muted.Render(" →")
	}
	return row
}

func (m Model) viewContent() string {
	section, ok := m.currentSectionDef()
	if !ok {
		return m.theme.Muted.Render("(no sections)")
	}

	var lines []string
	subsection := ""
	for i, field := range section.Fields {
		if field.Subsection != "" && field.Subsection != subsection {
			if len(lines) > 0 {
				lines = append(lines, "")
			}
			header := m.theme.Muted.Render("━━━ ") +
				m.theme.SectionHeader.Render(field.Subsection) +
				m.theme.Muted.Render(" "+subsectionRule)
			lines = append(lines, header)
			subsection = field.Subsection
		}

		fieldKey := schema.QualifiedKey(section.ID, field.ID)

		// The active widget paints its own editing representation in
		// place of the resting field line.
		if m.editMode && m.activeField == fieldKey {
			if w, ok := m.widgets[fieldKey]; ok {
				lines = append(lines, "  "+w.View(true, m.theme))
				continue
			}
		}

		focused := i == m.currentField && !m.editMode
		marker := "  "
		if focused {
			marker = m.theme.Focused.Render(ui.MarkerSelected)
		}
		lines = append(lines, marker+m.fieldLine(field, fieldKey, focused))
	}
	if len(lines) == 0 {
		return m.theme.Muted.Render("(no fields)")
	}
	return strings.Join(lines, "\n")
}

func (m Model) fieldLine(field schema.Field, fieldKey string, focused bool) string {
	label := m.theme.Label.Render(field.Label + ": ")

	style := m.theme.Value
	if focused {
		style = m.theme.Focused
	}

	value, ok := m.values[fieldKey]
	if !ok {
		if def, hasDefault := field.Type.DefaultValue(); hasDefault {
			value = def
		} else {
			return label + m.theme.Muted.Render("(unset)")
		}
	}

	if b, isBool := value.(bool); isBool {
		if b {
			return label + m.theme.Success.Render(ui.MarkerOn) + " " + style.Render("true")
		}
		return label + m.theme.Error.Render(ui.MarkerOff) + " " + style.Render("false")
	}
	return label + style.Render(options.FormatValue(value))
}

func (m Model) viewFooter() string {
	lines := []string{m.help.View(m.keys)}

	if m.status != "" {
		style := m.theme.Status
		if m.isErr {
			style = m.theme.StatusError
		}
		lines = append(lines, style.Render(m.status))
	}

	if field, ok := m.currentFieldDef(); ok && field.Description != "" {
		lines = append(lines, m.theme.Muted.Render(field.Description))
	}
	return strings.Join(lines, "\n")
}
