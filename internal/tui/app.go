package tui

import (
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/calwray/formwork/internal/config"
	"github.com/calwray/formwork/internal/logging"
	"github.com/calwray/formwork/internal/options"
	"github.com/calwray/formwork/internal/schema"
	"github.com/calwray/formwork/internal/tui/widgets"
	"github.com/calwray/formwork/internal/ui"
)

// ChangeHandler is notified after a field value changes. Handlers run
// in registration order on the event loop goroutine.
type ChangeHandler func(key string, value any)

// optionsResolvedMsg carries an asynchronously resolved option list
// back to the event loop.
type optionsResolvedMsg struct {
	fieldKey string
	field    schema.Field
	options  []string
	err      error
}

// editorFinishedMsg reports the end of an external editor session.
type editorFinishedMsg struct {
	fieldKey string
	path     string
	original string
	err      error
}

// statusExpiredMsg clears a transient status message. The sequence
// number guards against clearing a newer message than the one that
// scheduled the tick.
type statusExpiredMsg struct {
	seq int
}

const statusTTL = 5 * time.Second

func expireStatus(seq int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}

// Model is the editor's top-level bubbletea model. It owns the
// authoritative value map and routes keys either to navigation or to
// the active widget.
type Model struct {
	schema     *schema.Schema
	values     map[string]any
	configPath string

	currentSection int
	currentField   int

	editMode    bool
	activeField string
	// Widget instances keyed by qualified field key. Entries are
	// discarded on confirm and cancel so the next activation reseeds
	// from the value map.
	widgets map[string]widgets.Widget

	handlers []ChangeHandler
	resolver *options.Resolver
	runner   options.CommandRunner
	// Custom shell commands keyed by qualified field key.
	actions map[string]string

	theme *ui.Theme

	status string
	isErr  bool
	// statusSeq increments on every status change so stale expiry
	// ticks cannot clear a newer message.
	statusSeq int

	width  int
	height int

	help help.Model
	keys keyMap
}

func newModel(
	s *schema.Schema,
	initial map[string]any,
	resolver *options.Resolver,
	runner options.CommandRunner,
	actions map[string]string,
	theme *ui.Theme,
	configPath string,
) Model {
	values := make(map[string]any, len(initial))
	for k, v := range initial {
		values[k] = v
	}

	// Seed schema defaults for keys the config did not provide.
	for _, section := range s.Sections {
		for _, field := range section.Fields {
			key := schema.QualifiedKey(section.ID, field.ID)
			if _, ok := values[key]; ok {
				continue
			}
			if def, ok := field.Type.DefaultValue(); ok {
				values[key] = def
			}
		}
	}

	return Model{
		schema:     s,
		values:     values,
		configPath: configPath,
		widgets:    make(map[string]widgets.Widget),
		resolver:   resolver,
		runner:     runner,
		actions:    actions,
		theme:      theme,
		help:       help.New(),
		keys:       defaultKeyMap(),
	}
}

func (m Model) Init() tea.Cmd { return nil }

// OnChange registers a handler fired after every value change.
func (m *Model) OnChange(h ChangeHandler) {
	m.handlers = append(m.handlers, h)
}

// Value returns the current value for a qualified field key.
func (m Model) Value(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Values returns a copy of the full value map.
func (m Model) Values() map[string]any {
	out := make(map[string]any, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case optionsResolvedMsg:
		return m.openEnum(msg).withStatusExpiry(m.statusSeq, nil)

	case editorFinishedMsg:
		return m.finishEditor(msg).withStatusExpiry(m.statusSeq, nil)

	case statusExpiredMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.isErr = false
		}
		return m, nil

	case tea.KeyMsg:
		if m.editMode {
			return m.handleEditKey(msg).withStatusExpiry(m.statusSeq, nil)
		}
		next, cmd := m.handleNavKey(msg)
		if nm, ok := next.(Model); ok {
			return nm.withStatusExpiry(m.statusSeq, cmd)
		}
		return next, cmd
	}
	return m, nil
}

func (m Model) handleNavKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextSection):
		m.moveSection(1)
	case key.Matches(msg, m.keys.PrevSection):
		m.moveSection(-1)
	case key.Matches(msg, m.keys.NextField):
		m.moveField(1)
	case key.Matches(msg, m.keys.PrevField):
		m.moveField(-1)
	case key.Matches(msg, m.keys.Activate):
		return m.activateField()
	case key.Matches(msg, m.keys.Editor):
		return m.launchEditor()
	default:
		if cmd, ok := m.actionFor(msg); ok {
			return m.runAction(cmd)
		}
	}
	return m, nil
}

// actionFor matches a key press against the focused field's registered
// custom command. The trigger is the field's declared keybind, or the
// default action key when none is declared.
func (m Model) actionFor(msg tea.KeyMsg) (string, bool) {
	field, ok := m.currentFieldDef()
	if !ok {
		return "", false
	}
	command, ok := m.actions[m.currentKey()]
	if !ok {
		return "", false
	}
	trigger := field.Keybind
	if trigger == "" {
		return command, key.Matches(msg, m.keys.Action)
	}
	return command, msg.String() == trigger
}

func (m Model) handleEditKey(msg tea.KeyMsg) Model {
	w, ok := m.widgets[m.activeField]
	if !ok {
		m.editMode = false
		m.activeField = ""
		return m
	}

	res := w.HandleKey(msg)
	switch res.Status {
	case widgets.StatusConfirmed:
		fieldKey := m.activeField
		m.editMode = false
		m.activeField = ""
		m = m.commitConfirmed(fieldKey, res.Value)
	case widgets.StatusCancelled:
		delete(m.widgets, m.activeField)
		m.editMode = false
		m.activeField = ""
		m.setStatus("Cancelled", false)
	case widgets.StatusChanged:
		m = m.commitChanged(m.activeField, res.Value)
	}
	return m
}

// commitConfirmed merges a confirmed value: update the map, discard
// the widget so the next activation reseeds, persist, then notify
// listeners. A persistence failure keeps the in-memory value.
func (m Model) commitConfirmed(fieldKey string, value any) Model {
	m.values[fieldKey] = value
	delete(m.widgets, fieldKey)

	if err := m.persist(); err != nil {
		logging.Error("failed to persist config", zap.String("key", fieldKey), zap.Error(err))
		m.setStatus("Saved "+fieldKey+" (write failed: "+err.Error()+")", true)
	} else {
		m.setStatus("Saved "+fieldKey, false)
	}

	for _, h := range m.handlers {
		h(fieldKey, value)
	}
	return m
}

// commitChanged merges a live intermediate value and notifies
// listeners without persisting or discarding the widget.
func (m Model) commitChanged(fieldKey string, value any) Model {
	m.values[fieldKey] = value
	for _, h := range m.handlers {
		h(fieldKey, value)
	}
	return m
}

func (m Model) persist() error {
	if m.configPath == "" {
		return nil
	}
	store := config.NewStore()
	for k, v := range m.values {
		store.SetNested(k, v)
	}
	return config.Save(store, m.schema, m.configPath)
}

// visibleSections returns the indices of sections whose visibility
// predicate holds against the current value map. Recomputed on every
// navigation action because value changes can alter visibility.
func (m Model) visibleSections() []int {
	visible := make([]int, 0, len(m.schema.Sections))
	for i, section := range m.schema.Sections {
		if section.VisibleWhen == "" || EvaluateCondition(section.VisibleWhen, m.values) {
			visible = append(visible, i)
		}
	}
	return visible
}

func (m *Model) moveSection(delta int) {
	visible := m.visibleSections()
	if len(visible) == 0 {
		return
	}

	pos := -1
	for i, idx := range visible {
		if idx == m.currentSection {
			pos = i
			break
		}
	}
	if pos == -1 {
		// The current section became invisible; fall back to the
		// first visible one.
		m.currentSection = visible[0]
	} else {
		pos = (pos + delta + len(visible)) % len(visible)
		m.currentSection = visible[pos]
	}
	m.currentField = 0
}

func (m *Model) moveField(delta int) {
	section, ok := m.currentSectionDef()
	if !ok || len(section.Fields) == 0 {
		return
	}
	n := len(section.Fields)
	m.currentField = (m.currentField + delta + n) % n
}

func (m Model) currentSectionDef() (schema.Section, bool) {
	if m.currentSection >= len(m.schema.Sections) {
		return schema.Section{}, false
	}
	return m.schema.Sections[m.currentSection], true
}

func (m Model) currentFieldDef() (schema.Field, bool) {
	section, ok := m.currentSectionDef()
	if !ok || m.currentField >= len(section.Fields) {
		return schema.Field{}, false
	}
	return section.Fields[m.currentField], true
}

func (m Model) currentKey() string {
	section, ok := m.currentSectionDef()
	if !ok {
		return ""
	}
	field, ok := m.currentFieldDef()
	if !ok {
		return ""
	}
	return schema.QualifiedKey(section.ID, field.ID)
}

// activateField starts an editing session for the focused field.
// Toggles flip and commit immediately. Enum fields resolve their
// option list first; script sources resolve off the event loop.
func (m Model) activateField() (tea.Model, tea.Cmd) {
	field, ok := m.currentFieldDef()
	if !ok {
		return m, nil
	}
	fieldKey := m.currentKey()

	switch t := field.Type.(type) {
	case schema.BooleanType:
		w, ok := m.widgets[fieldKey]
		if !ok {
			w = widgets.NewToggle(field.Label, t.Default)
			m.widgets[fieldKey] = w
		}
		if v, ok := m.values[fieldKey]; ok {
			w.SetValue(v)
		}
		w.Activate()
		return m.commitConfirmed(fieldKey, w.Value()), nil

	case schema.EnumType:
		if w, ok := m.widgets[fieldKey]; ok {
			if v, ok := m.values[fieldKey]; ok {
				w.SetValue(v)
			}
			w.Activate()
			m.editMode = true
			m.activeField = fieldKey
			return m, nil
		}
		if _, suspending := t.Source.(schema.ScriptSource); suspending {
			return m, m.resolveOptionsCmd(field, fieldKey, t.Source)
		}
		opts, err := m.resolver.Resolve(t.Source, m.values)
		return m.openEnum(optionsResolvedMsg{
			fieldKey: fieldKey,
			field:    field,
			options:  opts,
			err:      err,
		}), nil

	default:
		w, ok := m.widgets[fieldKey]
		if !ok {
			w = m.buildWidget(field, fieldKey)
			if w == nil {
				return m, nil
			}
			m.widgets[fieldKey] = w
		}
		if v, ok := m.values[fieldKey]; ok {
			w.SetValue(v)
		}
		w.Activate()
		m.editMode = true
		m.activeField = fieldKey
		return m, nil
	}
}

// resolveOptionsCmd runs script resolution on a bubbletea command
// goroutine so a slow script does not freeze the interface. The value
// map is snapshotted because commands run off the event loop.
func (m Model) resolveOptionsCmd(field schema.Field, fieldKey string, source schema.OptionSource) tea.Cmd {
	resolver := m.resolver
	values := m.Values()
	return func() tea.Msg {
		opts, err := resolver.Resolve(source, values)
		return optionsResolvedMsg{fieldKey: fieldKey, field: field, options: opts, err: err}
	}
}

// openEnum builds the dropdown for a resolved option list and enters
// edit mode. Resolution failures degrade to an empty list so the user
// can still cancel out and keep navigating.
func (m Model) openEnum(msg optionsResolvedMsg) Model {
	opts := msg.options
	if msg.err != nil {
		logging.Warn("option resolution failed",
			zap.String("field", msg.fieldKey),
			zap.Error(msg.err),
		)
		m.setStatus("Failed to load options: "+msg.err.Error(), true)
		opts = nil
	}

	initial := ""
	if v, ok := m.values[msg.fieldKey].(string); ok {
		initial = v
	} else if def, ok := msg.field.Type.DefaultValue(); ok {
		initial, _ = def.(string)
	}

	var w widgets.Widget
	if msg.field.Widget == schema.WidgetDropdownSearchable {
		w = widgets.NewSearchableDropdown(msg.field.Label, opts, initial)
	} else {
		w = widgets.NewDropdown(msg.field.Label, opts, initial)
	}
	w.Activate()

	m.widgets[msg.fieldKey] = w
	m.editMode = true
	m.activeField = msg.fieldKey
	return m
}

// buildWidget constructs the widget for a non-enum field, seeded from
// the value map or the schema default.
func (m Model) buildWidget(field schema.Field, fieldKey string) widgets.Widget {
	switch t := field.Type.(type) {
	case schema.StringType:
		initial := m.stringValue(fieldKey)
		if initial == "" && t.Default != nil {
			initial = *t.Default
		}
		return widgets.NewTextInput(field.Label, initial, t.MaxLength)

	case schema.PathType:
		initial := m.stringValue(fieldKey)
		if initial == "" && t.Default != nil {
			initial = *t.Default
		}
		return widgets.NewTextInput(field.Label, initial, 0)

	case schema.NumberType:
		initial := int64(0)
		if v, ok := m.intValue(fieldKey); ok {
			initial = v
		} else if t.Default != nil {
			initial = *t.Default
		}
		return widgets.NewNumberInput(field.Label, initial, t.Min, t.Max)

	case schema.FloatType:
		initial := 0.0
		if v, ok := m.floatValue(fieldKey); ok {
			initial = v
		} else if t.Default != nil {
			initial = *t.Default
		}
		return widgets.NewFloatInput(field.Label, initial, t.Min, t.Max, t.Step)
	}
	return nil
}

func (m Model) stringValue(fieldKey string) string {
	s, _ := m.values[fieldKey].(string)
	return s
}

func (m Model) intValue(fieldKey string) (int64, bool) {
	switch v := m.values[fieldKey].(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	}
	return 0, false
}

func (m Model) floatValue(fieldKey string) (float64, bool) {
	switch v := m.values[fieldKey].(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// launchEditor hands the terminal to $EDITOR for the focused path
// field. The edited content comes back as an editorFinishedMsg.
func (m Model) launchEditor() (tea.Model, tea.Cmd) {
	field, ok := m.currentFieldDef()
	if !ok {
		return m, nil
	}
	if _, isPath := field.Type.(schema.PathType); !isPath {
		return m, nil
	}

	fieldKey := m.currentKey()
	current := m.stringValue(fieldKey)

	cmd, path, err := editorCommand(current, editorExtension(field))
	if err != nil {
		m.setStatus(err.Error(), true)
		return m, nil
	}
	return m, tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{fieldKey: fieldKey, path: path, original: current, err: err}
	})
}

func (m Model) finishEditor(msg editorFinishedMsg) Model {
	defer os.Remove(msg.path)

	if msg.err != nil {
		m.setStatus("External editor failed: "+msg.err.Error(), true)
		return m
	}
	content, err := os.ReadFile(msg.path)
	if err != nil {
		m.setStatus("Failed to read edited file: "+err.Error(), true)
		return m
	}

	next := strings.TrimSpace(string(content))
	if next == msg.original {
		m.setStatus("External editor cancelled or no changes", false)
		return m
	}
	m = m.commitConfirmed(msg.fieldKey, next)
	m.setStatus("Updated "+msg.fieldKey+" from external editor", false)
	return m
}

// runAction executes the focused field's registered custom command
// with the current value exported and commits the output on change.
func (m Model) runAction(command string) (tea.Model, tea.Cmd) {
	fieldKey := m.currentKey()
	current := options.FormatValue(m.values[fieldKey])

	next, changed := runCustomCommand(m.runner, command, current)
	if !changed {
		m.setStatus("Action made no changes", false)
		return m, nil
	}
	m = m.commitConfirmed(fieldKey, next)
	m.setStatus("Updated "+fieldKey, false)
	return m, nil
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.status = msg
	m.isErr = isErr
	m.statusSeq++
}

// withStatusExpiry schedules the transient-status tick when the
// processed message changed the status line.
func (m Model) withStatusExpiry(prevSeq int, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if m.statusSeq == prevSeq || m.status == "" {
		return m, cmd
	}
	return m, tea.Batch(cmd, expireStatus(m.statusSeq))
}
