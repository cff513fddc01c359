package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/calwray/formwork/internal/config"
	"github.com/calwray/formwork/internal/options"
	"github.com/calwray/formwork/internal/schema"
	"github.com/calwray/formwork/internal/ui"
)

// Builder assembles an editor Model. Errors from file loading are
// deferred to Build so calls chain fluently.
type Builder struct {
	schema     *schema.Schema
	values     map[string]any
	configPath string
	providers  map[string]options.Provider
	actions    map[string]string
	theme      *ui.Theme
	runner     options.CommandRunner
	err        error
}

func NewBuilder() *Builder {
	return &Builder{
		providers: make(map[string]options.Provider),
		actions:   make(map[string]string),
		theme:     ui.Terminal(),
		runner:    options.ShellRunner{},
	}
}

// Schema sets an already-parsed schema.
func (b *Builder) Schema(s *schema.Schema) *Builder {
	b.schema = s
	return b
}

// SchemaFile loads the schema from a JSON or YAML document.
func (b *Builder) SchemaFile(path string) *Builder {
	s, err := schema.FromFile(path)
	if err != nil {
		b.fail(err)
		return b
	}
	b.schema = s
	return b
}

// ConfigFile seeds the initial values from a TOML config and enables
// persistence back to it. Values load unexpanded so the editor shows
// literal $VAR references.
func (b *Builder) ConfigFile(path string) *Builder {
	store, err := config.LoadFileExpand(path, false)
	if err != nil {
		b.fail(err)
		return b
	}
	b.values = store.FlatMap()
	b.configPath = path
	return b
}

// ConfigPath enables persistence to a path without reading it first.
// Used when the config file does not exist yet.
func (b *Builder) ConfigPath(path string) *Builder {
	b.configPath = path
	return b
}

// InitialValues seeds the value map directly, keyed by qualified field
// keys. It replaces any values loaded from a config file.
func (b *Builder) InitialValues(values map[string]any) *Builder {
	b.values = values
	return b
}

// RegisterProvider makes a named option provider available to enum
// fields using a function or provider source.
func (b *Builder) RegisterProvider(name string, p options.Provider) *Builder {
	b.providers[name] = p
	return b
}

// RegisterAction attaches a custom shell command to a field. The
// command runs with CURRENT_VALUE exported and its trimmed stdout
// replaces the value when it differs.
func (b *Builder) RegisterAction(fieldKey, command string) *Builder {
	b.actions[fieldKey] = command
	return b
}

// Theme overrides the default terminal theme.
func (b *Builder) Theme(th *ui.Theme) *Builder {
	if th != nil {
		b.theme = th
	}
	return b
}

// CommandRunner overrides how scripts and custom actions execute.
func (b *Builder) CommandRunner(r options.CommandRunner) *Builder {
	b.runner = r
	return b
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Build validates the configuration and returns the editor model.
func (b *Builder) Build() (*Model, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.schema == nil {
		return nil, errors.New("schema not provided")
	}

	resolver := options.NewResolverWithRunner(b.runner)
	for name, p := range b.providers {
		resolver.RegisterProvider(name, p)
	}

	m := newModel(b.schema, b.values, resolver, b.runner, b.actions, b.theme, b.configPath)
	return &m, nil
}

// Run builds the model and drives it in the alternate screen until the
// user quits.
func (b *Builder) Run() error {
	m, err := b.Build()
	if err != nil {
		return err
	}
	p := tea.NewProgram(*m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("editor session failed: %w", err)
	}
	return nil
}
