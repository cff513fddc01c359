package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/calwray/formwork/internal/config"
	"github.com/calwray/formwork/internal/options"
	"github.com/calwray/formwork/internal/schema"
	"github.com/calwray/formwork/internal/tui"
	"github.com/calwray/formwork/internal/ui"
)

var (
	schemaPath string
	configPath string
	themeName  string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&schemaPath, "schema", "", "Schema document (JSON or YAML)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file to edit (defaults to the standard location)")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "terminal", "Color theme (terminal, dark, light)")

	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(validateCmd)
}

// editCmd launches the interactive editor.
var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit a config file interactively",
	Long: `Open the full-screen editor for a config file.

The schema document drives the layout: sections become tabs, fields
become rows, and enum fields resolve their options from static lists,
scripts, or file globs. Every confirmed change writes straight back to
the config file.`,
	Example: `  # Edit with an explicit schema and config
  formwork edit --schema app-schema.json --config ~/.config/app/config.toml

  # Use the default config location
  formwork edit --schema app-schema.yaml

  # Force the dark palette
  formwork edit --schema app-schema.json --theme dark`,
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	if schemaPath == "" {
		return fmt.Errorf("--schema is required")
	}

	path := configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return fmt.Errorf("resolve default config path: %w", err)
		}
	}

	b := tui.NewBuilder().
		SchemaFile(schemaPath).
		Theme(ui.ByName(themeName))

	// A missing config is not an error: the editor starts from schema
	// defaults and creates the file on the first confirmed edit.
	if _, err := os.Stat(path); err == nil {
		b.ConfigFile(path)
	} else {
		b.ConfigPath(path)
	}

	return b.Run()
}

// showCmd prints the current config values without entering the editor.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved config values",
	Long: `Print every schema field with its current value.

Values come from the config file where present and fall back to schema
defaults. Descriptions are wrapped to the terminal width.`,
	Example: `  formwork show --schema app-schema.json --config config.toml`,
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	if schemaPath == "" {
		return fmt.Errorf("--schema is required")
	}
	s, err := schema.FromFile(schemaPath)
	if err != nil {
		return err
	}

	values := map[string]any{}
	if configPath != "" {
		store, err := config.LoadFile(configPath)
		if err != nil {
			return err
		}
		values = store.FlatMap()
	}

	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 20 {
		width = w
	}
	if width > 100 {
		width = 100
	}

	for _, section := range s.Sections {
		fmt.Printf("[%s] %s\n", section.ID, section.Title)
		for _, field := range section.Fields {
			key := schema.QualifiedKey(section.ID, field.ID)
			value, ok := values[key]
			if !ok {
				value, ok = field.Type.DefaultValue()
			}
			display := "(unset)"
			if ok {
				display = options.FormatValue(value)
			}
			line := fmt.Sprintf("  %-24s %s", field.ID, display)
			if len(line) > width {
				line = line[:width]
			}
			fmt.Println(line)
		}
		fmt.Println()
	}
	return nil
}

// validateCmd checks a schema document without opening the editor.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a schema document",
	Long: `Parse a schema document and check it for structural problems:
duplicate section or field identifiers, defaults outside declared
bounds, and enum defaults missing from static option lists.`,
	Example: `  formwork validate --schema app-schema.json`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	if schemaPath == "" {
		return fmt.Errorf("--schema is required")
	}
	s, err := schema.FromFile(schemaPath)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}
	if err := schema.Validate(s); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fieldCount := 0
	for _, section := range s.Sections {
		fieldCount += len(section.Fields)
	}
	fmt.Printf("OK: %s (%d sections, %d fields)\n",
		strings.TrimSpace(s.Title), len(s.Sections), fieldCount)
	return nil
}
