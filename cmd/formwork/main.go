// Formwork is a schema-driven TOML configuration editor for the
// terminal.
//
// A JSON or YAML schema document declares sections, fields, types and
// option sources; formwork renders them as a tabbed full-screen editor
// and writes confirmed changes straight back to the config file.
//
// Usage:
//
//	formwork --schema schema.json [--config config.toml]
//
// Running without a subcommand launches the editor.
// See 'formwork --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/calwray/formwork/internal/logging"
	"github.com/calwray/formwork/internal/version"
)

func main() {
	if err := logging.InitFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "formwork",
	Short: "Schema-driven configuration editor",
	Long: `A full-screen terminal editor for TOML configuration files.

The layout, field types and option lists come from a schema document,
so one binary can edit any config that ships a schema. Confirmed
changes persist immediately; nothing is lost on quit.

If no command is specified, the editor launches directly.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEdit(cmd, args)
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("formwork %s\n", version.Full())
	},
}
