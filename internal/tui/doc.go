// Package tui is the interactive schema-driven configuration editor.
//
// The Model is a bubbletea program: sections render as tabs, fields as
// rows, and activating a field opens its widget. The model owns the
// authoritative value map; widgets are transient and reseed from it on
// every activation. Confirmed edits persist straight back to the TOML
// config and fan out to registered change handlers.
//
// Construction goes through the Builder:
//
//	err := tui.NewBuilder().
//	    SchemaFile("schema.json").
//	    ConfigFile(configPath).
//	    RegisterProvider("monitors", listMonitors).
//	    Run()
package tui
