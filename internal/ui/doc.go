// Package ui holds the shared color theme for the formwork editor.
//
// A Theme is a fixed set of lipgloss style roles that both the app
// chrome (header, tabs, footer) and the field widgets render with.
// Three presets exist: Terminal (ANSI colors, respects the user's
// terminal scheme), Dark and Light. Terminal is the default.
package ui
