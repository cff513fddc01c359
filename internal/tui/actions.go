package tui

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/calwray/formwork/internal/options"
	"github.com/calwray/formwork/internal/schema"
)

// Actions transform the raw string value of the focused field outside
// the widget system. The external editor hands the terminal to a child
// process through tea.ExecProcess; custom commands run inline via the
// resolver's CommandRunner with the value exported as CURRENT_VALUE.

const defaultEditor = "nano"

// editorCommand writes value to a temp file and returns the editor
// invocation for it along with the file path.
func editorCommand(value, extension string) (*exec.Cmd, string, error) {
	path := filepath.Join(os.TempDir(), "formwork-edit."+extension)
	if err := os.WriteFile(path, []byte(value), 0o600); err != nil {
		return nil, "", fmt.Errorf("failed to stage editor file: %w", err)
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = defaultEditor
	}
	return exec.Command(editor, path), path, nil
}

// editorExtension picks the temp-file extension from the field's path
// filter so the editor can apply sensible syntax highlighting.
func editorExtension(f schema.Field) string {
	pt, ok := f.Type.(schema.PathType)
	if !ok {
		return "txt"
	}
	switch pt.FileType {
	case schema.FileTypeJSON:
		return "json"
	case schema.FileTypeImage:
		return "png"
	default:
		return "txt"
	}
}

// runCustomCommand executes a registered shell command for a field and
// returns the replacement value. ok is false when the command failed,
// produced nothing, or left the value unchanged.
func runCustomCommand(runner options.CommandRunner, command, current string) (string, bool) {
	stdout, _, err := runner.Run(command, []string{"CURRENT_VALUE=" + current})
	if err != nil {
		return "", false
	}
	next := strings.TrimSpace(string(stdout))
	if next == "" || next == current {
		return "", false
	}
	return next, true
}
