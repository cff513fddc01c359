package options

import (
	"fmt"
)

// UnknownProviderError reports a Function/Provider source naming a
// provider that was never registered.
type UnknownProviderError struct {
	Name string
}

func (e *UnknownProviderError) Error() string {
	return fmt.Sprintf("unknown option provider: %s", e.Name)
}

// ScriptError reports a script source whose command exited non-zero.
type ScriptError struct {
	Command string
	Stderr  string
	Err     error
}

func (e *ScriptError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("script failed: %s", e.Stderr)
	}
	return fmt.Sprintf("script failed: %v", e.Err)
}

func (e *ScriptError) Unwrap() error { return e.Err }

// GlobError reports a malformed file_list pattern.
type GlobError struct {
	Pattern string
	Err     error
}

func (e *GlobError) Error() string {
	return fmt.Sprintf("bad glob pattern %q: %v", e.Pattern, e.Err)
}

func (e *GlobError) Unwrap() error { return e.Err }
