package options

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/calwray/formwork/internal/logging"
	"github.com/calwray/formwork/internal/schema"
)

// Provider supplies option lists for Function/Provider sources. A
// provider must be registered before the session starts; the registry is
// immutable once editing begins.
type Provider interface {
	Options() ([]string, error)
}

// ProviderFunc adapts a plain function to the Provider interface.
type ProviderFunc func() ([]string, error)

// Options implements Provider.
func (f ProviderFunc) Options() ([]string, error) { return f() }

// Resolver resolves OptionSources into option lists. It owns the TTL
// cache and the provider registry.
type Resolver struct {
	cache     *Cache
	providers map[string]Provider
	runner    CommandRunner
}

// NewResolver returns a resolver executing scripts through `sh -c`.
func NewResolver() *Resolver {
	return NewResolverWithRunner(ShellRunner{})
}

// NewResolverWithRunner returns a resolver with a custom process
// capability. Tests use this to avoid spawning real shells.
func NewResolverWithRunner(runner CommandRunner) *Resolver {
	return &Resolver{
		cache:     NewCache(),
		providers: make(map[string]Provider),
		runner:    runner,
	}
}

// RegisterProvider adds a named provider. Later registrations under the
// same name replace earlier ones.
func (r *Resolver) RegisterProvider(name string, p Provider) {
	r.providers[name] = p
}

// Resolve produces the option list for source against the current value
// map. Script execution blocks the caller; callers needing
// responsiveness wrap Resolve in a background command.
func (r *Resolver) Resolve(source schema.OptionSource, values map[string]any) ([]string, error) {
	switch s := source.(type) {
	case schema.StaticSource:
		return append([]string(nil), s.Values...), nil
	case schema.FunctionSource:
		return r.FromProvider(s.Name)
	case schema.ProviderSource:
		return r.FromProvider(s.Name)
	case schema.ScriptSource:
		return r.fromScript(s, values)
	case schema.FileListSource:
		return r.fromFileList(s)
	default:
		return nil, fmt.Errorf("unknown option source %T", source)
	}
}

// FromProvider resolves directly through the provider registry.
func (r *Resolver) FromProvider(name string) ([]string, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, &UnknownProviderError{Name: name}
	}
	return p.Options()
}

func (r *Resolver) fromScript(s schema.ScriptSource, values map[string]any) ([]string, error) {
	substituted := Substitute(s.Command, values)

	// Key on template plus substituted command so the same template
	// under different variable bindings never collides.
	cacheKey := s.Command + "\x00" + substituted

	if s.CacheTTL > 0 {
		if opts, ok := r.cache.Get(cacheKey); ok {
			return opts, nil
		}
	}

	logging.Debug("resolving script options", zap.String("command", substituted))

	stdout, stderr, err := r.runner.Run(substituted, nil)
	if err != nil {
		return nil, &ScriptError{
			Command: substituted,
			Stderr:  strings.TrimSpace(string(stderr)),
			Err:     err,
		}
	}

	opts := parseScriptOutput(stdout)

	if s.CacheTTL > 0 {
		r.cache.Insert(cacheKey, opts, s.CacheTTL)
	}
	return opts, nil
}

// parseScriptOutput reads stdout as a JSON string array, falling back to
// newline-delimited trimmed non-empty lines.
func parseScriptOutput(stdout []byte) []string {
	var opts []string
	if err := json.Unmarshal(stdout, &opts); err == nil {
		return opts
	}

	opts = opts[:0]
	for _, line := range strings.Split(string(stdout), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			opts = append(opts, line)
		}
	}
	return opts
}

func (r *Resolver) fromFileList(s schema.FileListSource) ([]string, error) {
	dir := expandHome(s.Directory)
	pattern := filepath.Join(dir, s.Pattern)

	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, &GlobError{Pattern: pattern, Err: err}
	}

	var extract *regexp.Regexp
	if s.Extract != "" {
		extract, err = regexp.Compile(s.Extract)
		if err != nil {
			return nil, &GlobError{Pattern: s.Extract, Err: err}
		}
	}

	results := make([]string, 0, len(matches))
	for _, match := range matches {
		if extract == nil {
			results = append(results, filepath.Base(match))
			continue
		}
		caps := extract.FindStringSubmatch(match)
		if caps == nil {
			// Paths the extraction pattern rejects are skipped, not
			// surfaced as errors.
			continue
		}
		if len(caps) > 1 && caps[1] != "" {
			results = append(results, caps[1])
		} else {
			results = append(results, filepath.Base(match))
		}
	}
	return results, nil
}

var placeholderPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Substitute replaces every ${key} placeholder in template with the
// stringified value from values. Missing keys substitute to the empty
// string. The template is scanned once, so substituted text is never
// re-expanded.
func Substitute(template string, values map[string]any) string {
	return placeholderPattern.ReplaceAllStringFunc(template, func(m string) string {
		key := m[2 : len(m)-1]
		value, ok := values[key]
		if !ok {
			return ""
		}
		return FormatValue(value)
	})
}

// FormatValue renders a value-map entry as shell-substitutable text:
// booleans as true/false, integers and floats in decimal form.
func FormatValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return home + strings.TrimPrefix(path, "~")
		}
	}
	return path
}
