package options

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calwray/formwork/internal/schema"
)

// fakeRunner records executions and plays back canned output.
type fakeRunner struct {
	calls    int
	commands []string
	stdout   string
	stderr   string
	err      error
}

func (f *fakeRunner) Run(command string, extraEnv []string) ([]byte, []byte, error) {
	f.calls++
	f.commands = append(f.commands, command)
	return []byte(f.stdout), []byte(f.stderr), f.err
}

func TestSubstitute(t *testing.T) {
	values := map[string]any{
		"daemon.language": "en",
		"daemon.count":    int64(42),
		"daemon.ratio":    0.5,
		"daemon.enabled":  true,
	}

	tests := []struct {
		template string
		want     string
	}{
		{"script.sh ${daemon.language} ${daemon.count}", "script.sh en 42"},
		{"check ${daemon.enabled}", "check true"},
		{"ratio=${daemon.ratio}", "ratio=0.5"},
		{"twice ${daemon.language} and ${daemon.language}", "twice en and en"},
		{"script.sh ${missing.var}", "script.sh "},
		{"script.sh static args", "script.sh static args"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Substitute(tt.template, values), "template %q", tt.template)
	}
}

func TestSubstituteNoRecursiveExpansion(t *testing.T) {
	values := map[string]any{
		"outer": "${inner}",
		"inner": "should not appear",
	}
	assert.Equal(t, "${inner}", Substitute("${outer}", values))
}

func TestResolveStatic(t *testing.T) {
	r := NewResolverWithRunner(&fakeRunner{})

	source := schema.StaticSource{Values: []string{"Light", "Dark", "Auto"}}
	opts, err := r.Resolve(source, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Light", "Dark", "Auto"}, opts)

	// The schema list must not alias the returned slice.
	opts[0] = "mutated"
	assert.Equal(t, "Light", source.Values[0])
}

func TestResolveProvider(t *testing.T) {
	r := NewResolverWithRunner(&fakeRunner{})
	r.RegisterProvider("monitors", ProviderFunc(func() ([]string, error) {
		return []string{"eDP-1", "HDMI-1"}, nil
	}))
	r.RegisterProvider("broken", ProviderFunc(func() ([]string, error) {
		return nil, fmt.Errorf("backend offline")
	}))

	opts, err := r.Resolve(schema.FunctionSource{Name: "monitors"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"eDP-1", "HDMI-1"}, opts)

	opts, err = r.Resolve(schema.ProviderSource{Name: "monitors"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"eDP-1", "HDMI-1"}, opts)

	// Provider failures propagate verbatim.
	_, err = r.Resolve(schema.FunctionSource{Name: "broken"}, nil)
	assert.EqualError(t, err, "backend offline")

	_, err = r.Resolve(schema.FunctionSource{Name: "nope"}, nil)
	var unknown *UnknownProviderError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "nope", unknown.Name)
}

func TestResolveScriptJSONOutput(t *testing.T) {
	runner := &fakeRunner{stdout: `["a","b"]`}
	r := NewResolverWithRunner(runner)

	opts, err := r.Resolve(schema.ScriptSource{Command: `echo '["a","b"]'`}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, opts)
}

func TestResolveScriptNewlineFallback(t *testing.T) {
	runner := &fakeRunner{stdout: "  one  \n\ntwo\nthree \n"}
	r := NewResolverWithRunner(runner)

	opts, err := r.Resolve(schema.ScriptSource{Command: "list-things"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, opts)
}

func TestResolveScriptSubstitutesValues(t *testing.T) {
	runner := &fakeRunner{stdout: "x\n"}
	r := NewResolverWithRunner(runner)

	values := map[string]any{"general.lang": "en"}
	_, err := r.Resolve(schema.ScriptSource{Command: "lookup ${general.lang}"}, values)
	require.NoError(t, err)
	require.Len(t, runner.commands, 1)
	assert.Equal(t, "lookup en", runner.commands[0])
}

func TestResolveScriptFailure(t *testing.T) {
	runner := &fakeRunner{stderr: "command not found\n", err: errors.New("exit status 127")}
	r := NewResolverWithRunner(runner)

	_, err := r.Resolve(schema.ScriptSource{Command: "nonsense"}, nil)
	var scriptErr *ScriptError
	require.ErrorAs(t, err, &scriptErr)
	assert.Equal(t, "command not found", scriptErr.Stderr)
}

func TestResolveScriptCacheHit(t *testing.T) {
	runner := &fakeRunner{stdout: `["a","b"]`}
	r := NewResolverWithRunner(runner)

	source := schema.ScriptSource{Command: "slow-lookup", CacheTTL: 60 * time.Second}

	first, err := r.Resolve(source, nil)
	require.NoError(t, err)

	// Output changing underneath must not matter within the TTL.
	runner.stdout = `["changed"]`
	second, err := r.Resolve(source, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, runner.calls, "second resolution must not re-execute")
}

func TestResolveScriptCacheExpiry(t *testing.T) {
	runner := &fakeRunner{stdout: "a\n"}
	r := NewResolverWithRunner(runner)

	current := time.Now()
	r.cache.now = func() time.Time { return current }

	source := schema.ScriptSource{Command: "lookup", CacheTTL: 60 * time.Second}

	_, err := r.Resolve(source, nil)
	require.NoError(t, err)
	_, err = r.Resolve(source, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, runner.calls)

	current = current.Add(61 * time.Second)
	_, err = r.Resolve(source, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, runner.calls, "expired entry must re-execute")
}

func TestResolveScriptCacheKeyedByBinding(t *testing.T) {
	runner := &fakeRunner{stdout: "a\n"}
	r := NewResolverWithRunner(runner)

	source := schema.ScriptSource{Command: "lookup ${general.lang}", CacheTTL: time.Minute}

	_, err := r.Resolve(source, map[string]any{"general.lang": "en"})
	require.NoError(t, err)
	_, err = r.Resolve(source, map[string]any{"general.lang": "de"})
	require.NoError(t, err)

	assert.Equal(t, 2, runner.calls, "different bindings must not share cache entries")
}

func TestResolveScriptNoTTLAlwaysExecutes(t *testing.T) {
	runner := &fakeRunner{stdout: "a\n"}
	r := NewResolverWithRunner(runner)

	source := schema.ScriptSource{Command: "lookup"}
	for i := 0; i < 3; i++ {
		_, err := r.Resolve(source, nil)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, runner.calls)
}

func TestResolveFileListBaseNames(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"alpha.conf", "beta.conf", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	r := NewResolverWithRunner(&fakeRunner{})
	opts, err := r.Resolve(schema.FileListSource{Directory: dir, Pattern: "*.conf"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha.conf", "beta.conf"}, opts)
}

func TestResolveFileListExtract(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"alpha.conf", "beta.conf", "README"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	r := NewResolverWithRunner(&fakeRunner{})
	source := schema.FileListSource{
		Directory: dir,
		Pattern:   "*",
		Extract:   `([^/]+)\.conf$`,
	}
	opts, err := r.Resolve(source, nil)
	require.NoError(t, err)
	// README does not match the extraction pattern and is skipped.
	assert.Equal(t, []string{"alpha", "beta"}, opts)
}

func TestResolveFileListBadPattern(t *testing.T) {
	r := NewResolverWithRunner(&fakeRunner{})

	_, err := r.Resolve(schema.FileListSource{Directory: t.TempDir(), Pattern: "["}, nil)
	var globErr *GlobError
	assert.ErrorAs(t, err, &globErr)

	_, err = r.Resolve(schema.FileListSource{Directory: t.TempDir(), Pattern: "*", Extract: "("}, nil)
	assert.ErrorAs(t, err, &globErr)
}
