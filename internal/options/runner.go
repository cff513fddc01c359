package options

import (
	"bytes"
	"os"
	"os/exec"
)

// CommandRunner executes a shell command and captures its output. It is
// the single seam through which the resolver and field actions touch
// external processes; tests substitute a fake.
type CommandRunner interface {
	// Run executes command through a system shell. extraEnv entries
	// ("KEY=value") are appended to the inherited environment. A
	// non-zero exit status is reported through err with stderr still
	// populated.
	Run(command string, extraEnv []string) (stdout, stderr []byte, err error)
}

// ShellRunner runs commands through `sh -c`.
type ShellRunner struct{}

// Run implements CommandRunner.
func (ShellRunner) Run(command string, extraEnv []string) ([]byte, []byte, error) {
	cmd := exec.Command("sh", "-c", command)
	if len(extraEnv) > 0 {
		cmd.Env = append(os.Environ(), extraEnv...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}
