package docx2tex

import (
	"bytes"
	"context"
	"os/exec"
)

// CommandRunner abstracts command execution so the external tools (pandoc,
// ruby) can be swapped or mocked in tests without touching pipeline logic.
type CommandRunner interface {
	// Run executes name with args in dir (empty = inherit) and returns
	// captured stdout and stderr. A non-nil error means the command could
	// not start or exited non-zero.
	Run(ctx context.Context, dir, name string, args ...string) (stdout, stderr string, err error)

	// LookPath reports whether an executable can be found for name.
	LookPath(name string) error
}

// ExecRunner implements CommandRunner using os/exec.
type ExecRunner struct{}

func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func (r *ExecRunner) LookPath(name string) error {
	_, err := exec.LookPath(name)
	return err
}
