package exec

import (
	"context"
	"os/exec"
	"strings"
)

// Runner implements CommandRunner using os/exec.
type Runner struct{}

// NewRunner creates a new Runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Output executes a command and returns its trimmed stdout. Stderr is
// captured into the returned error by os/exec when the command fails.
func (r *Runner) Output(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	return strings.TrimSpace(string(out)), err
}

// Run executes a command, discarding its output.
func (r *Runner) Run(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

// LookPath reports whether a binary is available on PATH.
func (r *Runner) LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// Verify Runner implements CommandRunner at compile time.
var _ CommandRunner = (*Runner)(nil)
