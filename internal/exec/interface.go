// Package exec provides an interface for running external commands.
package exec

import (
	"context"
)

// CommandRunner defines the seam through which all external tools (tmux,
// ps, notify-send, osascript, ...) are invoked. Every adapter takes one so
// tests can substitute a fake.
type CommandRunner interface {
	// Output executes a command and returns its trimmed stdout.
	Output(ctx context.Context, name string, args ...string) (string, error)

	// Run executes a command for its side effect, discarding output.
	Run(ctx context.Context, name string, args ...string) error

	// LookPath reports whether a binary is available on PATH.
	LookPath(name string) bool
}
