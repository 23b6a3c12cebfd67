// Package tmux adapts the tmux server as tmuxhop's attribute store,
// content capture, and navigation backend. Everything goes through a
// CommandRunner so tests never need a live server.
package tmux

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ShayCichocki/tmuxhop/internal/exec"
	"github.com/ShayCichocki/tmuxhop/internal/logging"
)

// ErrNotInTmux is returned when a command requires a tmux client context.
var ErrNotInTmux = errors.New("not running inside tmux")

// Client talks to the tmux server through a CommandRunner.
type Client struct {
	runner exec.CommandRunner
	log    *logging.Logger
}

// NewClient creates a Client. A nil logger disables logging.
func NewClient(runner exec.CommandRunner, log *logging.Logger) *Client {
	if log == nil {
		log = logging.Nop()
	}
	return &Client{runner: runner, log: log}
}

// InTmux reports whether the current process runs inside a tmux client.
func (c *Client) InTmux() bool {
	return os.Getenv("TMUX") != ""
}

// CurrentPaneID returns the active pane ID via display-message. This works
// from keybindings too, where the TMUX_PANE env var is not set.
func (c *Client) CurrentPaneID(ctx context.Context) (string, error) {
	out, err := c.output(ctx, "display-message", "-p", "#{pane_id}")
	if err != nil {
		return "", err
	}
	if out == "" {
		return "", fmt.Errorf("tmux returned empty pane id")
	}
	return out, nil
}

// CurrentSessionWindow returns the active session name and window index.
func (c *Client) CurrentSessionWindow(ctx context.Context) (string, int, error) {
	out, err := c.output(ctx, "display-message", "-p", "#{session_name}\t#{window_index}")
	if err != nil {
		return "", 0, err
	}
	parts := strings.SplitN(out, "\t", 2)
	session := parts[0]
	window := 0
	if len(parts) > 1 {
		if w, err := strconv.Atoi(parts[1]); err == nil {
			window = w
		}
	}
	return session, window, nil
}

// DisplayMessage shows a transient message in the tmux status line.
func (c *Client) DisplayMessage(ctx context.Context, msg string) {
	// Best effort; a failed status message is not worth surfacing.
	_ = c.runner.Run(ctx, "tmux", "display-message", msg)
}

// output runs a tmux query and returns trimmed stdout.
func (c *Client) output(ctx context.Context, args ...string) (string, error) {
	out, err := c.runner.Output(ctx, "tmux", args...)
	if err != nil {
		c.log.Errorf("tmux %s failed: %v", firstArgs(args), err)
		return "", fmt.Errorf("tmux %s: %w", firstArgs(args), err)
	}
	return out, nil
}

// run executes a mutating tmux command.
func (c *Client) run(ctx context.Context, args ...string) error {
	if err := c.runner.Run(ctx, "tmux", args...); err != nil {
		c.log.Errorf("tmux %s failed: %v", firstArgs(args), err)
		return fmt.Errorf("tmux %s: %w", firstArgs(args), err)
	}
	c.log.Debugf("tmux %s", firstArgs(args))
	return nil
}

// firstArgs abbreviates an argument list for log lines.
func firstArgs(args []string) string {
	if len(args) > 3 {
		return strings.Join(args[:3], " ") + "..."
	}
	return strings.Join(args, " ")
}
