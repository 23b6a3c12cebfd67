// Package procscan finds panes with a live interactive claude process by
// inspecting the process table, tty by tty. It is the ground truth the
// reconciler checks declared states against.
package procscan

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/ShayCichocki/tmuxhop/internal/exec"
	"github.com/ShayCichocki/tmuxhop/internal/logging"
	"github.com/ShayCichocki/tmuxhop/internal/tmux"
)

// Registry answers which panes have a live managed process right now.
type Registry interface {
	// RunningPaneIDs returns the set of pane IDs with an interactive
	// claude process attached.
	RunningPaneIDs(ctx context.Context) (map[string]bool, error)
}

// PaneLister provides the tty mapping for every pane.
type PaneLister interface {
	ListAllPanes(ctx context.Context) ([]tmux.PaneLocation, error)
}

// PSRegistry implements Registry with one ps call per pane tty.
type PSRegistry struct {
	runner exec.CommandRunner
	lister PaneLister
	log    *logging.Logger
}

// NewPSRegistry creates a process-table registry.
func NewPSRegistry(runner exec.CommandRunner, lister PaneLister, log *logging.Logger) *PSRegistry {
	if log == nil {
		log = logging.Nop()
	}
	return &PSRegistry{runner: runner, lister: lister, log: log}
}

var _ Registry = (*PSRegistry)(nil)

// RunningPaneIDs scans every pane's tty for an interactive claude process.
func (r *PSRegistry) RunningPaneIDs(ctx context.Context) (map[string]bool, error) {
	locs, err := r.lister.ListAllPanes(ctx)
	if err != nil {
		return nil, err
	}

	running := make(map[string]bool)
	for _, loc := range locs {
		if r.ttyHasClaude(ctx, loc.TTY) {
			running[loc.ID] = true
		}
	}
	r.log.Debugf("process scan: %d of %d panes running claude", len(running), len(locs))
	return running, nil
}

// ClaudePanes returns the location of every pane running an interactive
// claude process, managed or not. Used by discovery.
func (r *PSRegistry) ClaudePanes(ctx context.Context) ([]tmux.PaneLocation, error) {
	locs, err := r.lister.ListAllPanes(ctx)
	if err != nil {
		return nil, err
	}

	var found []tmux.PaneLocation
	for _, loc := range locs {
		if r.ttyHasClaude(ctx, loc.TTY) {
			found = append(found, loc)
		}
	}
	return found, nil
}

func (r *PSRegistry) ttyHasClaude(ctx context.Context, tty string) bool {
	tty = strings.TrimPrefix(tty, "/dev/")
	if tty == "" {
		return false
	}
	// A failing ps means no processes on that tty, not a scan failure.
	out, err := r.runner.Output(ctx, "ps", "-t", tty, "-o", "args=")
	if err != nil {
		return false
	}
	for _, line := range strings.Split(out, "\n") {
		if isInteractiveClaude(line) {
			return true
		}
	}
	return false
}

// isInteractiveClaude reports whether a ps args line is an interactive
// claude session. One-shot invocations with -p/--print do not count.
func isInteractiveClaude(args string) bool {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return false
	}
	if !strings.EqualFold(filepath.Base(fields[0]), "claude") {
		return false
	}
	for _, f := range fields[1:] {
		if f == "-p" || f == "--print" {
			return false
		}
	}
	return true
}
