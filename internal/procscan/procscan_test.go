package procscan

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/ShayCichocki/tmuxhop/internal/tmux"
)

type fakeRunner struct {
	outputs map[string]string
	errs    map[string]error
}

func (f *fakeRunner) Output(_ context.Context, name string, args ...string) (string, error) {
	k := name + " " + strings.Join(args, " ")
	if err, ok := f.errs[k]; ok {
		return "", err
	}
	return f.outputs[k], nil
}

func (f *fakeRunner) Run(context.Context, string, ...string) error { return nil }
func (f *fakeRunner) LookPath(string) bool                         { return true }

type fakeLister struct {
	locs []tmux.PaneLocation
	err  error
}

func (f *fakeLister) ListAllPanes(context.Context) ([]tmux.PaneLocation, error) {
	return f.locs, f.err
}

func TestIsInteractiveClaude(t *testing.T) {
	tests := []struct {
		name string
		args string
		want bool
	}{
		{"bare claude", "claude", true},
		{"full path", "/usr/local/bin/claude", true},
		{"with flags", "claude --resume abc", true},
		{"uppercase name", "/Applications/Claude --resume", true},
		{"print mode", "claude -p hello", false},
		{"long print flag", "claude --print hello", false},
		{"other program", "vim notes.md", false},
		{"claude suffix in name", "not-claude", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isInteractiveClaude(tt.args); got != tt.want {
				t.Errorf("isInteractiveClaude(%q) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

func TestRunningPaneIDs(t *testing.T) {
	lister := &fakeLister{locs: []tmux.PaneLocation{
		{ID: "%1", TTY: "/dev/ttys001"},
		{ID: "%2", TTY: "/dev/ttys002"},
		{ID: "%3", TTY: "/dev/ttys003"},
	}}
	runner := &fakeRunner{
		outputs: map[string]string{
			"ps -t ttys001 -o args=": "-zsh\nclaude --resume",
			"ps -t ttys002 -o args=": "-zsh\nvim main.go",
		},
		errs: map[string]error{
			"ps -t ttys003 -o args=": fmt.Errorf("no such tty"),
		},
	}
	reg := NewPSRegistry(runner, lister, nil)

	running, err := reg.RunningPaneIDs(context.Background())
	if err != nil {
		t.Fatalf("RunningPaneIDs: %v", err)
	}
	if !running["%1"] {
		t.Error("%1 should be running")
	}
	if running["%2"] || running["%3"] {
		t.Errorf("only %%1 should be running, got %v", running)
	}
}

func TestRunningPaneIDs_ListError(t *testing.T) {
	reg := NewPSRegistry(&fakeRunner{}, &fakeLister{err: fmt.Errorf("no server")}, nil)
	if _, err := reg.RunningPaneIDs(context.Background()); err == nil {
		t.Error("expected error when pane listing fails")
	}
}

func TestClaudePanes(t *testing.T) {
	lister := &fakeLister{locs: []tmux.PaneLocation{
		{ID: "%1", TTY: "/dev/pts/1", CWD: "/home/u/proj", Session: "main", Window: 2},
		{ID: "%2", TTY: "/dev/pts/2"},
	}}
	runner := &fakeRunner{outputs: map[string]string{
		"ps -t pts/1 -o args=": "claude",
		"ps -t pts/2 -o args=": "bash",
	}}
	reg := NewPSRegistry(runner, lister, nil)

	panes, err := reg.ClaudePanes(context.Background())
	if err != nil {
		t.Fatalf("ClaudePanes: %v", err)
	}
	if len(panes) != 1 || panes[0].ID != "%1" || panes[0].Session != "main" {
		t.Errorf("ClaudePanes = %+v", panes)
	}
}
