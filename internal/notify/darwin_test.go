package notify

import (
	"context"
	"strings"
	"testing"
)

type recordingRunner struct {
	calls       [][]string
	lookPathHit bool
}

func (r *recordingRunner) Output(_ context.Context, name string, args ...string) (string, error) {
	r.calls = append(r.calls, append([]string{name}, args...))
	return "", nil
}

func (r *recordingRunner) Run(_ context.Context, name string, args ...string) error {
	r.calls = append(r.calls, append([]string{name}, args...))
	return nil
}

func (r *recordingRunner) LookPath(string) bool { return r.lookPathHit }

func TestDarwinNotifier_QuotesEscapedOnce(t *testing.T) {
	runner := &recordingRunner{}
	n := &darwinNotifier{runner: runner}

	n.Send(context.Background(), "Claude Code", `myproj: "waiting"`, nil)

	if len(runner.calls) != 1 {
		t.Fatalf("expected one osascript call, got %v", runner.calls)
	}
	script := runner.calls[0][len(runner.calls[0])-1]
	want := `display notification "myproj: \"waiting\"" with title "Claude Code"`
	if script != want {
		t.Errorf("script = %q, want %q", script, want)
	}
	if strings.Contains(script, `\\\"`) {
		t.Errorf("quotes escaped twice: %q", script)
	}
}

func TestDarwinNotifier_ClickUsesTerminalNotifier(t *testing.T) {
	runner := &recordingRunner{lookPathHit: true}
	n := &darwinNotifier{runner: runner}

	n.Send(context.Background(), "Claude Code", "myproj: waiting",
		&PaneContext{PaneID: "%3", Session: "main", Window: 2})

	if len(runner.calls) != 1 || runner.calls[0][0] != "terminal-notifier" {
		t.Fatalf("expected terminal-notifier call, got %v", runner.calls)
	}
	joined := strings.Join(runner.calls[0], " ")
	if !strings.Contains(joined, "switch-client -t 'main:2'") {
		t.Errorf("click command missing pane target: %q", joined)
	}
}

func TestEscapeAppleScript(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`plain`, `plain`},
		{`say "hi"`, `say \"hi\"`},
		{`back\slash`, `back\\slash`},
	}
	for _, tt := range tests {
		if got := escapeAppleScript(tt.in); got != tt.want {
			t.Errorf("escapeAppleScript(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
