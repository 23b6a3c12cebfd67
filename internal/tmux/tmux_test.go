package tmux

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/ShayCichocki/tmuxhop/internal/config"
	"github.com/ShayCichocki/tmuxhop/pkg/models"
)

// fakeRunner records commands and serves canned outputs keyed by the
// joined argument list.
type fakeRunner struct {
	outputs map[string]string
	errs    map[string]error
	calls   []string
}

func (f *fakeRunner) key(name string, args []string) string {
	return name + " " + strings.Join(args, " ")
}

func (f *fakeRunner) Output(_ context.Context, name string, args ...string) (string, error) {
	k := f.key(name, args)
	f.calls = append(f.calls, k)
	if err, ok := f.errs[k]; ok {
		return "", err
	}
	return f.outputs[k], nil
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) error {
	k := f.key(name, args)
	f.calls = append(f.calls, k)
	if err, ok := f.errs[k]; ok {
		return err
	}
	return nil
}

func (f *fakeRunner) LookPath(string) bool { return true }

func (f *fakeRunner) called(substr string) bool {
	for _, c := range f.calls {
		if strings.Contains(c, substr) {
			return true
		}
	}
	return false
}

func TestListPanes(t *testing.T) {
	out := strings.Join([]string{
		"%1\t1\twaiting\t100\t/home/u/proj\tmain\t2",
		"%2\t\twaiting\t100\t/home/u/other\tmain\t3", // unmarked, skipped
		"%3\t1\t\t100\t/home/u/x\tmain\t4",           // no state, skipped
		"%4\t1\tidle\tnot-a-number\t/home/u/y\tdev\tbad", // malformed fields survive
	}, "\n")
	runner := &fakeRunner{outputs: map[string]string{
		"tmux list-panes -a -F " + hopFormat: out,
	}}
	c := NewClient(runner, nil)

	panes, err := c.ListPanes(context.Background())
	if err != nil {
		t.Fatalf("ListPanes: %v", err)
	}
	if len(panes) != 2 {
		t.Fatalf("got %d panes, want 2", len(panes))
	}
	if panes[0].ID != "%1" || panes[0].State != models.StateWaiting || panes[0].Window != 2 {
		t.Errorf("pane[0] = %+v", panes[0])
	}
	if panes[1].Timestamp != 0 || panes[1].Window != 0 {
		t.Errorf("malformed fields should parse to zero, got %+v", panes[1])
	}
}

func TestListPanes_Error(t *testing.T) {
	runner := &fakeRunner{errs: map[string]error{
		"tmux list-panes -a -F " + hopFormat: fmt.Errorf("no server"),
	}}
	c := NewClient(runner, nil)
	if _, err := c.ListPanes(context.Background()); err == nil {
		t.Error("expected error when tmux is unreachable")
	}
}

func TestSetPaneState(t *testing.T) {
	runner := &fakeRunner{}
	c := NewClient(runner, nil)

	if err := c.SetPaneState(context.Background(), "%5", models.StateWaiting, 1234); err != nil {
		t.Fatalf("SetPaneState: %v", err)
	}
	if !runner.called("set-option -p -t %5 @hop-state waiting") {
		t.Errorf("state write missing, calls: %v", runner.calls)
	}
	if !runner.called("set-option -p -t %5 @hop-timestamp 1234") {
		t.Errorf("timestamp write missing, calls: %v", runner.calls)
	}
}

func TestSetPaneState_SelfTarget(t *testing.T) {
	runner := &fakeRunner{}
	c := NewClient(runner, nil)

	if err := c.SetPaneState(context.Background(), "", models.StateIdle, 9); err != nil {
		t.Fatalf("SetPaneState: %v", err)
	}
	// No -t flag when targeting the calling pane.
	if !runner.called("set-option -p @hop-state idle") {
		t.Errorf("self-target write missing, calls: %v", runner.calls)
	}
}

func TestClearPaneState(t *testing.T) {
	runner := &fakeRunner{}
	c := NewClient(runner, nil)

	if err := c.ClearPaneState(context.Background(), "%2"); err != nil {
		t.Fatalf("ClearPaneState: %v", err)
	}
	for _, key := range []string{config.OptionState, config.OptionTimestamp, config.OptionClaudeMarker} {
		if !runner.called("-u " + key) {
			t.Errorf("unset of %s missing, calls: %v", key, runner.calls)
		}
	}
}

func TestGlobalOption_Fallback(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		"tmux show-option -gqv @hop-auto": "",
	}}
	c := NewClient(runner, nil)

	if got := c.GlobalOption(context.Background(), "@hop-auto", "off"); got != "off" {
		t.Errorf("GlobalOption = %q, want fallback %q", got, "off")
	}
}

func TestCapturePane_TrimsToLastLines(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		"tmux capture-pane -p -t %1": "a\nb\nc\nd\ne",
	}}
	c := NewClient(runner, nil)

	got, err := c.CapturePane(context.Background(), "%1", 2)
	if err != nil {
		t.Fatalf("CapturePane: %v", err)
	}
	if got != "d\ne" {
		t.Errorf("CapturePane = %q, want %q", got, "d\ne")
	}
}

func TestSwitchToPane_RecordsBackPointer(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		"tmux display-message -p #{pane_id}": "%0",
	}}
	c := NewClient(runner, nil)

	if err := c.SwitchToPane(context.Background(), "%7", "work", 3); err != nil {
		t.Fatalf("SwitchToPane: %v", err)
	}
	if !runner.called("set-option -g @hop-previous-pane %0") {
		t.Errorf("back pointer not recorded, calls: %v", runner.calls)
	}
	if !runner.called("switch-client -t work") || !runner.called("select-window -t work:3") || !runner.called("select-pane -t %7") {
		t.Errorf("switch sequence incomplete, calls: %v", runner.calls)
	}
}

func TestSwitchToPane_LooksUpLocation(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		"tmux list-panes -a -F " + locationFormat: "%7\t/dev/ttys001\t/home/u/p\tdev\t5",
		"tmux display-message -p #{pane_id}":      "%0",
	}}
	c := NewClient(runner, nil)

	if err := c.SwitchToPane(context.Background(), "%7", "", -1); err != nil {
		t.Fatalf("SwitchToPane: %v", err)
	}
	if !runner.called("select-window -t dev:5") {
		t.Errorf("looked-up window not used, calls: %v", runner.calls)
	}
}

func TestSwitchToPane_NotFound(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		"tmux list-panes -a -F " + locationFormat: "",
	}}
	c := NewClient(runner, nil)

	if err := c.SwitchToPane(context.Background(), "%9", "", -1); err == nil {
		t.Error("expected error for unknown pane")
	}
}

func TestParseStateSet(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []models.State
	}{
		{"empty", "", nil},
		{"single", "waiting", []models.State{models.StateWaiting}},
		{"spaced pair", "waiting, idle", []models.State{models.StateWaiting, models.StateIdle}},
		{"trailing comma", "waiting,", []models.State{models.StateWaiting}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseStateSet(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d states, want %d", len(got), len(tt.want))
			}
			for _, s := range tt.want {
				if !got[s] {
					t.Errorf("missing state %q", s)
				}
			}
		})
	}
}
