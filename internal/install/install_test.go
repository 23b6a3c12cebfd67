package install

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

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
	return f.errs[k]
}

func (f *fakeRunner) LookPath(string) bool { return true }

func TestInstallTmuxPluginTPM_AppendsLine(t *testing.T) {
	conf := filepath.Join(t.TempDir(), "tmux.conf")
	if err := os.WriteFile(conf, []byte("set -g mouse on\n"), 0644); err != nil {
		t.Fatalf("write conf: %v", err)
	}

	inst := NewInstaller(&fakeRunner{}, nil)
	result, err := inst.InstallTmuxPluginTPM(conf)
	if err != nil {
		t.Fatalf("InstallTmuxPluginTPM: %v", err)
	}
	if !result.Changed {
		t.Error("expected a change")
	}

	data, err := os.ReadFile(conf)
	if err != nil {
		t.Fatalf("read conf: %v", err)
	}
	if !strings.Contains(string(data), pluginLine) {
		t.Errorf("plugin line missing:\n%s", data)
	}
	if !strings.Contains(string(data), "set -g mouse on") {
		t.Error("existing config clobbered")
	}
}

func TestInstallTmuxPluginTPM_Idempotent(t *testing.T) {
	conf := filepath.Join(t.TempDir(), "tmux.conf")
	if err := os.WriteFile(conf, []byte(pluginLine+"\n"), 0644); err != nil {
		t.Fatalf("write conf: %v", err)
	}

	inst := NewInstaller(&fakeRunner{}, nil)
	result, err := inst.InstallTmuxPluginTPM(conf)
	if err != nil {
		t.Fatalf("InstallTmuxPluginTPM: %v", err)
	}
	if result.Changed {
		t.Error("already-present plugin line should not change anything")
	}
}

func TestInstallTmuxPluginTPM_CreatesMissingConf(t *testing.T) {
	conf := filepath.Join(t.TempDir(), "tmux.conf")

	inst := NewInstaller(&fakeRunner{}, nil)
	result, err := inst.InstallTmuxPluginTPM(conf)
	if err != nil {
		t.Fatalf("InstallTmuxPluginTPM: %v", err)
	}
	if !result.Changed {
		t.Error("expected a change")
	}
	if _, err := os.Stat(conf); err != nil {
		t.Errorf("conf not created: %v", err)
	}
}

func TestInstallTmuxPluginManual(t *testing.T) {
	source := t.TempDir()
	pluginDir := filepath.Join(t.TempDir(), "plugins")

	inst := NewInstaller(&fakeRunner{}, nil)
	result, err := inst.InstallTmuxPluginManual(context.Background(), source, pluginDir)
	if err != nil {
		t.Fatalf("InstallTmuxPluginManual: %v", err)
	}
	if !result.Changed {
		t.Error("expected a change")
	}

	link := filepath.Join(pluginDir, "claude-tmux-hop")
	dest, err := os.Readlink(link)
	if err != nil {
		t.Fatalf("readlink: %v", err)
	}
	if dest != source {
		t.Errorf("symlink -> %s, want %s", dest, source)
	}

	// Second run leaves the existing link alone.
	result, err = inst.InstallTmuxPluginManual(context.Background(), source, pluginDir)
	if err != nil {
		t.Fatalf("second InstallTmuxPluginManual: %v", err)
	}
	if result.Changed {
		t.Error("existing symlink should not be replaced")
	}
}

func TestInstallClaudePlugin(t *testing.T) {
	runner := &fakeRunner{}
	inst := NewInstaller(runner, nil)

	result, err := inst.InstallClaudePlugin(context.Background())
	if err != nil {
		t.Fatalf("InstallClaudePlugin: %v", err)
	}
	if !result.Changed {
		t.Error("expected a change")
	}
	joined := strings.Join(runner.calls, "\n")
	if !strings.Contains(joined, "claude plugin marketplace add") ||
		!strings.Contains(joined, "claude plugin install claude-tmux-hop") {
		t.Errorf("calls = %v", runner.calls)
	}
}

func TestInstallClaudePlugin_AlreadyInstalled(t *testing.T) {
	runner := &fakeRunner{errs: map[string]error{
		"claude plugin install claude-tmux-hop": fmt.Errorf("plugin already installed"),
	}}
	inst := NewInstaller(runner, nil)

	result, err := inst.InstallClaudePlugin(context.Background())
	if err != nil {
		t.Fatalf("already installed should not be an error: %v", err)
	}
	if result.Changed {
		t.Error("already installed should report no change")
	}
}

func TestVerify(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		"claude plugin list": "claude-tmux-hop",
	}}
	inst := NewInstaller(runner, nil)

	_, claudePlugin := inst.Verify(context.Background())
	if !claudePlugin {
		t.Error("claude plugin should verify from plugin list output")
	}
}
