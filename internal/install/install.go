// Package install wires tmuxhop into tmux and Claude Code: the TPM
// plugin line on the tmux side, the hook plugin on the Claude side.
package install

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ShayCichocki/tmuxhop/internal/doctor"
	"github.com/ShayCichocki/tmuxhop/internal/exec"
	"github.com/ShayCichocki/tmuxhop/internal/logging"
	"github.com/ShayCichocki/tmuxhop/internal/paths"
)

// pluginRepo is the GitHub slug TPM and the Claude marketplace pull from.
const pluginRepo = "unsafe9/" + doctor.PluginName

// pluginLine is what goes into tmux.conf for TPM users.
const pluginLine = "set -g @plugin '" + pluginRepo + "'"

// Installer performs the installation steps.
type Installer struct {
	runner exec.CommandRunner
	log    *logging.Logger
}

// NewInstaller creates an Installer.
func NewInstaller(runner exec.CommandRunner, log *logging.Logger) *Installer {
	if log == nil {
		log = logging.Nop()
	}
	return &Installer{runner: runner, log: log}
}

// Result describes what one installation step did.
type Result struct {
	// Changed is false when the step found nothing to do.
	Changed bool
	// Detail is a human-readable account of the step.
	Detail string
}

// InstallTmuxPluginTPM appends the TPM plugin line to the active tmux
// config, creating ~/.tmux.conf when no config exists yet.
func (i *Installer) InstallTmuxPluginTPM(confPath string) (Result, error) {
	if confPath == "" {
		confPath = paths.ActiveTmuxConfig()
	}
	if confPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Result{}, fmt.Errorf("resolve home directory: %w", err)
		}
		confPath = filepath.Join(home, ".tmux.conf")
	}

	if data, err := os.ReadFile(confPath); err == nil {
		if strings.Contains(string(data), doctor.PluginName) {
			return Result{Detail: "Plugin already in " + confPath}, nil
		}
	}

	f, err := os.OpenFile(confPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return Result{}, fmt.Errorf("open %s: %w", confPath, err)
	}
	defer f.Close()
	if _, err := fmt.Fprintf(f, "\n# Claude Tmux Hop\n%s\n", pluginLine); err != nil {
		return Result{}, fmt.Errorf("append plugin line: %w", err)
	}

	i.log.Infof("install: plugin line added to %s", confPath)
	return Result{
		Changed: true,
		Detail:  fmt.Sprintf("Added to %s; run 'prefix + I' in tmux to install", confPath),
	}, nil
}

// InstallTmuxPluginManual symlinks a checkout into the plugin directory
// for non-TPM users.
func (i *Installer) InstallTmuxPluginManual(ctx context.Context, sourceDir, pluginDir string) (Result, error) {
	if pluginDir == "" {
		pluginDir = paths.PluginInstallDir(ctx, i.runner)
	}
	target := filepath.Join(pluginDir, doctor.PluginName)

	if _, err := os.Lstat(target); err == nil {
		return Result{Detail: "Plugin directory already exists: " + target}, nil
	}
	if err := os.MkdirAll(pluginDir, 0755); err != nil {
		return Result{}, fmt.Errorf("create plugin directory: %w", err)
	}
	if err := os.Symlink(sourceDir, target); err != nil {
		return Result{}, fmt.Errorf("create symlink: %w", err)
	}

	i.log.Infof("install: symlinked %s -> %s", target, sourceDir)
	return Result{
		Changed: true,
		Detail:  fmt.Sprintf("Created symlink %s -> %s; add run-shell '%s/hop.tmux' to tmux.conf", target, sourceDir, target),
	}, nil
}

// InstallClaudePlugin registers the marketplace and installs the hook
// plugin through the claude CLI. "already installed" responses count as
// success.
func (i *Installer) InstallClaudePlugin(ctx context.Context) (Result, error) {
	if err := i.runner.Run(ctx, "claude", "plugin", "marketplace", "add", pluginRepo); err != nil {
		if !isAlready(err) {
			i.log.Errorf("install: marketplace add failed: %v", err)
		}
	}
	if err := i.runner.Run(ctx, "claude", "plugin", "install", doctor.PluginName); err != nil {
		if isAlready(err) {
			return Result{Detail: "Claude Code plugin already installed"}, nil
		}
		return Result{}, fmt.Errorf("install claude plugin: %w", err)
	}

	i.log.Infof("install: claude plugin installed")
	return Result{Changed: true, Detail: "Claude Code plugin installed"}, nil
}

// UpdateTmuxPlugin pulls the latest plugin checkout in place.
func (i *Installer) UpdateTmuxPlugin(ctx context.Context) (Result, error) {
	pluginPath := paths.FindPlugin(ctx, i.runner, doctor.PluginName)
	if pluginPath == "" {
		return Result{Detail: "tmux plugin not installed"}, nil
	}
	if err := i.runner.Run(ctx, "git", "-C", pluginPath, "pull", "--ff-only"); err != nil {
		return Result{}, fmt.Errorf("update tmux plugin: %w", err)
	}
	return Result{Changed: true, Detail: "tmux plugin updated at " + pluginPath}, nil
}

// UpdateClaudePlugin updates the hook plugin through the claude CLI.
func (i *Installer) UpdateClaudePlugin(ctx context.Context) (Result, error) {
	if err := i.runner.Run(ctx, "claude", "plugin", "update", doctor.PluginName); err != nil {
		return Result{}, fmt.Errorf("update claude plugin: %w", err)
	}
	return Result{Changed: true, Detail: "Claude Code plugin updated"}, nil
}

// Verify reports whether both plugin halves are present.
func (i *Installer) Verify(ctx context.Context) (tmuxPlugin, claudePlugin bool) {
	tmuxPlugin = paths.FindPlugin(ctx, i.runner, doctor.PluginName) != "" ||
		paths.PluginInConfig(doctor.PluginName) != ""

	out, err := i.runner.Output(ctx, "claude", "plugin", "list")
	claudePlugin = err == nil && strings.Contains(out, doctor.PluginName)
	return tmuxPlugin, claudePlugin
}

func isAlready(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "already")
}
