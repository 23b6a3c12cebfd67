// Package paths resolves tmux configuration and plugin locations,
// covering XDG layouts, oh-my-tmux, and custom TPM paths.
package paths

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/ShayCichocki/tmuxhop/internal/exec"
)

// XDGConfigHome returns $XDG_CONFIG_HOME or ~/.config.
func XDGConfigHome() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}

// TmuxConfigPaths returns candidate tmux config files in the order tmux
// itself searches, plus the oh-my-tmux user config locations.
func TmuxConfigPaths() []string {
	home, _ := os.UserHomeDir()
	xdg := XDGConfigHome()
	return []string{
		filepath.Join(home, ".tmux.conf"),
		filepath.Join(xdg, "tmux", "tmux.conf"),
		filepath.Join(home, ".config", "tmux", "tmux.conf"),
		filepath.Join(home, ".tmux.conf.local"),
		filepath.Join(xdg, "tmux", "tmux.conf.local"),
	}
}

// ActiveTmuxConfig returns the first existing tmux config file, or "".
func ActiveTmuxConfig() string {
	for _, path := range TmuxConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// tpmEnvPath reads TMUX_PLUGIN_MANAGER_PATH from the tmux environment.
// TPM exports it on initialization, which makes it the most reliable
// signal when running inside tmux.
func tpmEnvPath(ctx context.Context, runner exec.CommandRunner) string {
	if os.Getenv("TMUX") == "" || runner == nil {
		return ""
	}
	out, err := runner.Output(ctx, "tmux", "show-environment", "-g", "TMUX_PLUGIN_MANAGER_PATH")
	if err != nil {
		return ""
	}
	line := strings.TrimSpace(out)
	if !strings.Contains(line, "=") || strings.HasPrefix(line, "-") {
		return ""
	}
	value := strings.TrimRight(strings.SplitN(line, "=", 2)[1], "/")
	if strings.HasPrefix(value, "~") {
		home, _ := os.UserHomeDir()
		value = filepath.Join(home, strings.TrimPrefix(value, "~"))
	}
	if _, err := os.Stat(value); err != nil {
		return ""
	}
	return value
}

// TPMPluginPaths returns candidate plugin directories in priority order.
func TPMPluginPaths(ctx context.Context, runner exec.CommandRunner) []string {
	home, _ := os.UserHomeDir()
	candidates := []string{}
	if env := tpmEnvPath(ctx, runner); env != "" {
		candidates = append(candidates, env)
	}
	candidates = append(candidates,
		filepath.Join(XDGConfigHome(), "tmux", "plugins"),
		filepath.Join(home, ".config", "tmux", "plugins"),
		filepath.Join(home, ".tmux", "plugins"),
	)

	seen := make(map[string]bool)
	var unique []string
	for _, c := range candidates {
		if seen[c] {
			continue
		}
		seen[c] = true
		unique = append(unique, c)
	}
	return unique
}

// FindTPM returns the TPM installation directory, or "".
func FindTPM(ctx context.Context, runner exec.CommandRunner) string {
	for _, dir := range TPMPluginPaths(ctx, runner) {
		tpm := filepath.Join(dir, "tpm")
		if _, err := os.Stat(tpm); err == nil {
			return tpm
		}
	}
	return ""
}

// FindPlugin returns the installation directory of a named plugin, or "".
func FindPlugin(ctx context.Context, runner exec.CommandRunner, name string) string {
	for _, dir := range TPMPluginPaths(ctx, runner) {
		plugin := filepath.Join(dir, name)
		if _, err := os.Stat(plugin); err == nil {
			return plugin
		}
	}
	return ""
}

// PluginInstallDir returns where a plugin should be installed: next to
// TPM when present, else the first existing plugin directory, else the
// traditional ~/.tmux/plugins.
func PluginInstallDir(ctx context.Context, runner exec.CommandRunner) string {
	if tpm := FindTPM(ctx, runner); tpm != "" {
		return filepath.Dir(tpm)
	}
	for _, dir := range TPMPluginPaths(ctx, runner) {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".tmux", "plugins")
}

// PluginInConfig returns the config file referencing the plugin, or "".
func PluginInConfig(name string) string {
	for _, path := range TmuxConfigPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if strings.Contains(string(data), name) {
			return path
		}
	}
	return ""
}
