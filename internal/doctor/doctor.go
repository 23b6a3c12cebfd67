// Package doctor checks the environment tmuxhop depends on: tmux and
// its version, the claude CLI, the optional picker and plugin tooling,
// and the hop journal.
package doctor

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/ShayCichocki/tmuxhop/internal/config"
	"github.com/ShayCichocki/tmuxhop/internal/exec"
	"github.com/ShayCichocki/tmuxhop/internal/history"
	"github.com/ShayCichocki/tmuxhop/internal/paths"
)

// PluginName is the name installers and configs use for this tool.
const PluginName = "claude-tmux-hop"

const maxVersionDisplayLength = 50

// Check is the outcome of one environment check.
type Check struct {
	Name     string `json:"name" yaml:"name"`
	OK       bool   `json:"ok" yaml:"ok"`
	Version  string `json:"version,omitempty" yaml:"version,omitempty"`
	Message  string `json:"message,omitempty" yaml:"message,omitempty"`
	Required bool   `json:"required" yaml:"required"`
}

// Runner executes environment checks through a CommandRunner.
type Runner struct {
	runner exec.CommandRunner
}

// NewRunner creates a check runner.
func NewRunner(runner exec.CommandRunner) *Runner {
	return &Runner{runner: runner}
}

var tmuxVersionRe = regexp.MustCompile(`(\d+)\.(\d+)`)

// CheckTmux verifies tmux is installed at version 3.0 or newer. Pane
// user options need 3.0.
func (r *Runner) CheckTmux(ctx context.Context) Check {
	out, err := r.runner.Output(ctx, "tmux", "-V")
	if err != nil {
		return Check{Name: "tmux", OK: false, Message: "Not installed", Required: true}
	}

	if m := tmuxVersionRe.FindStringSubmatch(out); m != nil {
		major, _ := strconv.Atoi(m[1])
		minor, _ := strconv.Atoi(m[2])
		if major < 3 {
			return Check{
				Name: "tmux", OK: false, Version: out,
				Message:  fmt.Sprintf("Requires 3.0+, found %d.%d", major, minor),
				Required: true,
			}
		}
	}
	return Check{Name: "tmux", OK: true, Version: out, Required: true}
}

// CheckClaude verifies the claude CLI responds.
func (r *Runner) CheckClaude(ctx context.Context) Check {
	out, err := r.runner.Output(ctx, "claude", "--version")
	if err != nil {
		return Check{Name: "claude", OK: false, Message: "Not installed", Required: true}
	}
	if len(out) > maxVersionDisplayLength {
		out = out[:maxVersionDisplayLength-3] + "..."
	}
	return Check{Name: "claude", OK: true, Version: out, Required: true}
}

// CheckTPM looks for a TPM installation.
func (r *Runner) CheckTPM(ctx context.Context) Check {
	if tpm := paths.FindTPM(ctx, r.runner); tpm != "" {
		return Check{Name: "tpm", OK: true, Message: tpm}
	}
	return Check{Name: "tpm", OK: false, Message: "Not found (optional)"}
}

// CheckFzf looks for fzf, used by the shell-side picker binding.
func (r *Runner) CheckFzf(_ context.Context) Check {
	if r.runner.LookPath("fzf") {
		return Check{Name: "fzf", OK: true, Message: "Installed"}
	}
	return Check{Name: "fzf", OK: false, Message: "Not found (built-in picker still works)"}
}

// CheckTmuxPlugin looks for the tmux plugin in plugin dirs and configs.
func (r *Runner) CheckTmuxPlugin(ctx context.Context) Check {
	if p := paths.FindPlugin(ctx, r.runner, PluginName); p != "" {
		return Check{Name: "tmux-plugin", OK: true, Message: p}
	}
	if cfg := paths.PluginInConfig(PluginName); cfg != "" {
		return Check{Name: "tmux-plugin", OK: true, Message: "In " + cfg}
	}
	return Check{Name: "tmux-plugin", OK: false, Message: "Not installed"}
}

// CheckClaudePlugin asks the claude CLI whether the hook plugin is on.
func (r *Runner) CheckClaudePlugin(ctx context.Context) Check {
	out, err := r.runner.Output(ctx, "claude", "plugin", "list")
	if err != nil {
		return Check{Name: "claude-plugin", OK: false, Message: "claude CLI not available"}
	}
	if strings.Contains(out, PluginName) {
		return Check{Name: "claude-plugin", OK: true, Message: "Installed"}
	}
	return Check{Name: "claude-plugin", OK: false, Message: "Not installed"}
}

// CheckJournal verifies the history journal opens and migrates.
func (r *Runner) CheckJournal(_ context.Context) Check {
	path := history.DefaultPath()
	j, err := history.Open(path)
	if err != nil {
		return Check{Name: "journal", OK: false, Message: err.Error()}
	}
	j.Close()
	return Check{Name: "journal", OK: true, Message: path}
}

// CheckConfig reports whether a user config file exists. Its absence is
// fine; defaults apply.
func (r *Runner) CheckConfig(_ context.Context) Check {
	cfgPath := config.UserConfigPath()
	if _, err := os.Stat(cfgPath); err == nil {
		return Check{Name: "config", OK: true, Message: cfgPath}
	}
	return Check{Name: "config", OK: true, Message: "Using defaults"}
}

// RunAll executes every check.
func (r *Runner) RunAll(ctx context.Context) []Check {
	return []Check{
		r.CheckTmux(ctx),
		r.CheckClaude(ctx),
		r.CheckTPM(ctx),
		r.CheckFzf(ctx),
		r.CheckTmuxPlugin(ctx),
		r.CheckClaudePlugin(ctx),
		r.CheckConfig(ctx),
		r.CheckJournal(ctx),
	}
}

// Format renders checks as "text", "json", or "yaml".
func Format(checks []Check, format string) (string, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(checks, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal checks: %w", err)
		}
		return string(data), nil
	case "yaml":
		data, err := yaml.Marshal(checks)
		if err != nil {
			return "", fmt.Errorf("marshal checks: %w", err)
		}
		return string(data), nil
	default:
		return formatText(checks), nil
	}
}

func formatText(checks []Check) string {
	var b strings.Builder
	for _, c := range checks {
		var tag string
		switch {
		case c.OK:
			tag = color.GreenString("OK  ")
		case !c.Required:
			tag = color.YellowString("WARN")
		default:
			tag = color.RedString("FAIL")
		}
		detail := c.Version
		if detail == "" {
			detail = c.Message
		}
		fmt.Fprintf(&b, "  [%s] %s: %s\n", tag, c.Name, detail)
	}
	return b.String()
}

// AllRequiredOK reports whether every required check passed.
func AllRequiredOK(checks []Check) bool {
	for _, c := range checks {
		if c.Required && !c.OK {
			return false
		}
	}
	return true
}
