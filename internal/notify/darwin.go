package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/ShayCichocki/tmuxhop/internal/exec"
)

// darwinNotifier posts notifications with osascript, or terminal-notifier
// when a click action is wanted and the tool is installed.
type darwinNotifier struct {
	runner exec.CommandRunner
}

func (n *darwinNotifier) Send(ctx context.Context, title, message string, onClick *PaneContext) bool {
	if onClick != nil && n.runner.LookPath("terminal-notifier") {
		return n.sendTerminalNotifier(ctx, title, message, onClick)
	}
	script := fmt.Sprintf("display notification %q with title %q", message, title)
	return n.runner.Run(ctx, "osascript", "-e", script) == nil
}

func (n *darwinNotifier) sendTerminalNotifier(ctx context.Context, title, message string, click *PaneContext) bool {
	clickCmd := fmt.Sprintf("tmux switch-client -t '%s:%d' && tmux select-pane -t '%s'",
		click.Session, click.Window, click.PaneID)
	args := []string{"-title", title, "-message", message, "-execute", clickCmd}
	return n.runner.Run(ctx, "terminal-notifier", args...) == nil
}

// darwinFocusHandler activates the terminal with AppleScript. iTerm and
// Terminal get tab-level focusing by searching for the session name;
// everything else gets a plain activate.
type darwinFocusHandler struct {
	runner exec.CommandRunner
}

func (h *darwinFocusHandler) Focus(ctx context.Context, appName, sessionName string, pane *PaneContext) bool {
	var focused bool
	switch {
	case appName == "iTerm" && sessionName != "":
		focused = h.runOsascript(ctx, iTermTabScript(sessionName))
	case appName == "Terminal" && sessionName != "":
		focused = h.runOsascript(ctx, terminalWindowScript(sessionName))
	default:
		focused = h.runOsascript(ctx, fmt.Sprintf("tell application %q to activate", appName))
	}
	if focused {
		switchTmuxPane(ctx, h.runner, pane)
	}
	return focused
}

func (h *darwinFocusHandler) runOsascript(ctx context.Context, script string) bool {
	return h.runner.Run(ctx, "osascript", "-e", script) == nil
}

// darwinFocusDetector asks System Events for the frontmost process.
type darwinFocusDetector struct {
	runner exec.CommandRunner
}

func (d *darwinFocusDetector) IsFocused(ctx context.Context, appName, sessionName string) bool {
	out, err := d.runner.Output(ctx, "osascript", "-e",
		`tell application "System Events" to get name of first application process whose frontmost is true`)
	if err != nil || out == "" {
		return false
	}
	return strings.Contains(strings.ToLower(out), strings.ToLower(appName))
}

func escapeAppleScript(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

func iTermTabScript(sessionName string) string {
	return fmt.Sprintf(`
tell application "iTerm"
	activate
	set found to false
	repeat with aWindow in windows
		repeat with aTab in tabs of aWindow
			repeat with aSession in sessions of aTab
				if name of aSession contains "%s" then
					select aTab
					select aWindow
					set found to true
					exit repeat
				end if
			end repeat
			if found then exit repeat
		end repeat
		if found then exit repeat
	end repeat
end tell
`, escapeAppleScript(sessionName))
}

func terminalWindowScript(sessionName string) string {
	return fmt.Sprintf(`
tell application "Terminal"
	activate
	repeat with aWindow in windows
		if name of aWindow contains "%s" then
			set index of aWindow to 1
			exit repeat
		end if
	end repeat
end tell
`, escapeAppleScript(sessionName))
}
