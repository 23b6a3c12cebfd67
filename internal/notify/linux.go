package notify

import (
	"context"
	"os"
	"strings"

	"github.com/ShayCichocki/tmuxhop/internal/exec"
)

// linuxNotifier wraps notify-send. Click-to-focus needs a D-Bus action
// handler, so it is not offered here.
type linuxNotifier struct {
	runner exec.CommandRunner
}

func (n *linuxNotifier) Send(ctx context.Context, title, message string, _ *PaneContext) bool {
	if !n.runner.LookPath("notify-send") {
		return false
	}
	return n.runner.Run(ctx, "notify-send", title, message) == nil
}

// linuxFocusHandler raises the terminal window with wmctrl, falling back
// to xdotool. The session name matches window titles better than the
// app name when both are available.
type linuxFocusHandler struct {
	runner exec.CommandRunner
}

func (h *linuxFocusHandler) Focus(ctx context.Context, appName, sessionName string, pane *PaneContext) bool {
	search := appName
	if sessionName != "" {
		search = sessionName
	}

	focused := false
	if h.runner.LookPath("wmctrl") && h.runner.Run(ctx, "wmctrl", "-a", search) == nil {
		focused = true
	} else if h.runner.LookPath("xdotool") &&
		h.runner.Run(ctx, "xdotool", "search", "--name", search, "windowactivate") == nil {
		focused = true
	}

	if focused {
		switchTmuxPane(ctx, h.runner, pane)
	}
	return focused
}

// linuxFocusDetector reads the active window title through xdotool.
// Wayland hides the active window, so detection reports unfocused there
// and the notification shows anyway.
type linuxFocusDetector struct {
	runner exec.CommandRunner
}

func (d *linuxFocusDetector) IsFocused(ctx context.Context, appName, sessionName string) bool {
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		return false
	}
	if !d.runner.LookPath("xdotool") {
		return false
	}

	active, err := d.runner.Output(ctx, "xdotool", "getactivewindow", "getwindowname")
	if err != nil || active == "" {
		return false
	}

	search := appName
	if sessionName != "" {
		search = sessionName
	}
	return strings.Contains(strings.ToLower(active), strings.ToLower(search))
}
