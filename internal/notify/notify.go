// Package notify sends OS notifications and focuses the terminal when a
// managed pane changes state. Each platform gets its own strategy; every
// strategy fails silently, because a missing notify-send must never break
// a hook.
package notify

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/ShayCichocki/tmuxhop/internal/config"
	"github.com/ShayCichocki/tmuxhop/internal/exec"
	"github.com/ShayCichocki/tmuxhop/internal/logging"
	"github.com/ShayCichocki/tmuxhop/internal/tmux"
	"github.com/ShayCichocki/tmuxhop/pkg/models"
)

// PaneContext identifies the pane asking for a notification or focus.
type PaneContext struct {
	PaneID  string
	Session string
	Window  int
	Project string
}

// Notifier sends an OS notification.
type Notifier interface {
	Send(ctx context.Context, title, message string, onClick *PaneContext) bool
}

// FocusHandler brings the terminal app to the foreground.
type FocusHandler interface {
	Focus(ctx context.Context, appName, sessionName string, pane *PaneContext) bool
}

// FocusDetector reports whether the terminal app is already frontmost.
type FocusDetector interface {
	IsFocused(ctx context.Context, appName, sessionName string) bool
}

// OptionReader reads tmux global options.
type OptionReader interface {
	GlobalOption(ctx context.Context, name, fallback string) string
}

// SessionNamer returns the current tmux session and window.
type SessionNamer interface {
	CurrentSessionWindow(ctx context.Context) (string, int, error)
}

// Dispatcher routes state changes to the platform strategies according
// to the @hop-notify and @hop-focus-app option sets.
type Dispatcher struct {
	opts     OptionReader
	sessions SessionNamer
	notifier Notifier
	focus    FocusHandler
	detector FocusDetector
	log      *logging.Logger
	getenv   func(string) string
}

// NewDispatcher builds a Dispatcher with the strategies for the running
// platform. Unsupported platforms get no-op strategies.
func NewDispatcher(runner exec.CommandRunner, opts OptionReader, sessions SessionNamer, log *logging.Logger) *Dispatcher {
	if log == nil {
		log = logging.Nop()
	}
	n, f, d := strategiesFor(runtime.GOOS, runner)
	return &Dispatcher{
		opts:     opts,
		sessions: sessions,
		notifier: n,
		focus:    f,
		detector: d,
		log:      log,
		getenv:   os.Getenv,
	}
}

func strategiesFor(goos string, runner exec.CommandRunner) (Notifier, FocusHandler, FocusDetector) {
	switch goos {
	case "darwin":
		return &darwinNotifier{runner: runner}, &darwinFocusHandler{runner: runner}, &darwinFocusDetector{runner: runner}
	case "linux":
		return &linuxNotifier{runner: runner}, &linuxFocusHandler{runner: runner}, &linuxFocusDetector{runner: runner}
	case "windows":
		return &windowsNotifier{runner: runner}, &windowsFocusHandler{runner: runner}, &windowsFocusDetector{runner: runner}
	default:
		return nopNotifier{}, nopFocusHandler{}, nopFocusDetector{}
	}
}

// HandleStateNotifications performs every notification action configured
// for a state change. The focus check happens before the focus action,
// so a notification is suppressed only when the user was already looking
// at the terminal.
func (d *Dispatcher) HandleStateNotifications(ctx context.Context, state models.State, project string, pane *PaneContext) {
	wantsFocus := d.stateInOption(ctx, config.OptionFocusApp, state)
	wantsNotify := d.stateInOption(ctx, config.OptionNotify, state)
	if !wantsFocus && !wantsNotify {
		return
	}

	appName := d.terminalApp(ctx)
	session := d.sessionName(ctx)

	alreadyFocused := false
	if wantsNotify && appName != "" {
		alreadyFocused = d.detector.IsFocused(ctx, appName, session)
	}

	if wantsFocus {
		if appName == "" {
			d.log.Debugf("focus: could not detect terminal app")
		} else if d.focus.Focus(ctx, appName, session, pane) {
			d.log.Infof("terminal focused: %s", state)
		} else {
			d.log.Debugf("terminal focus failed: %s", state)
		}
	}

	if wantsNotify {
		if alreadyFocused {
			d.log.Infof("notification suppressed: terminal already focused")
			return
		}
		// With focus enabled the pane is being shown anyway; without it
		// the notification carries the click-to-focus action instead.
		var clickCtx *PaneContext
		if !wantsFocus {
			clickCtx = pane
		}
		if d.notifier.Send(ctx, "Claude Code", project+": "+string(state), clickCtx) {
			d.log.Infof("notification sent: %s", state)
		} else {
			d.log.Debugf("notification failed: %s", state)
		}
	}
}

func (d *Dispatcher) stateInOption(ctx context.Context, option string, state models.State) bool {
	value := d.opts.GlobalOption(ctx, option, "")
	if value == "" {
		return false
	}
	return tmux.ParseStateSet(value)[state]
}

func (d *Dispatcher) sessionName(ctx context.Context) string {
	if d.sessions == nil {
		return ""
	}
	session, _, err := d.sessions.CurrentSessionWindow(ctx)
	if err != nil {
		return ""
	}
	return session
}

// terminalApp resolves the app to focus: the @hop-terminal-app override,
// then the macOS bundle ID, then TERM_PROGRAM.
func (d *Dispatcher) terminalApp(ctx context.Context) string {
	if configured := d.opts.GlobalOption(ctx, config.OptionTerminalApp, ""); configured != "" {
		return configured
	}

	if bundleID := d.getenv("__CFBundleIdentifier"); bundleID != "" {
		if app, ok := macOSBundleMap[bundleID]; ok {
			return app
		}
		for prefix, app := range macOSBundleMap {
			if strings.HasPrefix(bundleID, prefix) {
				return app
			}
		}
	}

	if d.getenv("WT_SESSION") != "" {
		return "Windows Terminal"
	}

	termProgram := d.getenv("TERM_PROGRAM")
	if termProgram == "" || termProgram == "tmux" {
		return ""
	}
	if app, ok := terminalAppMap[termProgram]; ok {
		return app
	}
	if strings.Contains(termProgram, "JediTerm") {
		if lc := d.getenv("LC_TERMINAL"); lc != "" {
			return lc
		}
		return "IntelliJ IDEA"
	}
	return termProgram
}

// switchTmuxPane navigates to the pane after the terminal is focused.
func switchTmuxPane(ctx context.Context, runner exec.CommandRunner, pane *PaneContext) {
	if pane == nil {
		return
	}
	target := pane.Session
	if pane.Window >= 0 {
		target = fmt.Sprintf("%s:%d", pane.Session, pane.Window)
	}
	_ = runner.Run(ctx, "tmux", "switch-client", "-t", target)
	_ = runner.Run(ctx, "tmux", "select-pane", "-t", pane.PaneID)
}

type nopNotifier struct{}

func (nopNotifier) Send(context.Context, string, string, *PaneContext) bool { return false }

type nopFocusHandler struct{}

func (nopFocusHandler) Focus(context.Context, string, string, *PaneContext) bool { return false }

type nopFocusDetector struct{}

func (nopFocusDetector) IsFocused(context.Context, string, string) bool { return false }
