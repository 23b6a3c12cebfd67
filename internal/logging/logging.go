// Package logging provides the append-only file log for tmuxhop.
//
// Every CLI invocation appends to a single shared log file so that hook
// activity from many panes can be read in one place. Lines are tagged with
// the pane ID, the project name, and a short per-invocation ID so
// interleaved invocations can be told apart.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Level is a log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	default:
		return "ERROR"
	}
}

// ParseLevel maps a config string to a Level. Unknown values get info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger writes timestamped, tagged lines to the hop log file.
// The zero value and a nil *Logger are safe no-ops.
type Logger struct {
	mu         sync.Mutex
	file       *os.File
	minLevel   Level
	pane       string
	project    string
	invocation string
}

// DefaultLogPath returns the XDG state path of the hop log,
// ~/.local/state/tmuxhop/hop.log.
func DefaultLogPath() string {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		home, _ := os.UserHomeDir()
		stateDir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateDir, "tmuxhop", "hop.log")
}

// New creates a logger appending to the given path, creating parent
// directories as needed. An empty path returns a no-op logger.
func New(path string, minLevel Level) (*Logger, error) {
	if path == "" {
		return &Logger{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	pane := os.Getenv("TMUX_PANE")
	if pane == "" {
		pane = "?"
	}
	project := "?"
	if cwd, err := os.Getwd(); err == nil {
		project = filepath.Base(cwd)
	}

	return &Logger{
		file:       f,
		minLevel:   minLevel,
		pane:       pane,
		project:    project,
		invocation: uuid.NewString()[:8],
	}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{}
}

// CLICall records a command invocation with its arguments.
func (l *Logger) CLICall(command string, args map[string]string) {
	var parts []string
	for k, v := range args {
		parts = append(parts, fmt.Sprintf("%s=%s", k, v))
	}
	l.Infof("%s", strings.TrimSpace("CLI "+command+" "+strings.Join(parts, " ")))
}

// Debugf logs at debug level.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.write(LevelDebug, format, args...)
}

// Infof logs at info level.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.write(LevelInfo, format, args...)
}

// Errorf logs at error level.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.write(LevelError, format, args...)
}

func (l *Logger) write(level Level, format string, args ...interface{}) {
	if l == nil || l.file == nil || level < l.minLevel {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	ts := time.Now().Format("2006-01-02 15:04:05")
	fmt.Fprintf(l.file, "%s | %-6s | %-20s | %s | %-5s | %s\n",
		ts, l.pane, l.project, l.invocation, level, msg)
}

// Invocation returns the short ID tagged onto this invocation's lines.
func (l *Logger) Invocation() string {
	if l == nil {
		return ""
	}
	return l.invocation
}

// Close closes the underlying file. Safe on a no-op logger.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	return l.file.Close()
}
