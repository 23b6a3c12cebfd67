package models

import (
	"path/filepath"
	"strconv"
)

// Pane is one tmux pane carrying hop state. It is a plain value; all
// behavior lives in the engine and priority packages.
type Pane struct {
	// ID is the tmux pane identifier, e.g. "%42".
	ID string
	// State is the declared attention level.
	State State
	// Timestamp is the epoch second of the last state write.
	Timestamp int64
	// CWD is the working directory at declaration time.
	CWD string
	// Session and Window locate the pane for navigation only.
	Session string
	Window  int
}

// NewPane builds a Pane from the raw fields of a bulk list-panes query.
// Malformed timestamp or window values become 0 so one bad record never
// blocks the rest of the batch.
func NewPane(id string, state State, timestamp, window, cwd, session string) Pane {
	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		ts = 0
	}
	win, err := strconv.Atoi(window)
	if err != nil {
		win = 0
	}
	return Pane{
		ID:        id,
		State:     state,
		Timestamp: ts,
		CWD:       cwd,
		Session:   session,
		Window:    win,
	}
}

// Project returns the display label derived from the working directory.
func (p Pane) Project() string {
	if p.CWD == "" {
		return "unknown"
	}
	return filepath.Base(p.CWD)
}
