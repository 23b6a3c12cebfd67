package config

// tmux user option keys. Pane-scoped options carry the managed state;
// global options are the deployment's live feature switches. Absence of a
// global option means the feature is disabled or the built-in default
// applies.
const (
	// OptionState is the pane-scoped declared state: waiting|idle|active.
	OptionState = "@hop-state"
	// OptionTimestamp is the pane-scoped epoch second of the last state write.
	OptionTimestamp = "@hop-timestamp"
	// OptionClaudeMarker marks a pane as managed ("1" or unset).
	OptionClaudeMarker = "@hop-claude"

	// OptionPreviousPane is the global last-visited pane pointer.
	// Last-writer-wins; the store offers no compare-and-swap.
	OptionPreviousPane = "@hop-previous-pane"
	// OptionAutoHop is a comma-separated state set that triggers auto-hop.
	OptionAutoHop = "@hop-auto"
	// OptionAutoPriorityOnly gates auto-hop on priority ("on" default).
	OptionAutoPriorityOnly = "@hop-auto-priority-only"
	// OptionNotify is a comma-separated state set that triggers OS notifications.
	OptionNotify = "@hop-notify"
	// OptionFocusApp is a comma-separated state set that triggers terminal focus.
	OptionFocusApp = "@hop-focus-app"
	// OptionStatusFormat overrides the status-bar format template.
	OptionStatusFormat = "@hop-status-format"
	// OptionTerminalApp overrides terminal app detection for focus.
	OptionTerminalApp = "@hop-terminal-app"
)
