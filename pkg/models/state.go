package models

// State represents the declared attention level of a tracked pane.
type State string

const (
	// StateWaiting means the session is blocked on user input.
	StateWaiting State = "waiting"
	// StateIdle means the session finished its turn and is idle.
	StateIdle State = "idle"
	// StateActive means the session is actively working.
	StateActive State = "active"
)

// Priority values, lower is more urgent. Unknown states fall to the
// least urgent tier rather than being dropped.
const (
	PriorityWaiting = 0
	PriorityIdle    = 1
	PriorityActive  = 2
)

// ValidStates lists the known states in priority order. Single source of
// truth for CLI flag validation.
var ValidStates = []State{StateWaiting, StateIdle, StateActive}

// Valid returns true if the state is a known value.
func (s State) Valid() bool {
	switch s {
	case StateWaiting, StateIdle, StateActive:
		return true
	default:
		return false
	}
}

// Priority returns the urgency rank of the state. Unknown states rank as
// active so a misbehaving hook can never starve the cycle order.
func (s State) Priority() int {
	switch s {
	case StateWaiting:
		return PriorityWaiting
	case StateIdle:
		return PriorityIdle
	default:
		return PriorityActive
	}
}
