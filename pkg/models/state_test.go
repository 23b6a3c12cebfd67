package models

import "testing"

func TestState_Valid(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  bool
	}{
		{"waiting is valid", StateWaiting, true},
		{"idle is valid", StateIdle, true},
		{"active is valid", StateActive, true},
		{"empty string is invalid", State(""), false},
		{"unknown state is invalid", State("thinking"), false},
		{"uppercase is invalid", State("WAITING"), false},
		{"padded is invalid", State("idle "), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.Valid(); got != tt.want {
				t.Errorf("State(%q).Valid() = %v, want %v", tt.state, got, tt.want)
			}
		})
	}
}

func TestState_Priority(t *testing.T) {
	tests := []struct {
		state State
		want  int
	}{
		{StateWaiting, 0},
		{StateIdle, 1},
		{StateActive, 2},
		{State("garbage"), 2},
		{State(""), 2},
	}

	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			if got := tt.state.Priority(); got != tt.want {
				t.Errorf("State(%q).Priority() = %d, want %d", tt.state, got, tt.want)
			}
		})
	}
}

func TestState_PriorityOrdering(t *testing.T) {
	if !(StateWaiting.Priority() < StateIdle.Priority()) {
		t.Error("waiting must outrank idle")
	}
	if !(StateIdle.Priority() < StateActive.Priority()) {
		t.Error("idle must outrank active")
	}
}
