package priority

import (
	"testing"

	"github.com/ShayCichocki/tmuxhop/pkg/models"
)

func pane(id string, state models.State, ts int64) models.Pane {
	return models.Pane{ID: id, State: state, Timestamp: ts}
}

func ids(panes []models.Pane) []string {
	out := make([]string, len(panes))
	for i, p := range panes {
		out[i] = p.ID
	}
	return out
}

func equalIDs(got []models.Pane, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i, p := range got {
		if p.ID != want[i] {
			return false
		}
	}
	return true
}

var mixed = []models.Pane{
	pane("%1", models.StateActive, 100),
	pane("%2", models.StateWaiting, 200),
	pane("%3", models.StateIdle, 150),
	pane("%4", models.StateWaiting, 100),
}

func TestGroupByState(t *testing.T) {
	g, unknown := GroupByState(mixed)

	if len(g.Waiting) != 2 || len(g.Idle) != 1 || len(g.Active) != 1 {
		t.Errorf("groups = %d/%d/%d, want 2/1/1", len(g.Waiting), len(g.Idle), len(g.Active))
	}
	if len(unknown) != 0 {
		t.Errorf("unexpected unknowns: %v", ids(unknown))
	}
}

func TestGroupByState_UnknownTreatedAsActive(t *testing.T) {
	g, unknown := GroupByState([]models.Pane{
		pane("%1", models.State("bogus"), 100),
		pane("%2", models.StateWaiting, 50),
	})

	if len(unknown) != 1 || unknown[0].ID != "%1" {
		t.Fatalf("unknowns = %v, want [%%1]", ids(unknown))
	}
	if !equalIDs(g.Active, []string{"%1"}) {
		t.Errorf("unknown pane not bucketed active: %v", ids(g.Active))
	}
}

func TestSortWithinGroup(t *testing.T) {
	tests := []struct {
		name  string
		state models.State
		in    []models.Pane
		want  []string
	}{
		{
			"waiting oldest first",
			models.StateWaiting,
			[]models.Pane{pane("%2", models.StateWaiting, 200), pane("%4", models.StateWaiting, 100)},
			[]string{"%4", "%2"},
		},
		{
			"idle newest first",
			models.StateIdle,
			[]models.Pane{pane("%a", models.StateIdle, 10), pane("%b", models.StateIdle, 90)},
			[]string{"%b", "%a"},
		},
		{
			"active newest first",
			models.StateActive,
			[]models.Pane{pane("%a", models.StateActive, 5), pane("%b", models.StateActive, 50)},
			[]string{"%b", "%a"},
		},
		{
			"ties keep input order",
			models.StateWaiting,
			[]models.Pane{pane("%a", models.StateWaiting, 7), pane("%b", models.StateWaiting, 7)},
			[]string{"%a", "%b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SortWithinGroup(tt.in, tt.state)
			if !equalIDs(tt.in, tt.want) {
				t.Errorf("got %v, want %v", ids(tt.in), tt.want)
			}
		})
	}
}

func TestCycleGroup_PriorityMode(t *testing.T) {
	got := CycleGroup(mixed, ModePriority)
	if !equalIDs(got, []string{"%4", "%2"}) {
		t.Errorf("got %v, want [%%4 %%2]", ids(got))
	}
}

func TestCycleGroup_PriorityModeFallsThrough(t *testing.T) {
	got := CycleGroup([]models.Pane{
		pane("%1", models.StateActive, 10),
		pane("%3", models.StateIdle, 150),
	}, ModePriority)
	if !equalIDs(got, []string{"%3"}) {
		t.Errorf("idle tier should win when no waiting panes, got %v", ids(got))
	}
}

func TestCycleGroup_FlatMode(t *testing.T) {
	got := CycleGroup(mixed, ModeFlat)
	if !equalIDs(got, []string{"%4", "%2", "%3", "%1"}) {
		t.Errorf("got %v, want [%%4 %%2 %%3 %%1]", ids(got))
	}
}

func TestCycleGroup_Empty(t *testing.T) {
	if got := CycleGroup(nil, ModePriority); got == nil || len(got) != 0 {
		t.Errorf("empty input should yield empty non-nil slice, got %v", got)
	}
}

func TestSortAll(t *testing.T) {
	got := SortAll(mixed)
	if !equalIDs(got, []string{"%4", "%2", "%3", "%1"}) {
		t.Errorf("got %v, want [%%4 %%2 %%3 %%1]", ids(got))
	}
}

func TestNextAfter(t *testing.T) {
	ordered := CycleGroup(mixed, ModePriority)

	tests := []struct {
		name    string
		current string
		want    string
	}{
		{"advances", "%4", "%2"},
		{"wraps", "%2", "%4"},
		{"unknown current lands first", "%9", "%4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NextAfter(ordered, tt.current)
			if !ok || got.ID != tt.want {
				t.Errorf("NextAfter(%q) = %q/%v, want %q", tt.current, got.ID, ok, tt.want)
			}
		})
	}
}

func TestNextAfter_Empty(t *testing.T) {
	if _, ok := NextAfter(nil, "%1"); ok {
		t.Error("NextAfter on empty ordering should report no pane")
	}
}

func TestParseMode(t *testing.T) {
	if ParseMode("flat") != ModeFlat {
		t.Error("flat should parse")
	}
	if ParseMode("priority") != ModePriority || ParseMode("junk") != ModePriority {
		t.Error("everything else should default to priority")
	}
}
