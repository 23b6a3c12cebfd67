// Package priority orders managed panes for cycling and display. It is
// pure: no tmux, no clock, no I/O.
//
// Waiting panes outrank idle panes, idle panes outrank active ones.
// Within the waiting group the oldest pane comes first, since it has
// been blocked the longest; within idle and active the newest comes
// first, since it is the most likely to matter.
package priority

import (
	"sort"

	"github.com/ShayCichocki/tmuxhop/pkg/models"
)

// Mode selects how CycleGroup assembles its ordering.
type Mode string

const (
	// ModePriority cycles only the highest non-empty tier.
	ModePriority Mode = "priority"
	// ModeFlat cycles every managed pane, tier by tier.
	ModeFlat Mode = "flat"
)

// ParseMode maps a config string to a Mode. Unknown values get priority.
func ParseMode(s string) Mode {
	if s == string(ModeFlat) {
		return ModeFlat
	}
	return ModePriority
}

// Groups holds panes bucketed by state.
type Groups struct {
	Waiting []models.Pane
	Idle    []models.Pane
	Active  []models.Pane
}

// GroupByState buckets panes by their declared state. Panes with an
// unrecognized state are treated as active and also returned separately
// so callers can log them; they are never dropped.
func GroupByState(panes []models.Pane) (Groups, []models.Pane) {
	var g Groups
	var unknown []models.Pane
	for _, p := range panes {
		switch p.State {
		case models.StateWaiting:
			g.Waiting = append(g.Waiting, p)
		case models.StateIdle:
			g.Idle = append(g.Idle, p)
		case models.StateActive:
			g.Active = append(g.Active, p)
		default:
			unknown = append(unknown, p)
			g.Active = append(g.Active, p)
		}
	}
	return g, unknown
}

// SortWithinGroup orders one state's panes in place. Waiting sorts oldest
// first; everything else newest first. The sort is stable so equal
// timestamps keep their discovery order.
func SortWithinGroup(panes []models.Pane, state models.State) {
	if state == models.StateWaiting {
		sort.SliceStable(panes, func(i, j int) bool {
			return panes[i].Timestamp < panes[j].Timestamp
		})
		return
	}
	sort.SliceStable(panes, func(i, j int) bool {
		return panes[i].Timestamp > panes[j].Timestamp
	})
}

// CycleGroup returns the ordered pane list a cycle traverses. In priority
// mode that is the highest non-empty tier only; in flat mode it is all
// tiers concatenated. An empty input yields an empty, non-nil slice.
func CycleGroup(panes []models.Pane, mode Mode) []models.Pane {
	g, _ := GroupByState(panes)
	SortWithinGroup(g.Waiting, models.StateWaiting)
	SortWithinGroup(g.Idle, models.StateIdle)
	SortWithinGroup(g.Active, models.StateActive)

	if mode == ModePriority {
		for _, tier := range [][]models.Pane{g.Waiting, g.Idle, g.Active} {
			if len(tier) > 0 {
				return tier
			}
		}
		return []models.Pane{}
	}

	ordered := make([]models.Pane, 0, len(panes))
	ordered = append(ordered, g.Waiting...)
	ordered = append(ordered, g.Idle...)
	ordered = append(ordered, g.Active...)
	return ordered
}

// SortAll returns every pane in full display order: waiting oldest first,
// then idle newest first, then active newest first.
func SortAll(panes []models.Pane) []models.Pane {
	return CycleGroup(panes, ModeFlat)
}

// NextAfter picks the pane after currentID in the ordering, wrapping at
// the end. When currentID is not in the ordering the first pane wins, so
// a cycle started from an unmanaged pane still lands somewhere useful.
func NextAfter(ordered []models.Pane, currentID string) (models.Pane, bool) {
	if len(ordered) == 0 {
		return models.Pane{}, false
	}
	for i, p := range ordered {
		if p.ID == currentID {
			return ordered[(i+1)%len(ordered)], true
		}
	}
	return ordered[0], true
}
