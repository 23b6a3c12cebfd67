package engine

import (
	"context"
	"fmt"

	"github.com/ShayCichocki/tmuxhop/internal/config"
	"github.com/ShayCichocki/tmuxhop/internal/history"
	"github.com/ShayCichocki/tmuxhop/internal/priority"
	"github.com/ShayCichocki/tmuxhop/internal/tmux"
	"github.com/ShayCichocki/tmuxhop/pkg/models"
)

// Cycle moves the client to the next pane in priority order. Stale panes
// are pruned on the way, so a dead session never becomes a cycle target.
// currentPane may come from a keybinding argument; when empty, the
// active pane is used. A nil pane return means there was nothing to
// cycle to.
func (e *Engine) Cycle(ctx context.Context, currentPane string, mode priority.Mode) (*models.Pane, error) {
	if !e.store.InTmux() {
		return nil, tmux.ErrNotInTmux
	}

	valid, stale, err := e.Reconcile(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range stale {
		if err := e.store.ClearPaneState(ctx, p.ID); err != nil {
			e.log.Errorf("cycle: auto-prune of %s failed: %v", p.ID, err)
			continue
		}
		e.log.Infof("cycle: auto-pruned %s", p.ID)
	}

	panes := e.validator.Validate(ctx, valid)
	group := priority.CycleGroup(panes, mode)
	if len(group) == 0 {
		e.log.Infof("cycle: no panes found")
		e.store.DisplayMessage(ctx, "No Claude Code sessions found")
		return nil, nil
	}

	if currentPane == "" {
		// Best effort; NextAfter falls back to the first pane anyway.
		currentPane, _ = e.store.CurrentPaneID(ctx)
	}

	target, ok := priority.NextAfter(group, currentPane)
	if !ok {
		return nil, nil
	}

	e.log.Infof("cycle -> %s:%d %s (%s)", target.Session, target.Window, target.Project(), target.State)
	if err := e.store.SwitchToPane(ctx, target.ID, target.Session, target.Window); err != nil {
		return nil, err
	}
	e.record(ctx, history.Event{Command: "cycle", PaneID: target.ID, State: string(target.State)})
	return &target, nil
}

// Back jumps to the pane recorded before the last switch. A stale back
// pointer is unset so the next attempt fails cleanly instead of
// repeating the same dead jump.
func (e *Engine) Back(ctx context.Context) error {
	if !e.store.InTmux() {
		return tmux.ErrNotInTmux
	}

	previous := e.store.GlobalOption(ctx, config.OptionPreviousPane, "")
	if previous == "" {
		e.log.Infof("back: no previous pane recorded")
		e.store.DisplayMessage(ctx, "No previous pane to jump to")
		return nil
	}

	if err := e.store.SwitchToPane(ctx, previous, "", -1); err != nil {
		e.log.Errorf("back: failed to switch to %s: %v", previous, err)
		_ = e.store.UnsetGlobalOption(ctx, config.OptionPreviousPane)
		e.store.DisplayMessage(ctx, "Previous pane no longer exists")
		return fmt.Errorf("previous pane %s no longer exists: %w", previous, err)
	}

	e.log.Infof("back: jumped to %s", previous)
	e.record(ctx, history.Event{Command: "back", PaneID: previous})
	return nil
}

// Switch jumps to a specific pane by ID. Used by the picker.
func (e *Engine) Switch(ctx context.Context, paneID string) error {
	if !e.store.InTmux() {
		return tmux.ErrNotInTmux
	}
	if err := e.store.SwitchToPane(ctx, paneID, "", -1); err != nil {
		return err
	}
	e.record(ctx, history.Event{Command: "switch", PaneID: paneID})
	return nil
}

// List returns every live managed pane in full display order.
func (e *Engine) List(ctx context.Context) ([]models.Pane, error) {
	if !e.store.InTmux() {
		return nil, tmux.ErrNotInTmux
	}
	panes, err := e.ValidatedPanes(ctx)
	if err != nil {
		return nil, err
	}
	return priority.SortAll(panes), nil
}
