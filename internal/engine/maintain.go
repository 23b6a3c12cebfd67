package engine

import (
	"context"

	"github.com/ShayCichocki/tmuxhop/internal/history"
	"github.com/ShayCichocki/tmuxhop/internal/tmux"
	"github.com/ShayCichocki/tmuxhop/pkg/models"
)

// DiscoverResult summarizes a discovery run.
type DiscoverResult struct {
	// Registered holds the panes that were (or with DryRun, would be)
	// registered as idle.
	Registered []tmux.PaneLocation
	// Skipped counts panes left alone because they already carry state.
	Skipped int
}

// Discover registers every pane with a live managed process that has no
// declared state yet. Found panes start as idle; the next hook will
// correct that. force re-registers panes that already have state.
func (e *Engine) Discover(ctx context.Context, dryRun, force bool) (DiscoverResult, error) {
	if !e.store.InTmux() {
		return DiscoverResult{}, tmux.ErrNotInTmux
	}

	locs, err := e.discoverer.ClaudePanes(ctx)
	if err != nil {
		return DiscoverResult{}, err
	}

	var result DiscoverResult
	now := e.now().Unix()
	for _, loc := range locs {
		if !force && e.store.HasState(ctx, loc.ID) {
			result.Skipped++
			continue
		}
		if !dryRun {
			if err := e.store.SetPaneState(ctx, loc.ID, models.StateIdle, now); err != nil {
				e.log.Errorf("discover: register of %s failed: %v", loc.ID, err)
				continue
			}
			if err := e.store.MarkManaged(ctx, loc.ID); err != nil {
				e.log.Errorf("discover: marking %s failed: %v", loc.ID, err)
			}
			e.log.Infof("discover: registered %s as idle", loc.ID)
			e.record(ctx, history.Event{Command: "discover", PaneID: loc.ID, State: string(models.StateIdle)})
		}
		result.Registered = append(result.Registered, loc)
	}
	return result, nil
}

// Prune clears state from panes whose process is gone and returns them.
// With dryRun the stale panes are only reported.
func (e *Engine) Prune(ctx context.Context, dryRun bool) ([]models.Pane, error) {
	if !e.store.InTmux() {
		return nil, tmux.ErrNotInTmux
	}

	_, stale, err := e.Reconcile(ctx)
	if err != nil {
		return nil, err
	}

	if !dryRun {
		for _, p := range stale {
			if err := e.store.ClearPaneState(ctx, p.ID); err != nil {
				e.log.Errorf("prune: clearing %s failed: %v", p.ID, err)
				continue
			}
			e.log.Infof("prune: cleared %s", p.ID)
			e.record(ctx, history.Event{Command: "prune", PaneID: p.ID, State: string(p.State)})
		}
	}
	return stale, nil
}
