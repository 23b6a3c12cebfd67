package tmux

import (
	"context"
	"fmt"
	"strings"

	"github.com/ShayCichocki/tmuxhop/internal/config"
)

// SwitchToPane moves the client to the target pane, recording the pane we
// left in the global back pointer first. Session and window may be empty
// or negative, in which case they are looked up from the server.
func (c *Client) SwitchToPane(ctx context.Context, paneID, session string, window int) error {
	if session == "" || window < 0 {
		loc, err := c.findPane(ctx, paneID)
		if err != nil {
			return err
		}
		session = loc.Session
		window = loc.Window
	}

	// The back pointer is best effort. Failing to read the current pane
	// must not abort the switch the user asked for.
	if current, err := c.CurrentPaneID(ctx); err == nil && current != paneID {
		_ = c.SetGlobalOption(ctx, config.OptionPreviousPane, current)
	}

	if err := c.run(ctx, "switch-client", "-t", session); err != nil {
		return err
	}
	if err := c.run(ctx, "select-window", "-t", fmt.Sprintf("%s:%d", session, window)); err != nil {
		return err
	}
	return c.run(ctx, "select-pane", "-t", paneID)
}

// PreviousPane returns the recorded back pointer, or empty when unset.
func (c *Client) PreviousPane(ctx context.Context) string {
	return c.GlobalOption(ctx, config.OptionPreviousPane, "")
}

// ClearPreviousPane drops a back pointer that no longer resolves.
func (c *Client) ClearPreviousPane(ctx context.Context) {
	_ = c.UnsetGlobalOption(ctx, config.OptionPreviousPane)
}

func (c *Client) findPane(ctx context.Context, paneID string) (PaneLocation, error) {
	locs, err := c.ListAllPanes(ctx)
	if err != nil {
		return PaneLocation{}, err
	}
	for _, loc := range locs {
		if loc.ID == paneID {
			return loc, nil
		}
	}
	return PaneLocation{}, fmt.Errorf("pane %s not found", strings.TrimSpace(paneID))
}
