package tmux

import (
	"context"
	"strings"
)

// CapturePane returns the last lines of a pane's rendered content. The
// whole visible region is captured and trimmed client-side; lines <= 0
// returns everything.
func (c *Client) CapturePane(ctx context.Context, paneID string, lines int) (string, error) {
	out, err := c.runner.Output(ctx, "tmux", "capture-pane", "-p", "-t", paneID)
	if err != nil {
		c.log.Errorf("capture-pane %s failed: %v", paneID, err)
		return "", err
	}
	if lines <= 0 {
		return out, nil
	}
	all := strings.Split(out, "\n")
	if len(all) > lines {
		all = all[len(all)-lines:]
	}
	return strings.Join(all, "\n"), nil
}
