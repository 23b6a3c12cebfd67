package tmux

import (
	"context"
	"strings"

	"github.com/ShayCichocki/tmuxhop/pkg/models"
)

// hopFormat is the bulk query format for managed panes. One server round
// trip returns every pane with its hop options and location.
const hopFormat = "#{pane_id}\t#{@hop-claude}\t#{@hop-state}\t#{@hop-timestamp}\t#{pane_current_path}\t#{session_name}\t#{window_index}"

// locationFormat maps every pane to its tty and location, for process
// scanning and discovery.
const locationFormat = "#{pane_id}\t#{pane_tty}\t#{pane_current_path}\t#{session_name}\t#{window_index}"

// PaneLocation identifies a pane independent of hop state.
type PaneLocation struct {
	ID      string
	TTY     string
	CWD     string
	Session string
	Window  int
}

// ListPanes returns every managed pane across all sessions. Panes without
// the marker option or without a declared state are skipped. Records with
// malformed timestamps or window indexes survive with zero values.
func (c *Client) ListPanes(ctx context.Context) ([]models.Pane, error) {
	out, err := c.output(ctx, "list-panes", "-a", "-F", hopFormat)
	if err != nil {
		return nil, err
	}

	var panes []models.Pane
	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 7 {
			c.log.Debugf("skipping malformed pane record: %q", line)
			continue
		}
		if fields[1] != "1" || fields[2] == "" {
			continue
		}
		panes = append(panes, models.NewPane(
			fields[0], models.State(fields[2]), fields[3], fields[6], fields[4], fields[5],
		))
	}
	return panes, nil
}

// ListAllPanes returns the location of every pane in the server, managed
// or not.
func (c *Client) ListAllPanes(ctx context.Context) ([]PaneLocation, error) {
	out, err := c.output(ctx, "list-panes", "-a", "-F", locationFormat)
	if err != nil {
		return nil, err
	}

	var locs []PaneLocation
	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 5 {
			continue
		}
		locs = append(locs, PaneLocation{
			ID:      fields[0],
			TTY:     fields[1],
			CWD:     fields[2],
			Session: fields[3],
			Window:  parseWindow(fields[4]),
		})
	}
	return locs, nil
}

func parseWindow(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}
